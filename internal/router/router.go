package router

import (
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/badwords"
	"github.com/SongYerim/todak-BE-refactoring/internal/hall"
	"github.com/SongYerim/todak-BE-refactoring/internal/message"
	"github.com/SongYerim/todak-BE-refactoring/internal/middleware"
	"github.com/SongYerim/todak-BE-refactoring/internal/reaction"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"
	"github.com/SongYerim/todak-BE-refactoring/internal/user"
	"github.com/SongYerim/todak-BE-refactoring/internal/wreath"

	"github.com/gin-gonic/gin"
)

// Setup wires every handler onto a fresh engine. Read endpoints accept an
// optional token so participation state can be annotated; write endpoints
// require one.
func Setup(s *svc.ServiceContext) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.LoggerMiddleware())

	userHandler := user.NewUserHandler(s)
	hallHandler := hall.NewHallHandler(s)
	wreathHandler := wreath.NewWreathHandler(s)
	messageHandler := message.NewMessageHandler(s)
	reactionHandler := reaction.NewReactionHandler(s)
	badWordHandler := badwords.NewBadWordHandler(s)

	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	public := r.Group("/", middleware.OptionalJWTAuthMiddleware(s.Config))
	{
		public.GET("/halls", hallHandler.List)
		public.GET("/halls/trending", hallHandler.Trending)
		public.GET("/halls/:id", hallHandler.Get)
		public.GET("/halls/:id/access", hallHandler.Access)
		public.GET("/halls/:id/wreaths", wreathHandler.List)
		public.GET("/halls/:id/messages", messageHandler.Feed)
		public.GET("/halls/:id/wreaths/:wreathID/reactions/:kind", reactionHandler.CountWreath)
		public.GET("/halls/:id/messages/:messageID/reactions/:kind", reactionHandler.CountMessage)
	}

	auth := r.Group("/", middleware.JWTAuthMiddleware(s.Config))
	{
		auth.POST("/users/logout", userHandler.Logout)
		auth.POST("/users/change-password", userHandler.ModifyPassword)

		auth.POST("/halls", hallHandler.Create)
		auth.PATCH("/halls/:id", hallHandler.Update)
		auth.GET("/halls/my-participation", hallHandler.MyParticipation)
		auth.GET("/halls/:id/participate", hallHandler.ParticipationStatus)
		auth.POST("/halls/:id/participate", hallHandler.Participate)
		auth.POST("/halls/:id/unparticipate", hallHandler.Unparticipate)
		auth.POST("/halls/:id/thumbnail", hallHandler.UploadThumbnail)

		auth.POST("/halls/:id/wreaths", wreathHandler.Create)
		auth.GET("/wreaths/my", wreathHandler.MyWreaths)

		auth.POST("/halls/:id/messages",
			middleware.RateLimitMiddleware(s.Cache, "message_create", 10, time.Minute),
			messageHandler.Create)
		auth.GET("/messages/my", messageHandler.MyMessages)

		auth.POST("/halls/:id/wreaths/:wreathID/reactions/:kind", reactionHandler.ToggleWreath)
		auth.POST("/halls/:id/messages/:messageID/reactions/:kind", reactionHandler.ToggleMessage)

		auth.GET("/badwords", badWordHandler.List)
		auth.POST("/badwords", badWordHandler.Create)
		auth.DELETE("/badwords/:id", badWordHandler.Delete)
	}

	return r
}
