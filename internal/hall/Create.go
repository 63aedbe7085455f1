package hall

import (
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"
	"github.com/SongYerim/todak-BE-refactoring/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

func (h *HallHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req validators.CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, "invalid hall")
		return
	}

	public := true
	if req.Public != nil {
		public = *req.Public
	}

	hall := models.MemorialHall{
		Name:    req.Name,
		Date:    req.Date,
		Info:    req.Info,
		Public:  public,
		Private: req.Private,
		// Assigned exactly once; switching visibility later never
		// regenerates it.
		Token:    uuid.NewString(),
		Approved: true,
	}

	if err := h.svc.DB.Create(&hall).Error; err != nil {
		zap.L().Error("create hall db error", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "failed to create hall")
		return
	}

	// The creator joins their own hall immediately.
	part := models.Participation{HallID: hall.ID, UserID: userID}
	if err := h.svc.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&part).Error; err != nil {
		zap.L().Error("auto participation failed", zap.Error(err), zap.Uint("hall_id", hall.ID))
	}

	resp := gin.H{
		"id":              hall.ID,
		"status":          "participated",
		"is_participated": true,
	}
	if hall.Private {
		// Only the creator ever sees the share token.
		resp["token"] = hall.Token
	}

	utils.Success(c, resp)
}
