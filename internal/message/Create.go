package message

import (
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/badwords"
	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"
	"github.com/SongYerim/todak-BE-refactoring/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

func (h *MessageHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	var req validators.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, "content is required")
		return
	}

	words, err := badwords.LoadWords(h.svc.DB)
	if err != nil {
		zap.L().Error("badword lookup failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "failed to create message")
		return
	}

	msg := models.Message{
		Content: badwords.Sanitize(req.Content, words),
		HallID:  hall.ID,
		UserID:  userID,
	}

	if err := h.svc.DB.Omit(clause.Associations).Create(&msg).Error; err != nil {
		zap.L().Error("create message db error", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "failed to create message")
		return
	}

	if h.svc.Cache != nil {
		_ = h.svc.Cache.Del(c, "hall:"+c.Param("id"))
	}

	utils.Success(c, msg)
}
