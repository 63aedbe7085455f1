package message

import (
	"net/http"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
)

// MyMessages lists every condolence message the caller has left, newest
// first, with the hall name attached for display.
func (h *MessageHandler) MyMessages(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	type MessageWithHall struct {
		ID        uint      `json:"id"`
		Content   string    `json:"content"`
		HallID    uint      `json:"hall_id"`
		HallName  string    `json:"hall_name"`
		CreatedAt time.Time `json:"created_at"`
	}

	var msgs []MessageWithHall
	err = h.svc.DB.Model(&models.Message{}).
		Select("messages.id, messages.content, messages.hall_id, memorial_halls.name AS hall_name, messages.created_at").
		Joins("JOIN memorial_halls ON memorial_halls.id = messages.hall_id").
		Where("messages.user_id = ?", userID).
		Order("messages.created_at DESC").
		Scan(&msgs).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, msgs)
}
