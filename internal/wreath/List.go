package wreath

import (
	"net/http"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
)

// List shows the hall's most recent wreaths. The hall page only previews
// three; the full stream comes through the combined feed.
func (h *WreathHandler) List(c *gin.Context) {
	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	var wreaths []models.Wreath
	err := h.svc.DB.
		Where("hall_id = ?", hall.ID).
		Order("created_at DESC").
		Limit(3).
		Find(&wreaths).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, wreaths)
}

// MyWreaths lists every wreath the caller has offered, newest first, with
// the hall name attached for display.
func (h *WreathHandler) MyWreaths(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	type WreathWithHall struct {
		ID        uint      `json:"id"`
		Donation  int       `json:"donation"`
		Comment   string    `json:"comment,omitempty"`
		Name      string    `json:"name"`
		HallID    uint      `json:"hall_id"`
		HallName  string    `json:"hall_name"`
		CreatedAt time.Time `json:"created_at"`
	}

	var wreaths []WreathWithHall
	err = h.svc.DB.Model(&models.Wreath{}).
		Select("wreaths.id, wreaths.donation, wreaths.comment, wreaths.name, wreaths.hall_id, memorial_halls.name AS hall_name, wreaths.created_at").
		Joins("JOIN memorial_halls ON memorial_halls.id = wreaths.hall_id").
		Where("wreaths.user_id = ?", userID).
		Order("wreaths.created_at DESC").
		Scan(&wreaths).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, wreaths)
}
