package message

import (
	"net/http"
	"strconv"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
)

// Feed returns the hall's combined timeline of messages and wreaths.
func (h *MessageHandler) Feed(c *gin.Context) {
	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	var msgs []models.Message
	if err := h.svc.DB.Where("hall_id = ?", hall.ID).Find(&msgs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	var wreaths []models.Wreath
	if err := h.svc.DB.Where("hall_id = ?", hall.ID).Find(&wreaths).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	merged := mergeFeed(msgs, wreaths)
	results, hasNext := paginateFeed(merged, page, feedPageSize)

	utils.Success(c, gin.H{
		"count":    len(merged),
		"page":     page,
		"has_next": hasNext,
		"results":  results,
	})
}
