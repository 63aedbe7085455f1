package hall

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Get serves hall detail on the normal path: only approved AND public
// halls are visible here, everything else 404s. Private halls are reached
// through Access instead.
func (h *HallHandler) Get(c *gin.Context) {
	id := c.Param("id")
	cacheKey := "hall:" + id

	if h.svc.Cache != nil {
		if cached, err := h.svc.Cache.Get(c, cacheKey); err == nil {
			var hall HallSummary
			if err := json.Unmarshal([]byte(cached), &hall); err == nil {
				zap.L().Debug("hall detail from cache", zap.String("key", cacheKey))
				h.annotateOne(c, &hall)
				utils.Success(c, hall)
				return
			}
		}
	}

	var hall HallSummary
	err := h.svc.DB.Model(&models.MemorialHall{}).
		Select(hallColumns).
		Where("memorial_halls.id = ? AND approved = ? AND public = ?", id, true, true).
		Take(&hall).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "hall not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	if h.svc.Cache != nil {
		// Counts go stale within the TTL; wreath/message creation deletes
		// the key.
		hallJSON, _ := json.Marshal(hall)
		_ = h.svc.Cache.SetWithRandomTTL(c, cacheKey, string(hallJSON), 10*time.Minute)
	}

	h.annotateOne(c, &hall)
	utils.Success(c, hall)
}

// Access is the token path for private halls: lookup by (id, token)
// bypasses the approved/public gate entirely. A wrong token is
// indistinguishable from a missing hall.
func (h *HallHandler) Access(c *gin.Context) {
	id := c.Param("id")
	token := c.Query("token")

	var hall HallSummary
	err := h.svc.DB.Model(&models.MemorialHall{}).
		Select(hallColumns).
		Where("memorial_halls.id = ? AND token = ?", id, token).
		Take(&hall).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "hall not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	h.annotateOne(c, &hall)
	utils.Success(c, hall)
}

func (h *HallHandler) annotateOne(c *gin.Context, hall *HallSummary) {
	if userID, err := utils.GetUserID(c); err == nil {
		v := isParticipant(h.svc.DB, hall.ID, userID)
		hall.IsParticipated = &v
	}
}
