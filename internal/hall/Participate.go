package hall

import (
	"errors"
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"
	"github.com/SongYerim/todak-BE-refactoring/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (h *HallHandler) loadHall(c *gin.Context) (*models.MemorialHall, bool) {
	var hall models.MemorialHall
	if err := h.svc.DB.First(&hall, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "hall not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return nil, false
	}
	return &hall, true
}

// ParticipationStatus reports whether the caller joined this hall.
func (h *HallHandler) ParticipationStatus(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	utils.Success(c, gin.H{"is_participated": isParticipant(h.svc.DB, hall.ID, userID)})
}

// Participate joins the caller to a hall. Private halls require the exact
// share token unless the caller already joined. Joining twice is a no-op
// that still reports success.
func (h *HallHandler) Participate(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	if hall.Private && !isParticipant(h.svc.DB, hall.ID, userID) {
		var req validators.ParticipateRequest
		_ = c.ShouldBindJSON(&req)

		if req.Token == "" || req.Token != hall.Token {
			utils.Error(c, http.StatusBadRequest, "Invalid token")
			return
		}
	}

	part := models.Participation{HallID: hall.ID, UserID: userID}
	if err := h.svc.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&part).Error; err != nil {
		zap.L().Error("participate failed", zap.Error(err), zap.Uint("hall_id", hall.ID))
		utils.Error(c, http.StatusInternalServerError, "failed to participate")
		return
	}

	utils.Success(c, gin.H{"status": "participated"})
}

// Unparticipate removes the caller; leaving a hall you never joined also
// succeeds.
func (h *HallHandler) Unparticipate(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	if err := h.svc.DB.
		Where("hall_id = ? AND user_id = ?", hall.ID, userID).
		Delete(&models.Participation{}).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to unparticipate")
		return
	}

	utils.Success(c, gin.H{"status": "unparticipated"})
}
