package wreath

import (
	"encoding/json"
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/mq"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"
	"github.com/SongYerim/todak-BE-refactoring/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
)

const defaultDonation = 1000

func (h *WreathHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	var req validators.CreateWreathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, "invalid wreath")
		return
	}

	donation := req.Donation
	if donation == 0 {
		donation = defaultDonation
	}

	wreath := models.Wreath{
		Donation: donation,
		Comment:  req.Comment,
		Name:     req.Name,
		HallID:   hall.ID,
		UserID:   userID,
	}

	if err := h.svc.DB.Omit(clause.Associations).Create(&wreath).Error; err != nil {
		zap.L().Error("create wreath db error", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "failed to create wreath")
		return
	}

	// Hall detail carries a wreath count; drop the cached copy.
	if h.svc.Cache != nil {
		_ = h.svc.Cache.Del(c, "hall:"+c.Param("id"))
	}

	if h.svc.Rabbit != nil {
		go func(w models.Wreath) {
			msg := models.WreathMsg{
				HallID:   w.HallID,
				WreathID: w.ID,
				Donation: w.Donation,
			}
			body, _ := json.Marshal(msg)
			if err := h.svc.Rabbit.Publish(mq.WreathQueue, body); err != nil {
				zap.L().Warn("wreath event publish failed", zap.Error(err))
			}
		}(wreath)
	}

	utils.Success(c, wreath)
}
