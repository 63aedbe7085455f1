package hall

import (
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/utils"
	"github.com/SongYerim/todak-BE-refactoring/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Update edits hall metadata and visibility. Public/private can be
// flipped freely; the token and approved flag are not touchable here
// (approval belongs to moderation).
func (h *HallHandler) Update(c *gin.Context) {
	if _, err := utils.GetUserID(c); err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	var req validators.UpdateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, "invalid hall")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Info != nil {
		updates["info"] = *req.Info
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Public != nil {
		updates["public"] = *req.Public
	}
	if req.Private != nil {
		updates["private"] = *req.Private
	}

	if len(updates) == 0 {
		utils.Success(c, gin.H{"message": "nothing to update"})
		return
	}

	if err := h.svc.DB.Model(hall).Updates(updates).Error; err != nil {
		zap.L().Error("update hall failed", zap.Error(err), zap.Uint("hall_id", hall.ID))
		utils.Error(c, http.StatusInternalServerError, "failed to update hall")
		return
	}

	if h.svc.Cache != nil {
		_ = h.svc.Cache.Del(c, "hall:"+c.Param("id"))
	}

	utils.Success(c, gin.H{"message": "hall updated"})
}
