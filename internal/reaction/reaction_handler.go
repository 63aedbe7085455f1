package reaction

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReactionHandler serves the five reaction sets for both wreaths and
// messages with one toggle and one count implementation. The kind comes
// from the route, the target type from the registration.
type ReactionHandler struct {
	svc *svc.ServiceContext
}

func NewReactionHandler(svc *svc.ServiceContext) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

func (h *ReactionHandler) ToggleWreath(c *gin.Context) {
	h.toggle(c, models.TargetWreath, c.Param("wreathID"))
}

func (h *ReactionHandler) ToggleMessage(c *gin.Context) {
	h.toggle(c, models.TargetMessage, c.Param("messageID"))
}

func (h *ReactionHandler) CountWreath(c *gin.Context) {
	h.count(c, models.TargetWreath, c.Param("wreathID"))
}

func (h *ReactionHandler) CountMessage(c *gin.Context) {
	h.count(c, models.TargetMessage, c.Param("messageID"))
}

// toggle flips the caller's membership in one reaction set and reports the
// resulting state. Two toggles in a row always cancel out.
func (h *ReactionHandler) toggle(c *gin.Context, targetType, idStr string) {
	kind := c.Param("kind")
	if !models.ReactionKinds[kind] {
		utils.Error(c, http.StatusBadRequest, "unknown reaction kind")
		return
	}

	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	targetID, err := h.resolveTarget(targetType, idStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, targetType+" not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	res := h.svc.DB.
		Where("target_type = ? AND target_id = ? AND kind = ? AND user_id = ?",
			targetType, targetID, kind, userID).
		Delete(&models.Reaction{})
	if res.Error != nil {
		zap.L().Error("reaction delete failed", zap.Error(res.Error))
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	if res.RowsAffected > 0 {
		utils.Success(c, gin.H{"status": kind + " removed"})
		return
	}

	reaction := models.Reaction{
		TargetType: targetType,
		TargetID:   targetID,
		Kind:       kind,
		UserID:     userID,
	}
	if err := h.svc.DB.Create(&reaction).Error; err != nil {
		// A concurrent toggle won the race; membership already exists.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Success(c, gin.H{"status": kind + " added"})
			return
		}
		zap.L().Error("reaction create failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, gin.H{"status": kind + " added"})
}

// count is open to anonymous callers and never mutates membership.
func (h *ReactionHandler) count(c *gin.Context, targetType, idStr string) {
	kind := c.Param("kind")
	if !models.ReactionKinds[kind] {
		utils.Error(c, http.StatusBadRequest, "unknown reaction kind")
		return
	}

	targetID, err := h.resolveTarget(targetType, idStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, targetType+" not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}

	var total int64
	if err := h.svc.DB.Model(&models.Reaction{}).
		Where("target_type = ? AND target_id = ? AND kind = ?", targetType, targetID, kind).
		Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, gin.H{fmt.Sprintf("total_%s", kind): total})
}

// resolveTarget validates that the reacted record exists and returns its id.
func (h *ReactionHandler) resolveTarget(targetType, idStr string) (uint, error) {
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, gorm.ErrRecordNotFound
	}
	id := uint(id64)

	var count int64
	switch targetType {
	case models.TargetWreath:
		err = h.svc.DB.Model(&models.Wreath{}).Where("id = ?", id).Count(&count).Error
	case models.TargetMessage:
		err = h.svc.DB.Model(&models.Message{}).Where("id = ?", id).Count(&count).Error
	default:
		return 0, gorm.ErrRecordNotFound
	}
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return id, nil
}
