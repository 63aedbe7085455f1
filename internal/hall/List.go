package hall

import (
	"context"
	"net/http"
	"sort"
	"strconv"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/mq"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// List is the public catalog: approved and public halls only, ranked by
// wreath count then memorial date, optional ?q= name search, 6 per page.
// Authenticated callers additionally get is_participated per hall.
func (h *HallHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	search := c.Query("q")

	filter := func() *gorm.DB {
		q := h.svc.DB.Model(&models.MemorialHall{}).
			Where("approved = ? AND public = ?", true, true)
		if search != "" {
			q = q.Where("name LIKE ?", "%"+search+"%")
		}
		return q
	}

	var total int64
	if err := filter().Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	var halls []HallSummary
	err := filter().
		Select(hallColumns).
		Order("wreath_count DESC, date DESC").
		Limit(hallPageSize).
		Offset((page - 1) * hallPageSize).
		Scan(&halls).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	if userID, err := utils.GetUserID(c); err == nil {
		annotateParticipation(h.svc.DB, userID, halls)
	}

	utils.Success(c, gin.H{
		"halls":    halls,
		"page":     page,
		"total":    total,
		"has_next": int64(page*hallPageSize) < total,
	})
}

// MyParticipation lists the caller's joined halls. Approval still gates
// the listing, public does not: a private hall you joined shows up here.
func (h *HallHandler) MyParticipation(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	var halls []HallSummary
	err = h.svc.DB.Model(&models.MemorialHall{}).
		Select(hallColumns).
		Joins("JOIN participations ON participations.hall_id = memorial_halls.id AND participations.user_id = ?", userID).
		Where("memorial_halls.approved = ?", true).
		Order("wreath_count DESC, date DESC").
		Scan(&halls).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	for i := range halls {
		v := true
		halls[i].IsParticipated = &v
	}

	utils.Success(c, halls)
}

// Trending returns the halls with the most recent wreath activity, ranked
// by the redis ZSET the queue consumer maintains. Empty when redis is
// unavailable.
func (h *HallHandler) Trending(c *gin.Context) {
	if h.svc.Cache == nil {
		utils.Success(c, []HallSummary{})
		return
	}

	members, err := h.svc.Cache.ZRevRange(context.Background(), mq.TrendingKey, 0, 9)
	if err != nil || len(members) == 0 {
		utils.Success(c, []HallSummary{})
		return
	}

	ids := make([]uint, 0, len(members))
	rank := make(map[uint]int, len(members))
	for i, m := range members {
		id64, err := strconv.ParseUint(m, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id64))
		rank[uint(id64)] = i
	}

	var halls []HallSummary
	err = h.svc.DB.Model(&models.MemorialHall{}).
		Select(hallColumns).
		Where("memorial_halls.id IN ? AND approved = ? AND public = ?", ids, true, true).
		Scan(&halls).Error
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	// Restore redis rank order; SQL IN gives no ordering guarantee.
	sort.Slice(halls, func(i, j int) bool {
		return rank[halls[i].ID] < rank[halls[j].ID]
	})

	if userID, err := utils.GetUserID(c); err == nil {
		annotateParticipation(h.svc.DB, userID, halls)
	}

	utils.Success(c, halls)
}
