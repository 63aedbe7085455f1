package hall

import (
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"

	"gorm.io/gorm"
)

const hallPageSize = 6

type HallHandler struct {
	svc *svc.ServiceContext
}

func NewHallHandler(svc *svc.ServiceContext) *HallHandler {
	return &HallHandler{svc: svc}
}

// HallSummary is the serialized hall shape: the model columns plus the
// wreath/message counts the catalog sorts by, plus the per-caller
// participation flag (nil for anonymous callers). Token never leaves
// through this struct.
type HallSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Info         string    `json:"info"`
	Public       bool      `json:"public"`
	Private      bool      `json:"private"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	WreathCount  int64     `json:"wreath_count"`
	MessageCount int64     `json:"message_count"`

	IsParticipated *bool `json:"is_participated,omitempty"`
}

// hallColumns selects the summary columns with correlated count
// subqueries, so ranking by wreath count stays correct across pages.
const hallColumns = `memorial_halls.id, memorial_halls.name, memorial_halls.date, memorial_halls.info,
memorial_halls.public, memorial_halls.private, memorial_halls.thumbnail, memorial_halls.approved,
memorial_halls.created_at,
(SELECT COUNT(*) FROM wreaths WHERE wreaths.hall_id = memorial_halls.id) AS wreath_count,
(SELECT COUNT(*) FROM messages WHERE messages.hall_id = memorial_halls.id) AS message_count`

func isParticipant(db *gorm.DB, hallID, userID uint) bool {
	var count int64
	db.Model(&models.Participation{}).
		Where("hall_id = ? AND user_id = ?", hallID, userID).
		Count(&count)
	return count > 0
}

// participationSet returns which of the given halls the user has joined,
// in one query.
func participationSet(db *gorm.DB, userID uint, hallIDs []uint) map[uint]bool {
	joined := make(map[uint]bool)
	if len(hallIDs) == 0 {
		return joined
	}

	var parts []models.Participation
	db.Where("user_id = ? AND hall_id IN ?", userID, hallIDs).Find(&parts)
	for _, p := range parts {
		joined[p.HallID] = true
	}
	return joined
}

// annotateParticipation fills IsParticipated on each summary for the
// authenticated caller. Computed per request, never cached.
func annotateParticipation(db *gorm.DB, userID uint, halls []HallSummary) {
	ids := make([]uint, len(halls))
	for i, h := range halls {
		ids[i] = h.ID
	}

	joined := participationSet(db, userID, ids)
	for i := range halls {
		v := joined[halls[i].ID]
		halls[i].IsParticipated = &v
	}
}
