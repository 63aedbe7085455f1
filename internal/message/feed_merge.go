package message

import (
	"sort"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
)

const feedPageSize = 5

// FeedItem is one entry of the combined hall feed. Messages and wreaths
// share the timeline, so the shape is a union tagged by Type.
type FeedItem struct {
	Type      string    `json:"type"`
	ID        uint      `json:"id"`
	HallID    uint      `json:"hall_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content,omitempty"`
	Donation  int       `json:"donation,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// mergeFeed flattens messages and wreaths into one timeline, newest first.
// Items with equal timestamps keep messages ahead of wreaths.
func mergeFeed(msgs []models.Message, wreaths []models.Wreath) []FeedItem {
	items := make([]FeedItem, 0, len(msgs)+len(wreaths))
	for _, m := range msgs {
		items = append(items, FeedItem{
			Type:      "message",
			ID:        m.ID,
			HallID:    m.HallID,
			UserID:    m.UserID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	for _, w := range wreaths {
		items = append(items, FeedItem{
			Type:      "wreath",
			ID:        w.ID,
			HallID:    w.HallID,
			UserID:    w.UserID,
			Donation:  w.Donation,
			Comment:   w.Comment,
			Name:      w.Name,
			CreatedAt: w.CreatedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

// paginateFeed slices one page out of the merged timeline. Pages start
// at 1; anything out of range comes back empty.
func paginateFeed(items []FeedItem, page, size int) ([]FeedItem, bool) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []FeedItem{}, false
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], end < len(items)
}
