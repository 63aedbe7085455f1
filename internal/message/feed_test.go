package message

import (
	"testing"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(sec int) time.Time {
	return time.Date(2025, 3, 1, 12, 0, sec, 0, time.UTC)
}

func TestMergeFeedNewestFirst(t *testing.T) {
	msgs := []models.Message{
		{ID: 1, HallID: 7, Content: "first", CreatedAt: ts(1)},
		{ID: 2, HallID: 7, Content: "third", CreatedAt: ts(3)},
	}
	wreaths := []models.Wreath{
		{ID: 10, HallID: 7, Name: "Kim", Donation: 1000, CreatedAt: ts(2)},
	}

	items := mergeFeed(msgs, wreaths)
	require.Len(t, items, 3)

	assert.Equal(t, "message", items[0].Type)
	assert.Equal(t, uint(2), items[0].ID)
	assert.Equal(t, "wreath", items[1].Type)
	assert.Equal(t, uint(10), items[1].ID)
	assert.Equal(t, "message", items[2].Type)
	assert.Equal(t, uint(1), items[2].ID)
}

func TestMergeFeedWreathNewerThanMessage(t *testing.T) {
	msgs := []models.Message{{ID: 1, CreatedAt: ts(1)}}
	wreaths := []models.Wreath{{ID: 2, CreatedAt: ts(2)}}

	items := mergeFeed(msgs, wreaths)
	require.Len(t, items, 2)
	assert.Equal(t, "wreath", items[0].Type)
	assert.Equal(t, "message", items[1].Type)
}

func TestMergeFeedTieKeepsMessagesFirst(t *testing.T) {
	same := ts(5)
	msgs := []models.Message{{ID: 1, CreatedAt: same}}
	wreaths := []models.Wreath{{ID: 2, CreatedAt: same}}

	items := mergeFeed(msgs, wreaths)
	require.Len(t, items, 2)
	assert.Equal(t, "message", items[0].Type)
	assert.Equal(t, "wreath", items[1].Type)
}

func TestMergeFeedEmpty(t *testing.T) {
	items := mergeFeed(nil, nil)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestMergeFeedCarriesFields(t *testing.T) {
	msgs := []models.Message{{ID: 1, HallID: 3, UserID: 9, Content: "hi", CreatedAt: ts(1)}}
	wreaths := []models.Wreath{{ID: 4, HallID: 3, UserID: 9, Donation: 5000, Comment: "rest well", Name: "Lee", CreatedAt: ts(2)}}

	items := mergeFeed(msgs, wreaths)
	require.Len(t, items, 2)

	w := items[0]
	assert.Equal(t, 5000, w.Donation)
	assert.Equal(t, "rest well", w.Comment)
	assert.Equal(t, "Lee", w.Name)
	assert.Empty(t, w.Content)

	m := items[1]
	assert.Equal(t, "hi", m.Content)
	assert.Zero(t, m.Donation)
}

func TestPaginateFeed(t *testing.T) {
	items := make([]FeedItem, 12)
	for i := range items {
		items[i] = FeedItem{ID: uint(i + 1)}
	}

	page1, hasNext := paginateFeed(items, 1, 5)
	require.Len(t, page1, 5)
	assert.True(t, hasNext)
	assert.Equal(t, uint(1), page1[0].ID)

	page2, hasNext := paginateFeed(items, 2, 5)
	require.Len(t, page2, 5)
	assert.True(t, hasNext)
	assert.Equal(t, uint(6), page2[0].ID)

	page3, hasNext := paginateFeed(items, 3, 5)
	require.Len(t, page3, 2)
	assert.False(t, hasNext)

	page4, hasNext := paginateFeed(items, 4, 5)
	assert.Empty(t, page4)
	assert.False(t, hasNext)
}

func TestPaginateFeedBadPageDefaultsToFirst(t *testing.T) {
	items := []FeedItem{{ID: 1}, {ID: 2}}
	page, hasNext := paginateFeed(items, 0, 5)
	require.Len(t, page, 2)
	assert.False(t, hasNext)
	assert.Equal(t, uint(1), page[0].ID)
}
