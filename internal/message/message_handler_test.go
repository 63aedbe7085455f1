package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/config"
	"github.com/SongYerim/todak-BE-refactoring/internal/badwords"
	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MemorialHall{},
		&models.Wreath{},
		&models.Message{},
		&models.BadWord{},
	))

	require.NoError(t, db.Create(&models.MemorialHall{
		Name: "Hall", Date: time.Now(), Public: true, Approved: true, Token: "tok",
	}).Error)

	s := &svc.ServiceContext{Config: &config.Config{}, DB: db}
	h := NewMessageHandler(s)

	asUser := func(c *gin.Context) { c.Set("user_id", "1") }

	r := gin.New()
	r.GET("/halls/:id/messages", h.Feed)
	r.POST("/halls/:id/messages", asUser, h.Create)
	r.GET("/messages/my", asUser, h.MyMessages)

	return r, db
}

func postMessage(r *gin.Engine, hallID uint, content string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"content": content})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/halls/%d/messages", hallID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success, "body: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(body.Data, out))
}

func TestCreateMessage(t *testing.T) {
	r, db := setupTest(t)

	w := postMessage(r, 1, "rest in peace")
	require.Equal(t, http.StatusOK, w.Code)

	var msg models.Message
	decode(t, w, &msg)
	assert.Equal(t, "rest in peace", msg.Content)
	assert.EqualValues(t, 1, msg.HallID)
	assert.EqualValues(t, 1, msg.UserID)

	var stored models.Message
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "rest in peace", stored.Content)
}

func TestCreateMessageFiltersBannedWords(t *testing.T) {
	r, db := setupTest(t)
	require.NoError(t, db.Create(&models.BadWord{Word: "damn"}).Error)

	w := postMessage(r, 1, "damn damn")
	require.Equal(t, http.StatusOK, w.Code)

	var msg models.Message
	decode(t, w, &msg)
	assert.Equal(t, strings.Repeat(badwords.Heart, 2), msg.Content)
}

func TestCreateMessageMissingHallOrContent(t *testing.T) {
	r, _ := setupTest(t)

	w := postMessage(r, 99, "hello")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postMessage(r, 1, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

type feedResponse struct {
	Count   int        `json:"count"`
	Page    int        `json:"page"`
	HasNext bool       `json:"has_next"`
	Results []FeedItem `json:"results"`
}

func TestFeedMergesMessagesAndWreaths(t *testing.T) {
	r, db := setupTest(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Message{Content: "m1", HallID: 1, UserID: 1, CreatedAt: base}).Error)
	require.NoError(t, db.Create(&models.Wreath{Donation: 1000, Name: "Kim", HallID: 1, UserID: 1, CreatedAt: base.Add(time.Minute)}).Error)
	require.NoError(t, db.Create(&models.Message{Content: "m2", HallID: 1, UserID: 1, CreatedAt: base.Add(2 * time.Minute)}).Error)

	var resp feedResponse
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/halls/1/messages", nil))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)

	assert.Equal(t, 3, resp.Count)
	assert.False(t, resp.HasNext)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "message", resp.Results[0].Type)
	assert.Equal(t, "m2", resp.Results[0].Content)
	assert.Equal(t, "wreath", resp.Results[1].Type)
	assert.Equal(t, "message", resp.Results[2].Type)
	assert.Equal(t, "m1", resp.Results[2].Content)
}

func TestFeedPagination(t *testing.T) {
	r, db := setupTest(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&models.Message{
			Content: fmt.Sprintf("m%d", i), HallID: 1, UserID: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	var resp feedResponse
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/halls/1/messages?page=1", nil))
	decode(t, w, &resp)
	assert.Equal(t, 7, resp.Count)
	assert.Len(t, resp.Results, 5)
	assert.True(t, resp.HasNext)
	assert.Equal(t, "m6", resp.Results[0].Content)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/halls/1/messages?page=2", nil))
	decode(t, w, &resp)
	assert.Len(t, resp.Results, 2)
	assert.False(t, resp.HasNext)
	assert.Equal(t, "m0", resp.Results[1].Content)
}

func TestFeedUnknownHall(t *testing.T) {
	r, _ := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/halls/99/messages", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyMessages(t *testing.T) {
	r, db := setupTest(t)

	require.NoError(t, db.Create(&models.Message{Content: "mine", HallID: 1, UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Message{Content: "theirs", HallID: 1, UserID: 2}).Error)

	var msgs []map[string]any
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/messages/my", nil))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &msgs)

	require.Len(t, msgs, 1)
	assert.Equal(t, "mine", msgs[0]["content"])
	assert.Equal(t, "Hall", msgs[0]["hall_name"])
}
