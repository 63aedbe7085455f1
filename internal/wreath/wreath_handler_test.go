package wreath

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/config"
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
	))

	require.NoError(t, db.Create(&models.MemorialHall{
		Name: "Hall", Date: time.Now(), Public: true, Approved: true, Token: "tok",
	}).Error)

	s := &svc.ServiceContext{Config: &config.Config{}, DB: db}
	h := NewWreathHandler(s)

	asUser := func(c *gin.Context) { c.Set("user_id", "1") }

	r := gin.New()
	r.GET("/halls/:id/wreaths", h.List)
	r.POST("/halls/:id/wreaths", asUser, h.Create)
	r.GET("/wreaths/my", asUser, h.MyWreaths)

	return r, db
}

func postWreath(r *gin.Engine, hallID uint, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/halls/%d/wreaths", hallID), bytes.NewReader(body))
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

func TestCreateWreath(t *testing.T) {
	r, db := setupTest(t)

	w := postWreath(r, 1, gin.H{"name": "Kim", "comment": "rest well", "donation": 5000})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Wreath
	decode(t, w, &created)
	assert.Equal(t, 5000, created.Donation)
	assert.Equal(t, "Kim", created.Name)
	assert.Equal(t, "rest well", created.Comment)
	assert.EqualValues(t, 1, created.HallID)
	assert.EqualValues(t, 1, created.UserID)

	var count int64
	db.Model(&models.Wreath{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateWreathDefaultDonation(t *testing.T) {
	r, _ := setupTest(t)

	w := postWreath(r, 1, gin.H{"name": "Lee"})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Wreath
	decode(t, w, &created)
	assert.Equal(t, defaultDonation, created.Donation)
}

func TestCreateWreathValidation(t *testing.T) {
	r, _ := setupTest(t)

	// Name is required and capped at 10 characters.
	w := postWreath(r, 1, gin.H{"comment": "no name"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postWreath(r, 1, gin.H{"name": "way too long name"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postWreath(r, 1, gin.H{"name": "Kim", "donation": -100})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postWreath(r, 99, gin.H{"name": "Kim"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReturnsThreeMostRecent(t *testing.T) {
	r, db := setupTest(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.Wreath{
			Donation: 1000, Name: fmt.Sprintf("w%d", i), HallID: 1, UserID: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	var wreaths []models.Wreath
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/halls/1/wreaths", nil))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &wreaths)

	require.Len(t, wreaths, 3)
	assert.Equal(t, "w4", wreaths[0].Name)
	assert.Equal(t, "w3", wreaths[1].Name)
	assert.Equal(t, "w2", wreaths[2].Name)
}

func TestListUnknownHall(t *testing.T) {
	r, _ := setupTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/halls/99/wreaths", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyWreaths(t *testing.T) {
	r, db := setupTest(t)

	require.NoError(t, db.Create(&models.Wreath{Donation: 1000, Name: "mine", HallID: 1, UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Wreath{Donation: 1000, Name: "theirs", HallID: 1, UserID: 2}).Error)

	var wreaths []map[string]any
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wreaths/my", nil))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &wreaths)

	require.Len(t, wreaths, 1)
	assert.Equal(t, "mine", wreaths[0]["name"])
	assert.Equal(t, "Hall", wreaths[0]["hall_name"])
}
