package badwords

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.BadWord{}))

	s := &svc.ServiceContext{Config: &config.Config{}, DB: db}
	h := NewBadWordHandler(s)

	r := gin.New()
	r.GET("/badwords", h.List)
	r.POST("/badwords", h.Create)
	r.DELETE("/badwords/:id", h.Delete)

	return r, db
}

func postWord(r *gin.Engine, word string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"word": word})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/badwords", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBadWordCreateAndList(t *testing.T) {
	r, _ := setupTest(t)

	require.Equal(t, http.StatusOK, postWord(r, "damn").Code)
	require.Equal(t, http.StatusOK, postWord(r, "hell").Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/badwords", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool             `json:"success"`
		Data    []models.BadWord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestBadWordDuplicateRejected(t *testing.T) {
	r, _ := setupTest(t)

	require.Equal(t, http.StatusOK, postWord(r, "damn").Code)
	assert.Equal(t, http.StatusConflict, postWord(r, "damn").Code)
}

func TestBadWordDelete(t *testing.T) {
	r, db := setupTest(t)

	require.Equal(t, http.StatusOK, postWord(r, "damn").Code)

	var word models.BadWord
	require.NoError(t, db.First(&word).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/badwords/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/badwords/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoadWords(t *testing.T) {
	_, db := setupTest(t)

	words, err := LoadWords(db)
	require.NoError(t, err)
	assert.Empty(t, words)

	require.NoError(t, db.Create(&models.BadWord{Word: "damn"}).Error)
	words, err = LoadWords(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"damn"}, words)
}
