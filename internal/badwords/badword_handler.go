package badwords

import (
	"errors"
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"
	"github.com/SongYerim/todak-BE-refactoring/internal/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BadWordHandler struct {
	svc *svc.ServiceContext
}

func NewBadWordHandler(svc *svc.ServiceContext) *BadWordHandler {
	return &BadWordHandler{svc: svc}
}

func (h *BadWordHandler) List(c *gin.Context) {
	var words []models.BadWord
	if err := h.svc.DB.Order("id").Find(&words).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	utils.Success(c, words)
}

func (h *BadWordHandler) Create(c *gin.Context) {
	var req validators.CreateBadWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "word is required")
		return
	}

	word := models.BadWord{Word: req.Word}
	if err := h.svc.DB.Create(&word).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, http.StatusConflict, "word already registered")
			return
		}
		zap.L().Error("create badword failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}

	utils.Success(c, word)
}

func (h *BadWordHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.svc.DB.Where("id = ?", id).Delete(&models.BadWord{})
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "word not found")
		return
	}

	utils.Success(c, gin.H{"message": "word deleted"})
}

// LoadWords reads the full banned-word list; called on every message
// creation so edits take effect immediately.
func LoadWords(db *gorm.DB) ([]string, error) {
	var words []string
	if err := db.Model(&models.BadWord{}).Pluck("word", &words).Error; err != nil {
		return nil, err
	}
	return words, nil
}
