package wreath

import (
	"errors"
	"net/http"

	"github.com/SongYerim/todak-BE-refactoring/internal/models"
	"github.com/SongYerim/todak-BE-refactoring/internal/svc"
	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WreathHandler struct {
	svc *svc.ServiceContext
}

func NewWreathHandler(svc *svc.ServiceContext) *WreathHandler {
	return &WreathHandler{svc: svc}
}

func (h *WreathHandler) loadHall(c *gin.Context) (*models.MemorialHall, bool) {
	var hall models.MemorialHall
	if err := h.svc.DB.First(&hall, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "hall not found")
		} else {
			utils.Error(c, http.StatusInternalServerError, "database error")
		}
		return nil, false
	}
	return &hall, true
}
