package hall

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/SongYerim/todak-BE-refactoring/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedImages = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadThumbnail stores a hall's representative photo and records its URL.
func (h *HallHandler) UploadThumbnail(c *gin.Context) {
	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error())
		return
	}

	hall, ok := h.loadHall(c)
	if !ok {
		return
	}

	if !isParticipant(h.svc.DB, hall.ID, userID) {
		utils.Error(c, http.StatusForbidden, "only participants can change the thumbnail")
		return
	}

	if h.svc.Storage == nil {
		utils.Error(c, http.StatusServiceUnavailable, "thumbnail upload is not available")
		return
	}

	file, header, err := c.Request.FormFile("thumbnail")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "thumbnail file is required")
		return
	}
	defer file.Close()

	const MaxFileSize = 5 * 1024 * 1024
	if header.Size > MaxFileSize {
		utils.Error(c, http.StatusBadRequest, "thumbnail must be 5MB or smaller")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImages[contentType] {
		utils.Error(c, http.StatusBadRequest, "unsupported image format")
		return
	}

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	newFileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	url, err := h.svc.Storage.UploadImage(c, newFileName, header.Size, file, contentType)
	if err != nil {
		zap.L().Error("thumbnail upload failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "thumbnail storage is busy")
		return
	}

	if err := h.svc.DB.Model(hall).Update("thumbnail", url).Error; err != nil {
		zap.L().Error("thumbnail save failed", zap.Error(err))
		utils.Error(c, http.StatusInternalServerError, "failed to save thumbnail")
		return
	}

	if h.svc.Cache != nil {
		_ = h.svc.Cache.Del(c, "hall:"+c.Param("id"))
	}

	utils.Success(c, gin.H{"thumbnail": url})
}
