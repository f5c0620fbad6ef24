package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmlee/storefront-backend/config"
	apperrors "github.com/jmlee/storefront-backend/internal/errors"
	"github.com/jmlee/storefront-backend/internal/middleware"
	"github.com/jmlee/storefront-backend/internal/storage"
)

var (
	allowedImageTypes = []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
	}
	allowedVideoTypes = []string{
		"video/mp4",
		"video/webm",
		"video/quicktime",
	}
)

type UploadController struct {
	storage storage.Storage
	limits  config.UploadConfig
}

func NewUploadController(store storage.Storage, limits config.UploadConfig) *UploadController {
	return &UploadController{
		storage: store,
		limits:  limits,
	}
}

// UploadFiles stores a batch of image or video files (admin only).
// Every file is validated before any is stored, so a rejection leaves no
// partial state behind.
// POST /api/v1/admin/upload  (multipart field "files")
func (ctrl *UploadController) UploadFiles(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn("Invalid upload request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Expected multipart form with files")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "No files provided")
		return
	}

	for _, file := range files {
		contentType := file.Header.Get("Content-Type")

		maxSize := ctrl.limits.MaxImageSize
		kind := "image"
		if storage.ValidateContentType(contentType, allowedImageTypes) != nil {
			if storage.ValidateContentType(contentType, allowedVideoTypes) != nil {
				log.Warn("Upload rejected: unsupported file type", map[string]interface{}{
					"filename":     file.Filename,
					"content_type": contentType,
				})
				apperrors.BadRequest(c, apperrors.UploadInvalidFileType,
					fmt.Sprintf("%s: unsupported file type %s", file.Filename, contentType))
				return
			}
			maxSize = ctrl.limits.MaxVideoSize
			kind = "video"
		}

		if err := storage.ValidateFileSize(file.Size, maxSize); err != nil {
			log.Warn("Upload rejected: file too large", map[string]interface{}{
				"filename": file.Filename,
				"size":     file.Size,
				"max_size": maxSize,
				"kind":     kind,
			})
			apperrors.BadRequest(c, apperrors.UploadFileTooLarge,
				fmt.Sprintf("%s: exceeds the %d byte limit for %ss", file.Filename, maxSize, kind))
			return
		}
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			log.Error("Failed to open uploaded file", err, map[string]interface{}{
				"filename": file.Filename,
			})
			apperrors.InternalError(c, "Upload failed")
			return
		}

		url, err := ctrl.storage.Put(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), src, file.Size)
		src.Close()
		if err != nil {
			log.Error("Failed to store uploaded file", err, map[string]interface{}{
				"filename": file.Filename,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Upload failed")
			return
		}
		urls = append(urls, url)
	}

	log.Info("Files uploaded", map[string]interface{}{
		"count": len(urls),
	})

	c.JSON(http.StatusCreated, gin.H{
		"urls":  urls,
		"count": len(urls),
	})
}
