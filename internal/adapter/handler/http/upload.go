package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/core/domain"
	"go.uber.org/zap"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	Handler
	dir string
}

func NewUploadHandler(dir string, logger *zap.Logger) (*UploadHandler, error) {
	return &UploadHandler{
		Handler: *NewHandler(logger),
		dir:     dir,
	}, nil
}

// UploadImage stores a product image and returns the public path it will be
// served from.
func (uh *UploadHandler) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := ctx.SaveUploadedFile(file, filepath.Join(uh.dir, name)); err != nil {
		uh.logger.Error("save uploaded file", zap.Error(err))
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	uh.handleSuccessWithStatus(ctx, gin.H{"url": "/uploads/" + name}, http.StatusCreated)
}
