package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxUploadSize is the largest accepted image, in bytes.
const MaxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
}

// ValidImageUpload checks both the declared content type and the file
// extension; the two must agree on an allowed image format.
func ValidImageUpload(filename, contentType string) bool {
	ext := strings.ToLower(fileExt(filename))
	return allowedImageTypes[strings.ToLower(contentType)] && allowedImageExts[ext]
}

// ValidUploadSize reports whether size fits under MaxUploadSize.
func ValidUploadSize(size int64) bool {
	return size <= MaxUploadSize
}

// NewObjectName builds a unique object name preserving the original extension,
// lowercased so bucket keys stay uniform.
func NewObjectName(filename string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), strings.ToLower(fileExt(filename)))
}

func fileExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}
