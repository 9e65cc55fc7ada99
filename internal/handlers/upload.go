package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/abdul977/diamondbakes-sub000/internal/storage"
)

// maxUploadSize caps uploaded images at 5 MB.
const maxUploadSize = 5 << 20

// allowedImageTypes is the content-type allow-list for uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler forwards image uploads to object storage. It is a
// pass-through: no resizing or rewriting happens here.
type UploadHandler struct {
	uploader storage.Uploader
}

// NewUploadHandler constructs UploadHandler. A nil uploader means object
// storage is not configured.
func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload accepts a single multipart image, stores it under a
// collision-resistant key, and returns the public URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.uploader == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "object storage is not configured")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no image file provided")
	}

	if fileHeader.Size > maxUploadSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "image exceeds the 5 MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to read image file")
	}
	defer file.Close()

	// Detect content type by sniffing the first 512 bytes.
	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		return fiber.NewError(fiber.StatusBadRequest, "failed to read image file")
	}
	contentType := http.DetectContentType(sniff[:n])
	if !allowedImageTypes[contentType] {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported image type "+contentType)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to rewind image file")
	}

	key := uuid.New().String() + "-" + sanitizeFilename(fileHeader.Filename)
	if err := h.uploader.Upload(c.Context(), key, contentType, file, fileHeader.Size); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "image upload failed: "+err.Error())
	}

	return c.JSON(fiber.Map{"success": true, "imageUrl": h.uploader.FileURL(key)})
}

// sanitizeFilename keeps the original filename recognizable in the
// storage key while stripping characters that are unsafe in URLs.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		}
		return '-'
	}, name)
}
