package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// maxUploadSize caps image uploads at 5 MiB.
const maxUploadSize = 5 << 20

// UploadHandler stores admin-uploaded images in a public directory and hands
// back their root-relative URL.
type UploadHandler struct {
	dir    string
	logger *slog.Logger
}

func NewUploadHandler(dir string, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, logger: logger}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Leave headroom for the multipart framing; the file itself is checked
	// against maxUploadSize below.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			h.tooLarge(w)
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no image file provided"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		h.tooLarge(w)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": "only image files are allowed"})
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logger.Error("create upload dir", "dir", h.dir, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to upload image"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		h.logger.Error("create upload file", "name", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to upload image"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.logger.Error("write upload", "name", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to upload image"})
		return
	}

	h.logger.Info("image uploaded", "name", name, "size", header.Size, "type", contentType)
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": "/uploads/" + name})
}

func (h *UploadHandler) tooLarge(w http.ResponseWriter) {
	writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
		"error": fmt.Sprintf("image exceeds the %s limit", humanize.IBytes(maxUploadSize)),
	})
}
