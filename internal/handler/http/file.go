package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-calendar-go/internal/service/file"
)

// maxUploadSize bounds multipart bodies for profile images.
const maxUploadSize = 10 << 20

type FileHandler interface {
	URL(w http.ResponseWriter, r *http.Request)
	UploadProfileImage(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &fileHandlerImpl{fileService: fileService}
}

func (h *fileHandlerImpl) URL(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Query parameter 'path' is required", nil)
		return
	}

	exists, err := h.fileService.FileExists(r.Context(), path)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !exists {
		response.NotFound(w, "File not found")
		return
	}

	url, err := h.fileService.RetrieveFile(r.Context(), path)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"path": path, "url": url})
}

func (h *fileHandlerImpl) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	upload, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Profile image is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer upload.Close()

	path, err := h.fileService.StoreProfileImage(r.Context(), userID, upload, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Profile image uploaded", map[string]string{
		"path": path,
		"url":  h.fileService.ProfileImageURL(r.Context(), path),
	})
}
