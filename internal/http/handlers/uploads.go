package handlers

import (
	"net/http"
	"sync"

	"medsales/internal/http/middleware"
	"medsales/internal/repositories"
	"medsales/internal/services"
	"medsales/internal/storage"

	"github.com/gin-gonic/gin"
)

var (
	uploadMu      sync.RWMutex
	uploadStore   storage.ObjectStore
	uploadBaseURL string
)

// SetUploadConfig wires the blob bucket at startup. Without it the upload
// routes answer 503 instead of panicking.
func SetUploadConfig(store storage.ObjectStore, publicBaseURL string) {
	uploadMu.Lock()
	defer uploadMu.Unlock()
	uploadStore = store
	uploadBaseURL = publicBaseURL
}

func uploadService(c *gin.Context) (services.UploadService, bool) {
	uploadMu.RLock()
	store, baseURL := uploadStore, uploadBaseURL
	uploadMu.RUnlock()
	if store == nil {
		respondFail(c, http.StatusServiceUnavailable, "upload storage is not configured")
		return services.UploadService{}, false
	}
	return services.UploadService{
		Repo:          repositories.UploadRepository{},
		Store:         store,
		PublicBaseURL: baseURL,
		RequestID:     middleware.GetRequestID(c),
	}, true
}

type presignPayload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// POST /api/upload/url — presigned PUT for client-side uploads.
func CreateUploadURL(c *gin.Context) {
	svc, ok := uploadService(c)
	if !ok {
		return
	}
	var payload presignPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	result, err := svc.PresignUpload(c.Request.Context(), payload.Filename, payload.ContentType, payload.Size)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, result)
}

// POST /api/upload — direct multipart upload through the server.
func DirectUpload(c *gin.Context) {
	svc, ok := uploadService(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondFail(c, http.StatusBadRequest, "file field is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondFail(c, http.StatusBadRequest, "unable to read uploaded file")
		return
	}
	defer file.Close()

	record, err := svc.Upload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, record)
}

// GET /api/upload/uploads
func ListUploads(c *gin.Context) {
	svc, ok := uploadService(c)
	if !ok {
		return
	}
	page, err := svc.List(pageRequest(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, page)
}

// DELETE /api/upload/uploads/:id
func DeleteUpload(c *gin.Context) {
	svc, ok := uploadService(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"deleted": true})
}
