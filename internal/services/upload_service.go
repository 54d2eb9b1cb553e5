package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"medsales/internal/domain"
	"medsales/internal/domain/models"
	"medsales/internal/repositories"
	"medsales/internal/storage"
	"medsales/internal/utils"
)

const (
	uploadKeyPrefix = "uploads/"
	presignTTL      = time.Hour
	uploadResource  = "upload"
	uploadLogModule = "upload"
)

// UploadService validates image uploads, talks to the blob bucket and keeps
// the metadata rows in step.
type UploadService struct {
	Repo          repositories.UploadRepository
	Store         storage.ObjectStore
	PublicBaseURL string
	RequestID     string
}

func (s UploadService) publicURL(key string) string {
	return strings.TrimRight(s.PublicBaseURL, "/") + "/" + key
}

func validateUpload(filename, contentType string, size int64) error {
	if strings.TrimSpace(filename) == "" || strings.TrimSpace(contentType) == "" {
		return domain.ValidationError{Msg: "filename and content type are required"}
	}
	if !utils.ValidImageUpload(filename, contentType) {
		return domain.ValidationError{Field: "file", Msg: "invalid file type, only JPG, PNG, WebP, SVG are allowed"}
	}
	if size > 0 && !utils.ValidUploadSize(size) {
		return domain.ValidationError{Field: "file", Msg: "file size exceeds the 5MB limit"}
	}
	return nil
}

// PresignResult is everything a client needs to PUT the object itself.
type PresignResult struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	PublicURL string `json:"publicUrl"`
	Filename  string `json:"filename"`
	ExpiresIn int    `json:"expiresIn"`
}

// PresignUpload validates the request, records the metadata row and returns
// a presigned PUT URL valid for one hour.
func (s UploadService) PresignUpload(ctx context.Context, filename, contentType string, size int64) (PresignResult, error) {
	if err := validateUpload(filename, contentType, size); err != nil {
		return PresignResult{}, err
	}

	objectName := utils.NewObjectName(filename)
	key := uploadKeyPrefix + objectName

	uploadURL, err := s.Store.PresignPut(ctx, key, contentType, presignTTL)
	if err != nil {
		return PresignResult{}, domain.StoreError{Op: uploadResource, Err: err}
	}

	// The metadata row is written up front; a failed row does not revoke the
	// already-issued URL, so log and keep going.
	if _, err := s.Repo.Insert(models.Upload{
		Filename:     objectName,
		OriginalName: filename,
		ContentType:  contentType,
		Size:         size,
		URL:          s.publicURL(key),
	}); err != nil {
		utils.LogEvent(s.RequestID, uploadLogModule, "record_failed", err.Error())
	}

	return PresignResult{
		UploadURL: uploadURL,
		ObjectKey: key,
		PublicURL: s.publicURL(key),
		Filename:  objectName,
		ExpiresIn: int(presignTTL.Seconds()),
	}, nil
}

// Upload streams a multipart file straight into the bucket.
func (s UploadService) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (models.Upload, error) {
	if err := validateUpload(filename, contentType, size); err != nil {
		return models.Upload{}, err
	}
	if size <= 0 {
		return models.Upload{}, domain.ValidationError{Field: "file", Msg: "file is empty"}
	}

	objectName := utils.NewObjectName(filename)
	key := uploadKeyPrefix + objectName

	if err := s.Store.Put(ctx, key, body, contentType); err != nil {
		return models.Upload{}, domain.StoreError{Op: uploadResource, Err: err}
	}

	record := models.Upload{
		Filename:     objectName,
		OriginalName: filename,
		ContentType:  contentType,
		Size:         size,
		URL:          s.publicURL(key),
		CreatedAt:    time.Now(),
	}
	id, err := s.Repo.Insert(record)
	if err != nil {
		utils.LogEvent(s.RequestID, uploadLogModule, "record_failed", err.Error())
	} else {
		record.ID = id
	}

	utils.LogEvent(s.RequestID, uploadLogModule, "upload", fmt.Sprintf("key=%s size=%d", key, size))
	return record, nil
}

func (s UploadService) List(req domain.PageRequest) (domain.Page[models.Upload], error) {
	items, meta, err := s.Repo.List(req)
	if err != nil {
		return domain.Page[models.Upload]{}, err
	}
	return domain.Page[models.Upload]{Items: items, Pagination: meta}, nil
}

// Delete removes the object first (best effort, the metadata row is the
// source of truth) and then the row itself.
func (s UploadService) Delete(ctx context.Context, id int64) error {
	row, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(ctx, uploadKeyPrefix+row.Filename); err != nil {
		utils.LogEvent(s.RequestID, uploadLogModule, "blob_delete_failed", err.Error())
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, uploadLogModule, "delete", fmt.Sprintf("id=%d", id))
	return nil
}
