package models

import "time"

// Upload is the metadata row for an image stored in the blob bucket.
// Filename is the unique object name; the object key is "uploads/" + Filename.
type Upload struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}
