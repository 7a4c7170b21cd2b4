package files

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type is the closed set of upload categories.
type Type string

const (
	TypePDF   Type = "pdf"
	TypeVideo Type = "video"
)

type File struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	OriginalFilename string             `bson:"original_filename"`
	DisplayName      string             `bson:"display_name"`
	FileType         Type               `bson:"file_type"`
	ContentType      string             `bson:"content_type"`
	OrganizationID   primitive.ObjectID `bson:"organization_id"`
	Description      string             `bson:"description,omitempty"`
	Tags             []string           `bson:"tags,omitempty"`
	FilePath         string             `bson:"file_path"`
	StorageFilename  string             `bson:"storage_filename"`
	FileSize         int64              `bson:"file_size"`
	UploadedBy       string             `bson:"uploaded_by"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

type Response struct {
	ID               string    `json:"_id"`
	OriginalFilename string    `json:"original_filename"`
	DisplayName      string    `json:"display_name"`
	FileType         Type      `json:"file_type"`
	ContentType      string    `json:"content_type"`
	OrganizationID   string    `json:"organization_id"`
	Description      string    `json:"description,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	FilePath         string    `json:"file_path"`
	StorageFilename  string    `json:"storage_filename"`
	FileSize         int64     `json:"file_size"`
	UploadedBy       string    `json:"uploaded_by"`
	CreatedAt        time.Time `json:"created_at"`
}

func (f *File) Response() *Response {
	return &Response{
		ID:               f.ID.Hex(),
		OriginalFilename: f.OriginalFilename,
		DisplayName:      f.DisplayName,
		FileType:         f.FileType,
		ContentType:      f.ContentType,
		OrganizationID:   f.OrganizationID.Hex(),
		Description:      f.Description,
		Tags:             f.Tags,
		FilePath:         f.FilePath,
		StorageFilename:  f.StorageFilename,
		FileSize:         f.FileSize,
		UploadedBy:       f.UploadedBy,
		CreatedAt:        f.CreatedAt,
	}
}
