package files

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
)

var allowedContentTypes = map[Type]map[string]bool{
	TypePDF: {
		"application/pdf": true,
	},
	TypeVideo: {
		"video/mp4":       true,
		"video/mpeg":      true,
		"video/quicktime": true,
		"video/x-msvideo": true,
		"video/x-ms-wmv":  true,
	},
}

type Store interface {
	Create(ctx context.Context, f *File) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*File, error)
	ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]*File, error)
}

type Service struct {
	store   Store
	storage Storage
}

func NewService(repo *Repository, storage Storage) *Service {
	return &Service{store: repo, storage: storage}
}

// Upload carries one multipart upload through the service.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
	DisplayName string
	Description string
	Tags        string
}

func (s *Service) Upload(ctx context.Context, orgID primitive.ObjectID, uploadedBy string, fileType Type, up Upload) (*File, error) {
	if !allowedContentTypes[fileType][up.ContentType] {
		return nil, apperr.Validation("content type not allowed for " + string(fileType) + " upload")
	}

	storageName := uuid.New().String() + filepath.Ext(up.Filename)
	location, err := s.storage.Save(ctx, fileType, storageName, up.Reader, up.Size, up.ContentType)
	if err != nil {
		return nil, err
	}

	displayName := up.DisplayName
	if displayName == "" {
		displayName = up.Filename
	}

	now := time.Now()
	f := &File{
		ID:               primitive.NewObjectID(),
		OriginalFilename: up.Filename,
		DisplayName:      displayName,
		FileType:         fileType,
		ContentType:      up.ContentType,
		OrganizationID:   orgID,
		Description:      up.Description,
		Tags:             parseTags(up.Tags),
		FilePath:         location,
		StorageFilename:  storageName,
		FileSize:         up.Size,
		UploadedBy:       uploadedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.store.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ListByOrganization returns an organization's files; callers enforce that
// the requester owns the organization.
func (s *Service) ListByOrganization(ctx context.Context, orgID string) ([]*Response, error) {
	oid, err := primitive.ObjectIDFromHex(orgID)
	if err != nil {
		return nil, apperr.Validation("invalid organization id")
	}

	records, err := s.store.ListByOrganization(ctx, oid)
	if err != nil {
		return nil, err
	}

	responses := make([]*Response, 0, len(records))
	for _, f := range records {
		responses = append(responses, f.Response())
	}
	return responses, nil
}

func (s *Service) Get(ctx context.Context, fileID string) (*File, error) {
	oid, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, apperr.NotFound("file not found")
	}

	f, err := s.store.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperr.NotFound("file not found")
	}
	return f, nil
}
