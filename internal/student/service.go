package student

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
	"EduAgent/internal/auth"
	"EduAgent/internal/organization"
)

type Store interface {
	FindByEmail(ctx context.Context, email string) (*Student, error)
	FindByStudentID(ctx context.Context, studentID string) (*Student, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Student, error)
	Create(ctx context.Context, s *Student) error
	ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]*Student, error)
}

// OrganizationStore is the lookup needed to check that a signup names an
// existing organization.
type OrganizationStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*organization.Organization, error)
}

type Service struct {
	store         Store
	organizations OrganizationStore
	tokens        *auth.TokenService
}

func NewService(repo *Repository, organizations *organization.Repository, tokens *auth.TokenService) *Service {
	return &Service{store: repo, organizations: organizations, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	orgID, err := primitive.ObjectIDFromHex(req.OrganizationID)
	if err != nil {
		return nil, apperr.Validation("invalid organization_id")
	}
	org, err := s.organizations.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperr.Validation("organization not found")
	}

	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateAccount("email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	student := &Student{
		ID:             primitive.NewObjectID(),
		StudentID:      req.StudentID,
		Name:           req.Name,
		Email:          req.Email,
		OrganizationID: orgID,
		Grade:          req.Grade,
		PasswordHash:   hash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Login accepts a student_id or, failing that, an email as the identifier.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	student, err := s.store.FindByStudentID(ctx, req.Identifier)
	if err != nil {
		return "", err
	}
	if student == nil && strings.Contains(req.Identifier, "@") {
		student, err = s.store.FindByEmail(ctx, req.Identifier)
		if err != nil {
			return "", err
		}
	}

	hash := ""
	if student != nil {
		hash = student.PasswordHash
	}
	if !auth.CheckPasswordHash(req.Password, hash) || student == nil {
		return "", apperr.InvalidCredentials()
	}

	return s.tokens.Issue(student.ID.Hex(), auth.KindStudent)
}

func (s *Service) Get(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.store.FindByID(ctx, oid)
}

// Resolve implements principal lookup for the access guard.
func (s *Service) Resolve(ctx context.Context, id string) (*auth.Principal, error) {
	student, err := s.Get(ctx, id)
	if err != nil || student == nil {
		return nil, err
	}
	return &auth.Principal{
		ID:    student.ID.Hex(),
		Kind:  auth.KindStudent,
		Email: student.Email,
		Name:  student.Name,
	}, nil
}

func (s *Service) ListByOrganization(ctx context.Context, orgID string) ([]*Profile, error) {
	oid, err := primitive.ObjectIDFromHex(orgID)
	if err != nil {
		return nil, apperr.Validation("invalid organization id")
	}

	students, err := s.store.ListByOrganization(ctx, oid)
	if err != nil {
		return nil, err
	}

	profiles := make([]*Profile, 0, len(students))
	for _, st := range students {
		profiles = append(profiles, st.Profile())
	}
	return profiles, nil
}
