package organization

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
	"EduAgent/internal/auth"
)

// Store is the slice of the repository the service needs; tests swap in an
// in-memory fake.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*Organization, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Organization, error)
	Create(ctx context.Context, org *Organization) error
}

type Service struct {
	store  Store
	tokens *auth.TokenService
}

func NewService(repo *Repository, tokens *auth.TokenService) *Service {
	return &Service{store: repo, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*Organization, error) {
	if err := req.Validate(); err != nil {
		return nil, err
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
	org := &Organization{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        req.Email,
		Description:  req.Description,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Login returns a bearer token. Unknown email and wrong password share one
// code path and one response.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	org, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}

	hash := ""
	if org != nil {
		hash = org.PasswordHash
	}
	if !auth.CheckPasswordHash(req.Password, hash) || org == nil {
		return "", apperr.InvalidCredentials()
	}

	return s.tokens.Issue(org.ID.Hex(), auth.KindOrganization)
}

func (s *Service) Get(ctx context.Context, id string) (*Organization, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.store.FindByID(ctx, oid)
}

// Resolve implements principal lookup for the access guard.
func (s *Service) Resolve(ctx context.Context, id string) (*auth.Principal, error) {
	org, err := s.Get(ctx, id)
	if err != nil || org == nil {
		return nil, err
	}
	return &auth.Principal{
		ID:    org.ID.Hex(),
		Kind:  auth.KindOrganization,
		Email: org.Email,
		Name:  org.Name,
	}, nil
}
