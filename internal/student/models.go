package student

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
)

type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	StudentID      string             `bson:"student_id"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	OrganizationID primitive.ObjectID `bson:"organization_id"`
	Grade          string             `bson:"grade,omitempty"`
	PasswordHash   string             `bson:"password_hash"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

type SignupRequest struct {
	StudentID      string `json:"student_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	Grade          string `json:"grade"`
	Password       string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	if strings.TrimSpace(r.StudentID) == "" {
		return apperr.Validation("student_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return apperr.Validation("a valid email is required")
	}
	if r.OrganizationID == "" {
		return apperr.Validation("organization_id is required")
	}
	if r.Password == "" {
		return apperr.Validation("password is required")
	}
	return nil
}

// LoginRequest carries either a student_id or an email as the identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Identifier == "" || r.Password == "" {
		return apperr.Validation("identifier and password are required")
	}
	return nil
}

type Profile struct {
	ID             string    `json:"_id"`
	StudentID      string    `json:"student_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	OrganizationID string    `json:"organization_id"`
	Grade          string    `json:"grade,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Student) Profile() *Profile {
	return &Profile{
		ID:             s.ID.Hex(),
		StudentID:      s.StudentID,
		Name:           s.Name,
		Email:          s.Email,
		OrganizationID: s.OrganizationID.Hex(),
		Grade:          s.Grade,
		CreatedAt:      s.CreatedAt,
	}
}
