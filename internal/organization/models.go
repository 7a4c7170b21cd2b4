package organization

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
)

type Organization struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Description  string             `bson:"description,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return apperr.Validation("a valid email is required")
	}
	if r.Password == "" {
		return apperr.Validation("password is required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apperr.Validation("email and password are required")
	}
	return nil
}

type Profile struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (o *Organization) Profile() *Profile {
	return &Profile{
		ID:          o.ID.Hex(),
		Name:        o.Name,
		Email:       o.Email,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}
