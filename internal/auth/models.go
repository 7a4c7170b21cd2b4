package auth

import "context"

// Kind is the closed set of principal roles.
type Kind string

const (
	KindOrganization Kind = "organization"
	KindStudent      Kind = "student"
)

func (k Kind) Valid() bool {
	return k == KindOrganization || k == KindStudent
}

// Principal is the resolved identity the access guard attaches to a
// request after verifying a token and looking the account up.
type Principal struct {
	ID    string
	Kind  Kind
	Email string
	Name  string
}

// Can reports whether the principal may use endpoints restricted to required.
func (p *Principal) Can(required Kind) bool {
	return p != nil && p.Kind == required
}

// PrincipalResolver looks up the account a verified token refers to.
// Implementations return (nil, nil) when no account exists.
type PrincipalResolver interface {
	Resolve(ctx context.Context, kind Kind, id string) (*Principal, error)
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
