package domain

import "context"

// PrincipalKind tells which identity table a principal was resolved against.
type PrincipalKind string

const (
	PrincipalUser    PrincipalKind = "user"
	PrincipalPartner PrincipalKind = "partner"
)

func (k PrincipalKind) Valid() bool {
	return k == PrincipalUser || k == PrincipalPartner
}

// Principal is the authenticated subject of a request.
// Handlers pass it explicitly into every usecase call that needs it.
type Principal struct {
	ID   string
	Kind PrincipalKind
}

// IsZero reports whether no subject has been resolved.
func (p Principal) IsZero() bool {
	return p.ID == ""
}

// PrincipalStore is implemented by every identity table that can back a principal.
type PrincipalStore interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// TokenIssuer mints and verifies opaque session tokens bound to a principal.
type TokenIssuer interface {
	Issue(p Principal) (string, error)
	Verify(token string) (Principal, error)
}

// AuthUsecase covers registration, login and principal resolution for both identity kinds.
type AuthUsecase interface {
	// RegisterUser creates a user account and returns a session token.
	// Returns ErrConflict if the email already exists.
	RegisterUser(ctx context.Context, name, email, password string) (User, string, error)

	// LoginUser verifies credentials and returns a session token.
	// Returns ErrInvalidCredentials if email or password do not match.
	LoginUser(ctx context.Context, email, password string) (User, string, error)

	RegisterPartner(ctx context.Context, p *FoodPartner) (string, error)
	LoginPartner(ctx context.Context, email, password string) (FoodPartner, string, error)

	// Resolve turns a token into a principal of the requested kind.
	// Returns ErrUnauthenticated if the token is missing, invalid, of another kind,
	// or if the subject no longer exists.
	Resolve(ctx context.Context, kind PrincipalKind, token string) (Principal, error)

	Me(ctx context.Context, p Principal) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
}
