package ports

import "context"

// RegisterInput carries the fields needed to open an account.
type RegisterInput struct {
	Username string
	Password string
	Phone    string
	Address  string
}

// LoginResult is returned after successful authentication.
type LoginResult struct {
	Token  string
	UserID uint
}

// AuthService handles account creation and credential verification.
type AuthService interface {
	// Register creates a CUSTOMER account and returns a greeting message.
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// AddAdmin creates an ADMIN account; callers are gated by RBAC.
	AddAdmin(ctx context.Context, in RegisterInput) (string, error)
}
