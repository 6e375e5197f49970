// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"projectdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	LastName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput carries the signed access token of a new session.
type SessionOutput struct {
	AccessToken string
}

// AuthUsecase defines credential verification, session issuance and account
// registration. Returned users still carry their password hash; callers must
// not expose it.
type AuthUsecase interface {
	// ValidateCredentials returns the user when email and password match.
	// Unknown email and wrong password fail with the same ErrInvalidCredentials.
	ValidateCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// IssueSession signs a token whose claims are the user's id and email.
	IssueSession(ctx context.Context, user *entity.User) (*SessionOutput, error)

	// Login validates the credentials and issues a session in one step.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
