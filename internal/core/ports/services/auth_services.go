package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/peoplehr/hr_ops_app/internal/core/domain"
)

// TokenSvcFacade issues access tokens for verified employees.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT carrying the employee id and
	// role, returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)
}

// GoogleOAuthSvcFacade handles the Google SSO code-exchange flow.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
