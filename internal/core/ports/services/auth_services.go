package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
)

// GoogleOAuthHandlerSvcFacade wraps the Google sign-in flows: the
// redirect-based OAuth code flow and direct ID-token validation.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates the CSRF state for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to.
	GetGoogleLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's profile with the access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateGoogleIDToken validates an ID token posted by the frontend.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
