package auth

import (
	"context"

	"google.golang.org/api/idtoken"
)

// ProviderIdentity is what a verified third-party ID token asserts.
type ProviderIdentity struct {
	Subject string
	Email   string
}

// ProviderVerifier validates a third-party ID token.
type ProviderVerifier interface {
	Verify(ctx context.Context, rawToken string) (*ProviderIdentity, error)
}

// GoogleVerifier checks Google-issued ID tokens against our client ID.
type GoogleVerifier struct {
	audience string
}

func NewGoogleVerifier(audience string) *GoogleVerifier {
	return &GoogleVerifier{audience: audience}
}

func (g *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*ProviderIdentity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, g.audience)
	if err != nil {
		return nil, ErrInvalidProviderToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidProviderToken
	}

	return &ProviderIdentity{Subject: payload.Subject, Email: email}, nil
}
