package services

import (
	"context"

	"google.golang.org/api/idtoken"
)

// GoogleIdentity is the subset of ID-token claims used to find or create an
// account.
type GoogleIdentity struct {
	Email      string
	GivenName  string
	FamilyName string
}

type IDTokenVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	audience string
}

// NewGoogleVerifier checks signatures against Google's public keys. An empty
// audience skips the aud claim check.
func NewGoogleVerifier(audience string) IDTokenVerifier {
	return &googleVerifier{audience: audience}
}

func (g *googleVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, credential, g.audience)
	if err != nil {
		return nil, err
	}
	return &GoogleIdentity{
		Email:      claimString(payload.Claims, "email"),
		GivenName:  claimString(payload.Claims, "given_name"),
		FamilyName: claimString(payload.Claims, "family_name"),
	}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
