package services

import (
	"context"
	"errors"
	"fmt"

	fbauth "firebase.google.com/go/auth"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller attached to every authenticated request.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier validates a bearer credential and returns the identity it
// represents.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// FirebaseVerifier checks ID tokens against Firebase Auth (signature and
// expiry are the provider's responsibility).
type FirebaseVerifier struct {
	Auth *fbauth.Client
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.Auth.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("token has no email claim")
	}
	name, _ := decoded.Claims["name"].(string)

	return &Identity{UID: decoded.UID, Email: email, Name: name}, nil
}

// HMACVerifier accepts HS256 tokens signed with a shared secret. It exists
// for local development without Firebase credentials and carries the same
// claim shape: email, name, sub.
type HMACVerifier struct {
	Secret []byte
}

func (v *HMACVerifier) Verify(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, errors.New("token has no email claim")
	}
	name, _ := claims["name"].(string)
	uid, _ := claims["sub"].(string)

	return &Identity{UID: uid, Email: email, Name: name}, nil
}
