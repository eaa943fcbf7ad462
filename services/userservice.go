package services

import (
	"context"

	"bloodlink/model"

	"cloud.google.com/go/firestore"
)

// GetUserByEmail returns the user document for an email, or nil when no
// profile exists. A missing profile is not an error here; callers decide
// what absence means.
func GetUserByEmail(ctx context.Context, fb *firestore.Client, email string) (*model.User, error) {
	docs, err := fb.Collection("users").Where("email", "==", email).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserRef returns the document reference for an email, or nil when absent.
func GetUserRef(ctx context.Context, fb *firestore.Client, email string) (*firestore.DocumentRef, error) {
	docs, err := fb.Collection("users").Where("email", "==", email).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0].Ref, nil
}

// GetUserRole returns the stored role for an email, empty when no profile
// exists. The authorizer middlewares call this on every request; roles are
// never cached.
func GetUserRole(ctx context.Context, fb *firestore.Client, email string) (string, error) {
	user, err := GetUserByEmail(ctx, fb, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}
