package connection

import (
	"context"
	"fmt"

	"bloodlink/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Connect initializes the Firebase app and returns the Firestore client and,
// unless running in local auth mode, the Auth client used for token
// verification. Both are safe for concurrent use and live for the process
// lifetime.
func Connect(ctx context.Context, cfg *config.Config) (*firestore.Client, *fbauth.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fb, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create firestore client: %w", err)
	}
	logrus.Info("firestore connection established")

	if cfg.AuthMode == config.AuthModeLocal {
		return fb, nil, nil
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fb.Close()
		return nil, nil, fmt.Errorf("create auth client: %w", err)
	}

	return fb, authClient, nil
}
