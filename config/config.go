package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	AuthModeFirebase = "firebase"
	AuthModeLocal    = "local"
)

// Config holds everything supplied out-of-band at process start.
type Config struct {
	Port            string `envconfig:"PORT"`
	FirebaseProject string `envconfig:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
	AuthMode        string `envconfig:"AUTH_MODE"`
	JWTSecret       string `envconfig:"JWT_SECRET"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	ClientURL       string `envconfig:"CLIENT_URL"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, reading from process environment")
	}

	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.Port == "" {
		c.Port = "8080"
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.AuthMode == "" {
		c.AuthMode = AuthModeFirebase
	}
	if c.AuthMode != AuthModeFirebase && c.AuthMode != AuthModeLocal {
		return nil, fmt.Errorf("AUTH_MODE must be %q or %q", AuthModeFirebase, AuthModeLocal)
	}
	if c.AuthMode == AuthModeLocal && c.JWTSecret == "" {
		return nil, fmt.Errorf("set JWT_SECRET when AUTH_MODE=local")
	}
	if c.ClientURL == "" {
		c.ClientURL = "http://localhost:5173"
	}

	return c, nil
}
