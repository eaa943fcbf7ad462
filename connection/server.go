package connection

import (
	"context"

	"bloodlink/config"
	"bloodlink/controller/blog"
	"bloodlink/controller/donation"
	"bloodlink/controller/location"
	"bloodlink/controller/payment"
	"bloodlink/controller/stats"
	"bloodlink/controller/user"
	"bloodlink/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer(cfg *config.Config) error {
	ctx := context.Background()

	fb, authClient, err := Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer fb.Close()

	var verifier services.TokenVerifier
	if cfg.AuthMode == config.AuthModeLocal {
		verifier = &services.HMACVerifier{Secret: []byte(cfg.JWTSecret)}
		logrus.Warn("local HMAC token verification enabled, not for production use")
	} else {
		verifier = &services.FirebaseVerifier{Auth: authClient}
	}

	var provider services.CheckoutProvider
	if cfg.StripeSecretKey != "" {
		provider = services.NewStripeCheckout(cfg.StripeSecretKey, cfg.ClientURL)
	} else {
		logrus.Warn("STRIPE_SECRET_KEY is not set, payment endpoints will fail")
	}

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Blood donation API is running!"})
	})

	location.LocationController(router, fb)
	user.UserController(router, fb, verifier)
	donation.DonationController(router, fb, verifier)
	blog.BlogController(router, fb, verifier)
	payment.PaymentController(router, fb, verifier, provider)
	stats.StatsController(router, fb, verifier)

	logrus.WithField("port", cfg.Port).Info("starting HTTP server")
	return router.Run(":" + cfg.Port)
}
