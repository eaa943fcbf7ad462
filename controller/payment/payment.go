package payment

import (
	"context"
	"net/http"
	"time"

	"bloodlink/dto"
	"bloodlink/middleware"
	"bloodlink/model"
	"bloodlink/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func PaymentController(router *gin.Engine, fb *firestore.Client, verifier services.TokenVerifier, provider services.CheckoutProvider) {
	authRoutes := router.Group("", middleware.Authenticate(verifier))
	{
		authRoutes.POST("/create-checkout-session", func(c *gin.Context) {
			CreateCheckoutSession(c, provider)
		})
		authRoutes.POST("/payments/save-session", func(c *gin.Context) {
			SaveSession(c, fb, provider)
		})
		authRoutes.GET("/funding", func(c *gin.Context) {
			ListFunding(c, fb)
		})
	}
}

// CreateCheckoutSession opens a hosted checkout with the external processor
// and returns the redirect URL.
func CreateCheckoutSession(c *gin.Context, provider services.CheckoutProvider) {
	if provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment processor is not configured"})
		return
	}

	var req dto.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := provider.CreateSession(c.Request.Context(), services.CheckoutRequest{
		Amount:        req.Amount,
		CustomerEmail: c.GetString("email"),
		ProductName:   "Blood donation funding",
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL, "sessionId": session.ID})
}

// SaveSession verifies a completed checkout with the processor and records
// it at most once per transaction id. Replaying a session id answers with
// insertedId null. The exists check and the insert are separate store calls;
// concurrent replays of the same id can race.
func SaveSession(c *gin.Context, fb *firestore.Client, provider services.CheckoutProvider) {
	if provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment processor is not configured"})
		return
	}

	var req dto.SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	session, err := provider.GetSession(c.Request.Context(), req.SessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment session"})
		return
	}
	if !session.Paid() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment has not been completed"})
		return
	}

	ctx := context.Background()
	docs, err := fb.Collection("payments").
		Where("transactionId", "==", session.ID).Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing payment"})
		return
	}
	if len(docs) > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "payment already recorded", "insertedId": nil})
		return
	}

	name := session.CustomerName
	if name == "" {
		name = c.GetString("name")
	}
	email := session.CustomerEmail
	if email == "" {
		email = c.GetString("email")
	}

	docid := uuid.New().String()
	record := model.Payment{
		ID:            docid,
		TransactionID: session.ID,
		Name:          name,
		Email:         email,
		Amount:        session.AmountTotal,
		Date:          time.Now(),
	}

	if _, err := fb.Collection("payments").Doc(docid).Set(ctx, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment recorded", "insertedId": docid})
}

func ListFunding(c *gin.Context, fb *firestore.Client) {
	docs, err := fb.Collection("payments").
		OrderBy("date", firestore.Desc).
		Documents(context.Background()).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	payments := make([]model.Payment, 0, len(docs))
	for _, doc := range docs {
		var p model.Payment
		if err := doc.DataTo(&p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse payment"})
			return
		}
		payments = append(payments, p)
	}

	c.JSON(http.StatusOK, payments)
}
