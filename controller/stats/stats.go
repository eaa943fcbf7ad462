package stats

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bloodlink/middleware"
	"bloodlink/model"
	"bloodlink/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func StatsController(router *gin.Engine, fb *firestore.Client, verifier services.TokenVerifier) {
	staffRoutes := router.Group("", middleware.Authenticate(verifier), middleware.RequireStaff(fb))
	{
		staffRoutes.GET("/admin-stats", func(c *gin.Context) {
			AdminStats(c, fb)
		})
	}

	authRoutes := router.Group("", middleware.Authenticate(verifier))
	{
		authRoutes.GET("/user-stats/:email", func(c *gin.Context) {
			UserStats(c, fb)
		})
	}
}

// AdminStats computes the dashboard numbers on demand. Users and requests
// are fetched for the group-bys; payment totals come from a single server-side
// aggregation so ledger documents never leave the store.
func AdminStats(c *gin.Context, fb *firestore.Client) {
	ctx := context.Background()

	userDocs, err := fb.Collection("users").Documents(ctx).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	users := make([]model.User, 0, len(userDocs))
	for _, doc := range userDocs {
		var u model.User
		if err := doc.DataTo(&u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
		users = append(users, u)
	}

	requestDocs, err := fb.Collection("donationRequests").Documents(ctx).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load donation requests"})
		return
	}
	requests := make([]model.DonationRequest, 0, len(requestDocs))
	for _, doc := range requestDocs {
		var r model.DonationRequest
		if err := doc.DataTo(&r); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse donation request"})
			return
		}
		requests = append(requests, r)
	}

	agg, err := fb.Collection("payments").
		NewAggregationQuery().
		WithCount("donations").
		WithSum("amount", "revenue").
		Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":       len(users),
		"totalRequests":    len(requests),
		"totalDonations":   services.AggregateInt(agg["donations"]),
		"totalRevenue":     services.AggregateInt(agg["revenue"]),
		"usersByStatus":    services.UserStatusCounts(users),
		"requestsByStatus": services.RequestStatusCounts(requests),
		"monthlyRequests":  services.MonthlyRequestCounts(requests, time.Now()),
	})
}

// UserStats is the donor dashboard: the caller's own requests plus the
// requests they donated to.
func UserStats(c *gin.Context, fb *firestore.Client) {
	email := c.Param("email")
	if !strings.EqualFold(c.GetString("email"), email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	ctx := context.Background()
	mine, err := fetchRequests(ctx, fb, "requesterEmail", email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load donation requests"})
		return
	}
	donated, err := fetchRequests(ctx, fb, "donorEmail", email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load donation requests"})
		return
	}

	summary := services.BuildDonorSummary(mine, donated, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"donationsDone":         summary.DonationsDone,
		"totalRequests":         summary.TotalRequests,
		"activeRequests":        summary.ActiveRequests,
		"currentMonthDonations": summary.CurrentMonthDonations,
		"level":                 summary.Level,
		"averageResponseTime":   services.AverageResponseTime,
	})
}

func fetchRequests(ctx context.Context, fb *firestore.Client, field, email string) ([]model.DonationRequest, error) {
	docs, err := fb.Collection("donationRequests").Where(field, "==", email).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	requests := make([]model.DonationRequest, 0, len(docs))
	for _, doc := range docs {
		var r model.DonationRequest
		if err := doc.DataTo(&r); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, nil
}
