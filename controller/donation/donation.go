package donation

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bloodlink/dto"
	"bloodlink/middleware"
	"bloodlink/model"
	"bloodlink/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func DonationController(router *gin.Engine, fb *firestore.Client, verifier services.TokenVerifier) {
	// Public board: pending requests only.
	router.GET("/donation-requests", func(c *gin.Context) {
		ListPublicPending(c, fb)
	})

	authRoutes := router.Group("", middleware.Authenticate(verifier))
	{
		authRoutes.POST("/donation-request", func(c *gin.Context) {
			CreateRequest(c, fb)
		})
		authRoutes.GET("/donation-requests/:email", func(c *gin.Context) {
			ListMine(c, fb)
		})
		authRoutes.GET("/donation-request/:id", func(c *gin.Context) {
			GetRequest(c, fb)
		})
		authRoutes.PUT("/donation-request/:id", func(c *gin.Context) {
			UpdateRequest(c, fb)
		})
		authRoutes.PATCH("/donation-request/status/:id", func(c *gin.Context) {
			SetRequestStatus(c, fb)
		})
		authRoutes.PATCH("/donation-request/donate/:id", func(c *gin.Context) {
			Donate(c, fb)
		})
		authRoutes.DELETE("/donation-request/:id", func(c *gin.Context) {
			DeleteRequest(c, fb)
		})
	}

	adminRoutes := router.Group("", middleware.Authenticate(verifier), middleware.RequireAdmin(fb))
	{
		adminRoutes.GET("/all-donation-requests", func(c *gin.Context) {
			ListAll(c, fb)
		})
	}

	staffRoutes := router.Group("", middleware.Authenticate(verifier), middleware.RequireStaff(fb))
	{
		staffRoutes.GET("/all-blood-donation-requests", func(c *gin.Context) {
			ListAll(c, fb)
		})
	}
}

// CreateRequest inserts a new donation request. Blocked users are rejected
// before anything is written, and the status field is forced to pending no
// matter what the client sent.
func CreateRequest(c *gin.Context, fb *firestore.Client) {
	caller := c.GetString("email")

	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	profile, err := services.GetUserByEmail(ctx, fb, caller)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load caller profile"})
		return
	}
	if profile != nil && profile.Status == model.StatusBlocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "blocked users cannot create donation requests"})
		return
	}

	requesterName := req.RequesterName
	if profile != nil && profile.Name != "" {
		requesterName = profile.Name
	}

	docid := uuid.New().String()
	request := model.DonationRequest{
		ID:                docid,
		RequesterName:     requesterName,
		RequesterEmail:    caller,
		RecipientName:     req.RecipientName,
		RecipientDistrict: req.RecipientDistrict,
		RecipientUpazila:  req.RecipientUpazila,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		RequestMessage:    req.RequestMessage,
		Status:            model.RequestPending,
		CreatedAt:         time.Now(),
	}

	if _, err := fb.Collection("donationRequests").Doc(docid).Set(ctx, request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "donation request created", "insertedId": docid})
}

func ListPublicPending(c *gin.Context, fb *firestore.Client) {
	query := fb.Collection("donationRequests").Where("status", "==", model.RequestPending)
	listRequests(c, query)
}

// ListMine returns the caller's own requests. The path email must match the
// verified token email.
func ListMine(c *gin.Context, fb *firestore.Client) {
	email := c.Param("email")
	if !strings.EqualFold(c.GetString("email"), email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	query := fb.Collection("donationRequests").Where("requesterEmail", "==", email)
	if s := c.Query("status"); s != "" {
		query = query.Where("status", "==", s)
	}
	listRequests(c, query)
}

func ListAll(c *gin.Context, fb *firestore.Client) {
	query := fb.Collection("donationRequests").Query
	if s := c.Query("status"); s != "" {
		query = query.Where("status", "==", s)
	}
	listRequests(c, query)
}

func GetRequest(c *gin.Context, fb *firestore.Client) {
	doc, err := fb.Collection("donationRequests").Doc(c.Param("id")).Get(context.Background())
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load donation request"})
		return
	}

	var request model.DonationRequest
	if err := doc.DataTo(&request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse donation request"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// UpdateRequest edits recipient/hospital/schedule content. Status and donor
// fields never pass through this path. No ownership check beyond
// authentication; any signed-in user may edit any request by id.
func UpdateRequest(c *gin.Context, fb *firestore.Client) {
	var req dto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var updates []firestore.Update
	if req.RecipientName != "" {
		updates = append(updates, firestore.Update{Path: "recipientName", Value: req.RecipientName})
	}
	if req.RecipientDistrict != "" {
		updates = append(updates, firestore.Update{Path: "recipientDistrict", Value: req.RecipientDistrict})
	}
	if req.RecipientUpazila != "" {
		updates = append(updates, firestore.Update{Path: "recipientUpazila", Value: req.RecipientUpazila})
	}
	if req.HospitalName != "" {
		updates = append(updates, firestore.Update{Path: "hospitalName", Value: req.HospitalName})
	}
	if req.FullAddress != "" {
		updates = append(updates, firestore.Update{Path: "fullAddress", Value: req.FullAddress})
	}
	if req.BloodGroup != "" {
		updates = append(updates, firestore.Update{Path: "bloodGroup", Value: req.BloodGroup})
	}
	if req.DonationDate != "" {
		updates = append(updates, firestore.Update{Path: "donationDate", Value: req.DonationDate})
	}
	if req.DonationTime != "" {
		updates = append(updates, firestore.Update{Path: "donationTime", Value: req.DonationTime})
	}
	if req.RequestMessage != "" {
		updates = append(updates, firestore.Update{Path: "requestMessage", Value: req.RequestMessage})
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	updateRequest(c, fb, updates, "donation request updated")
}

// SetRequestStatus overwrites the status with whatever valid label the client
// sent. Transitions are not validated, so done back to pending is accepted.
func SetRequestStatus(c *gin.Context, fb *firestore.Client) {
	var req dto.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updateRequest(c, fb, []firestore.Update{
		{Path: "status", Value: req.Status},
	}, "status updated")
}

// Donate pledges the caller as donor: status becomes inprogress and the donor
// fields are set. The current status is not checked, so a request can be
// re-donated; callers see the latest pledge win.
func Donate(c *gin.Context, fb *firestore.Client) {
	var req dto.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updateRequest(c, fb, []firestore.Update{
		{Path: "status", Value: model.RequestInProgress},
		{Path: "donorName", Value: req.DonorName},
		{Path: "donorEmail", Value: req.DonorEmail},
	}, "donation recorded")
}

func DeleteRequest(c *gin.Context, fb *firestore.Client) {
	if _, err := fb.Collection("donationRequests").Doc(c.Param("id")).Delete(context.Background()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "donation request deleted", "deletedCount": 1})
}

func listRequests(c *gin.Context, query firestore.Query) {
	docs, err := query.Documents(context.Background()).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donation requests"})
		return
	}

	requests := make([]model.DonationRequest, 0, len(docs))
	for _, doc := range docs {
		var r model.DonationRequest
		if err := doc.DataTo(&r); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse donation request"})
			return
		}
		requests = append(requests, r)
	}

	c.JSON(http.StatusOK, requests)
}

func updateRequest(c *gin.Context, fb *firestore.Client, updates []firestore.Update, message string) {
	id := c.Param("id")
	_, err := fb.Collection("donationRequests").Doc(id).Update(context.Background(), updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusOK, gin.H{"message": message, "modifiedCount": 0})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "modifiedCount": 1})
}
