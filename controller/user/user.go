package user

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

func UserController(router *gin.Engine, fb *firestore.Client, verifier services.TokenVerifier) {
	router.POST("/users", func(c *gin.Context) {
		RegisterUser(c, fb)
	})

	authRoutes := router.Group("", middleware.Authenticate(verifier))
	{
		authRoutes.GET("/users/role/:email", func(c *gin.Context) {
			GetUserRole(c, fb)
		})
		authRoutes.GET("/user/:email", func(c *gin.Context) {
			GetProfile(c, fb)
		})
		authRoutes.PATCH("/user/:email", func(c *gin.Context) {
			UpdateProfile(c, fb)
		})
	}

	adminRoutes := router.Group("", middleware.Authenticate(verifier), middleware.RequireAdmin(fb))
	{
		adminRoutes.GET("/all-users", func(c *gin.Context) {
			ListUsers(c, fb)
		})
		adminRoutes.PATCH("/users/status/:id", func(c *gin.Context) {
			SetUserStatus(c, fb)
		})
		adminRoutes.PATCH("/users/role/:id", func(c *gin.Context) {
			SetUserRole(c, fb)
		})
	}
}

// RegisterUser inserts a profile on first sign-in. Registering the same email
// again responds with insertedId null instead of an error. The exists check
// and the insert are separate store calls, so concurrent first sign-ins can
// race; the sign-in flow never issues them in parallel.
func RegisterUser(c *gin.Context, fb *firestore.Client) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ctx := context.Background()
	existing, err := services.GetUserByEmail(ctx, fb, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	docid := uuid.New().String()
	newUser := model.User{
		ID:         docid,
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     req.Avatar,
		District:   req.District,
		Upazila:    req.Upazila,
		BloodGroup: req.BloodGroup,
		Phone:      req.Phone,
		Role:       model.RoleDonor,
		Status:     model.StatusActive,
		CreatedAt:  time.Now(),
	}

	if _, err := fb.Collection("users").Doc(docid).Set(ctx, newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user created", "insertedId": docid})
}

// GetUserRole is self-lookup only. A missing profile yields an empty role,
// not an error.
func GetUserRole(c *gin.Context, fb *firestore.Client) {
	email := c.Param("email")
	if !callerMatches(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	role, err := services.GetUserRole(context.Background(), fb, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

func GetProfile(c *gin.Context, fb *firestore.Client) {
	email := c.Param("email")
	if !callerMatches(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	user, err := services.GetUserByEmail(context.Background(), fb, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies the self-service allow-list. Role and status never
// pass through here.
func UpdateProfile(c *gin.Context, fb *firestore.Client) {
	email := c.Param("email")
	if !callerMatches(c, email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var updates []firestore.Update
	if req.Name != "" {
		updates = append(updates, firestore.Update{Path: "name", Value: req.Name})
	}
	if req.Avatar != "" {
		updates = append(updates, firestore.Update{Path: "avatar", Value: req.Avatar})
	}
	if req.District != "" {
		updates = append(updates, firestore.Update{Path: "district", Value: req.District})
	}
	if req.Upazila != "" {
		updates = append(updates, firestore.Update{Path: "upazila", Value: req.Upazila})
	}
	if req.BloodGroup != "" {
		updates = append(updates, firestore.Update{Path: "bloodGroup", Value: req.BloodGroup})
	}
	if req.Phone != "" {
		updates = append(updates, firestore.Update{Path: "phone", Value: req.Phone})
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	ctx := context.Background()
	ref, err := services.GetUserRef(ctx, fb, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if ref == nil {
		c.JSON(http.StatusOK, gin.H{"message": "profile updated", "modifiedCount": 0})
		return
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "modifiedCount": 1})
}

func ListUsers(c *gin.Context, fb *firestore.Client) {
	query := fb.Collection("users").Query
	if s := c.Query("status"); s != "" {
		query = query.Where("status", "==", s)
	}

	docs, err := query.Documents(context.Background()).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		var u model.User
		if err := doc.DataTo(&u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
		users = append(users, u)
	}

	c.JSON(http.StatusOK, users)
}

func SetUserStatus(c *gin.Context, fb *firestore.Client) {
	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updateUserField(c, fb, "status", req.Status, "status updated")
}

func SetUserRole(c *gin.Context, fb *firestore.Client) {
	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updateUserField(c, fb, "role", req.Role, "role updated")
}

// updateUserField writes one admin-controlled field by doc id. A missing
// document reports modifiedCount 0 rather than an error, mirroring how reads
// treat absent documents.
func updateUserField(c *gin.Context, fb *firestore.Client, field, value, message string) {
	id := c.Param("id")
	_, err := fb.Collection("users").Doc(id).Update(context.Background(), []firestore.Update{
		{Path: field, Value: value},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusOK, gin.H{"message": message, "modifiedCount": 0})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "modifiedCount": 1})
}

func callerMatches(c *gin.Context, email string) bool {
	return strings.EqualFold(c.GetString("email"), email)
}
