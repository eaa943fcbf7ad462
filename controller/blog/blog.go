package blog

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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func BlogController(router *gin.Engine, fb *firestore.Client, verifier services.TokenVerifier) {
	// The list is public and applies only the requested filter: without one
	// drafts are returned too, there is no public/admin split here.
	router.GET("/blogs", func(c *gin.Context) {
		ListBlogs(c, fb)
	})
	router.GET("/blogs/:id", func(c *gin.Context) {
		GetBlog(c, fb)
	})

	adminRoutes := router.Group("", middleware.Authenticate(verifier), middleware.RequireAdmin(fb))
	{
		adminRoutes.POST("/blogs", func(c *gin.Context) {
			CreateBlog(c, fb)
		})
		adminRoutes.PATCH("/blogs/status/:id", func(c *gin.Context) {
			SetBlogStatus(c, fb)
		})
		adminRoutes.DELETE("/blogs/:id", func(c *gin.Context) {
			DeleteBlog(c, fb)
		})
	}
}

// CreateBlog inserts a new post, always as a draft.
func CreateBlog(c *gin.Context, fb *firestore.Client) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	docid := uuid.New().String()
	post := model.Blog{
		ID:        docid,
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Content:   req.Content,
		Status:    model.BlogDraft,
		CreatedAt: time.Now(),
	}

	if _, err := fb.Collection("blogs").Doc(docid).Set(context.Background(), post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog created", "insertedId": docid})
}

func ListBlogs(c *gin.Context, fb *firestore.Client) {
	query := fb.Collection("blogs").Query
	if s := c.Query("status"); s != "" {
		query = query.Where("status", "==", s)
	}

	docs, err := query.Documents(context.Background()).GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list blogs"})
		return
	}

	blogs := make([]model.Blog, 0, len(docs))
	for _, doc := range docs {
		var b model.Blog
		if err := doc.DataTo(&b); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse blog"})
			return
		}
		blogs = append(blogs, b)
	}

	c.JSON(http.StatusOK, blogs)
}

func GetBlog(c *gin.Context, fb *firestore.Client) {
	doc, err := fb.Collection("blogs").Doc(c.Param("id")).Get(context.Background())
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blog"})
		return
	}

	var post model.Blog
	if err := doc.DataTo(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse blog"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func SetBlogStatus(c *gin.Context, fb *firestore.Client) {
	var req dto.UpdateBlogStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id := c.Param("id")
	_, err := fb.Collection("blogs").Doc(id).Update(context.Background(), []firestore.Update{
		{Path: "status", Value: req.Status},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.JSON(http.StatusOK, gin.H{"message": "status updated", "modifiedCount": 0})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "modifiedCount": 1})
}

func DeleteBlog(c *gin.Context, fb *firestore.Client) {
	if _, err := fb.Collection("blogs").Doc(c.Param("id")).Delete(context.Background()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "blog deleted", "deletedCount": 1})
}
