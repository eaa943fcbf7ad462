package location

import (
	"context"
	"net/http"

	"bloodlink/model"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/iterator"
)

// LocationController serves the seeded reference lists. Both endpoints are
// public and read-only.
func LocationController(router *gin.Engine, fb *firestore.Client) {
	router.GET("/districts", func(c *gin.Context) {
		ListDistricts(c, fb)
	})
	router.GET("/upazilas", func(c *gin.Context) {
		ListUpazilas(c, fb)
	})
}

func ListDistricts(c *gin.Context, fb *firestore.Client) {
	iter := fb.Collection("districts").OrderBy("name", firestore.Asc).Documents(context.Background())

	districts := []model.District{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list districts"})
			return
		}

		var d model.District
		if err := doc.DataTo(&d); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse district"})
			return
		}
		districts = append(districts, d)
	}

	c.JSON(http.StatusOK, districts)
}

func ListUpazilas(c *gin.Context, fb *firestore.Client) {
	query := fb.Collection("upazilas").Query
	if d := c.Query("districtId"); d != "" {
		query = query.Where("districtId", "==", d)
	}
	iter := query.Documents(context.Background())

	upazilas := []model.Upazila{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list upazilas"})
			return
		}

		var u model.Upazila
		if err := doc.DataTo(&u); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse upazila"})
			return
		}
		upazilas = append(upazilas, u)
	}

	c.JSON(http.StatusOK, upazilas)
}
