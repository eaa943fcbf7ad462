package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
)

// SeedReferenceData writes the district and upazila reference lists. Doc ids
// are fixed, so reseeding overwrites in place instead of duplicating.
func SeedReferenceData(ctx context.Context, fb *firestore.Client) error {
	for _, d := range districts {
		if _, err := fb.Collection("districts").Doc(d.ID).Set(ctx, d); err != nil {
			return fmt.Errorf("seed district %s: %w", d.Name, err)
		}
	}
	logrus.WithField("count", len(districts)).Info("districts seeded")

	for _, u := range upazilas {
		if _, err := fb.Collection("upazilas").Doc(u.ID).Set(ctx, u); err != nil {
			return fmt.Errorf("seed upazila %s: %w", u.Name, err)
		}
	}
	logrus.WithField("count", len(upazilas)).Info("upazilas seeded")

	return nil
}
