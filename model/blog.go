package model

import "time"

const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

type Blog struct {
	ID        string    `firestore:"id,omitempty" json:"id"`
	Title     string    `firestore:"title,omitempty" json:"title"`
	Thumbnail string    `firestore:"thumbnail,omitempty" json:"thumbnail"`
	Content   string    `firestore:"content,omitempty" json:"content"`
	Status    string    `firestore:"status,omitempty" json:"status"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt"`
}
