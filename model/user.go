package model

import "time"

const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

type User struct {
	ID         string    `firestore:"id,omitempty" json:"id"`
	Email      string    `firestore:"email,omitempty" json:"email"`
	Name       string    `firestore:"name,omitempty" json:"name"`
	Avatar     string    `firestore:"avatar,omitempty" json:"avatar"`
	District   string    `firestore:"district,omitempty" json:"district"`
	Upazila    string    `firestore:"upazila,omitempty" json:"upazila"`
	BloodGroup string    `firestore:"bloodGroup,omitempty" json:"bloodGroup"`
	Phone      string    `firestore:"phone,omitempty" json:"phone"`
	Role       string    `firestore:"role,omitempty" json:"role"`
	Status     string    `firestore:"status,omitempty" json:"status"`
	CreatedAt  time.Time `firestore:"createdAt,omitempty" json:"createdAt"`
}
