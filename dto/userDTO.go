package dto

type RegisterUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required"`
	Avatar     string `json:"avatar"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	BloodGroup string `json:"bloodGroup"`
	Phone      string `json:"phone"`
}

// UpdateProfileRequest carries the self-service fields. Role and status are
// deliberately absent; they only change through the admin endpoints.
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	BloodGroup string `json:"bloodGroup"`
	Phone      string `json:"phone"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active blocked"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=donor volunteer admin"`
}
