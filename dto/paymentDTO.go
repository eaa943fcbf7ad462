package dto

type CreateCheckoutSessionRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

type SaveSessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
