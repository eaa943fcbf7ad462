package model

import "time"

// Payment is one confirmed checkout session, recorded at most once per
// transaction id. Amount is in whole currency units.
type Payment struct {
	ID            string    `firestore:"id,omitempty" json:"id"`
	TransactionID string    `firestore:"transactionId,omitempty" json:"transactionId"`
	Name          string    `firestore:"name,omitempty" json:"name"`
	Email         string    `firestore:"email,omitempty" json:"email"`
	Amount        int64     `firestore:"amount" json:"amount"`
	Date          time.Time `firestore:"date,omitempty" json:"date"`
}
