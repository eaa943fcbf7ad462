package model

import "time"

const (
	RequestPending    = "pending"
	RequestInProgress = "inprogress"
	RequestDone       = "done"
	RequestCanceled   = "canceled"
)

// DonationRequest is a single blood donation request document. donationDate
// is kept as the client-supplied YYYY-MM-DD string, matching what the
// dashboards filter on.
type DonationRequest struct {
	ID                string    `firestore:"id,omitempty" json:"id"`
	RequesterName     string    `firestore:"requesterName,omitempty" json:"requesterName"`
	RequesterEmail    string    `firestore:"requesterEmail,omitempty" json:"requesterEmail"`
	RecipientName     string    `firestore:"recipientName,omitempty" json:"recipientName"`
	RecipientDistrict string    `firestore:"recipientDistrict,omitempty" json:"recipientDistrict"`
	RecipientUpazila  string    `firestore:"recipientUpazila,omitempty" json:"recipientUpazila"`
	HospitalName      string    `firestore:"hospitalName,omitempty" json:"hospitalName"`
	FullAddress       string    `firestore:"fullAddress,omitempty" json:"fullAddress"`
	BloodGroup        string    `firestore:"bloodGroup,omitempty" json:"bloodGroup"`
	DonationDate      string    `firestore:"donationDate,omitempty" json:"donationDate"`
	DonationTime      string    `firestore:"donationTime,omitempty" json:"donationTime"`
	RequestMessage    string    `firestore:"requestMessage,omitempty" json:"requestMessage"`
	Status            string    `firestore:"status,omitempty" json:"status"`
	DonorName         string    `firestore:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail        string    `firestore:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	CreatedAt         time.Time `firestore:"createdAt,omitempty" json:"createdAt"`
}
