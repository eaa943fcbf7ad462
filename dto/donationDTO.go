package dto

// CreateDonationRequest accepts a status field but the handler discards it;
// new requests always start as pending.
type CreateDonationRequest struct {
	RequesterName     string `json:"requesterName"`
	RecipientName     string `json:"recipientName" binding:"required"`
	RecipientDistrict string `json:"recipientDistrict" binding:"required"`
	RecipientUpazila  string `json:"recipientUpazila"`
	HospitalName      string `json:"hospitalName" binding:"required"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup" binding:"required"`
	DonationDate      string `json:"donationDate" binding:"required"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
	Status            string `json:"status"`
}

type UpdateDonationRequest struct {
	RecipientName     string `json:"recipientName"`
	RecipientDistrict string `json:"recipientDistrict"`
	RecipientUpazila  string `json:"recipientUpazila"`
	HospitalName      string `json:"hospitalName"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup"`
	DonationDate      string `json:"donationDate"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending inprogress done canceled"`
}

type DonateRequest struct {
	DonorName  string `json:"donorName" binding:"required"`
	DonorEmail string `json:"donorEmail" binding:"required,email"`
}
