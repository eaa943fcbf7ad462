package model

type District struct {
	ID   string `firestore:"id,omitempty" json:"id"`
	Name string `firestore:"name,omitempty" json:"name"`
}

type Upazila struct {
	ID         string `firestore:"id,omitempty" json:"id"`
	DistrictID string `firestore:"districtId,omitempty" json:"districtId"`
	Name       string `firestore:"name,omitempty" json:"name"`
}
