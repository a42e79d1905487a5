package models

// Session is the authenticated caller resolved for a request.
type Session struct {
	UserID       uint   `json:"id"`
	Role         Role   `json:"role"`
	HospitalID   uint   `json:"hospitalId"`
	HospitalName string `json:"hospitalName"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}
