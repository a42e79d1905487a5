package models

import "time"

// AdmissionStatus tracks an inpatient stay.
type AdmissionStatus string

const (
	AdmissionAdmitted   AdmissionStatus = "admitted"
	AdmissionDischarged AdmissionStatus = "discharged"
)

// Admission is a patient's inpatient stay. Version is bumped on every write
// and guards concurrent updates.
type Admission struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	HospitalID           uint            `gorm:"not null;index" json:"hospitalId"`
	PatientID            uint            `gorm:"not null;index" json:"patientId"`
	DoctorID             uint            `gorm:"not null;index" json:"doctorId"`
	Ward                 string          `gorm:"size:100" json:"ward"`
	BedNumber            string          `gorm:"size:20" json:"bedNumber"`
	Reason               string          `gorm:"type:text" json:"reason"`
	Status               AdmissionStatus `gorm:"type:enum('admitted','discharged');default:'admitted';index" json:"status"`
	AdmissionDate        time.Time       `gorm:"not null" json:"admissionDate"`
	DischargeDate        *time.Time      `json:"dischargeDate"`
	DischargeSummary     string          `gorm:"type:text" json:"dischargeSummary"`
	FollowUpInstructions string          `gorm:"type:text" json:"followUpInstructions"`
	DischargedBy         *uint           `json:"dischargedBy"`
	Version              uint            `gorm:"not null;default:1" json:"version"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}
