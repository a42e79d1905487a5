package models

import (
	"time"

	"gorm.io/datatypes"
)

// Survey is a patient feedback questionnaire.
type Survey struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index" json:"hospitalId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`

	Questions []SurveyQuestion `gorm:"foreignKey:SurveyID" json:"questions,omitempty"`
}

// TableName specifies the table name for Survey model
func (Survey) TableName() string {
	return "surveys"
}

// SurveyQuestion holds choice options as a JSON array.
type SurveyQuestion struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	SurveyID uint           `gorm:"not null;index" json:"surveyId"`
	Prompt   string         `gorm:"type:text;not null" json:"prompt"`
	Kind     string         `gorm:"size:30;not null" json:"kind"`
	Options  datatypes.JSON `json:"options"`
	Position int            `json:"position"`
}

// TableName specifies the table name for SurveyQuestion model
func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

type SurveyResponse struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SurveyID     uint      `gorm:"not null;index" json:"surveyId"`
	HospitalID   uint      `gorm:"not null;index" json:"hospitalId"`
	RespondentID *uint     `json:"respondentId"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// TableName specifies the table name for SurveyResponse model
func (SurveyResponse) TableName() string {
	return "survey_responses"
}

type SurveyAnswer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ResponseID uint   `gorm:"not null;index" json:"responseId"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	Value      string `gorm:"type:text" json:"value"`
}

// TableName specifies the table name for SurveyAnswer model
func (SurveyAnswer) TableName() string {
	return "survey_answers"
}

// SurveyTableStatus reports which survey tables exist in this deployment.
type SurveyTableStatus struct {
	Exists bool            `json:"exists"`
	Tables map[string]bool `json:"tables"`
}
