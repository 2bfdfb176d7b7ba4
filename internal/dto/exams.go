package dto

// CreateExamRequest records a diagnostic study order.
type CreateExamRequest struct {
	PatientID   string `json:"patient_id" validate:"required,uuid"`
	CaseID      string `json:"case_id,omitempty" validate:"omitempty,uuid"`
	FacilityID  string `json:"facility_id,omitempty" validate:"omitempty,uuid"`
	ExamType    string `json:"exam_type" validate:"required,min=1,max=120"`
	PerformedAt string `json:"performed_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ReportURL   string `json:"report_url,omitempty" validate:"omitempty,url"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=ordered performed reported cancelled"`
}

// UpdateExamRequest captures partial exam updates.
type UpdateExamRequest struct {
	CaseID      *string `json:"case_id,omitempty" validate:"omitempty,uuid"`
	FacilityID  *string `json:"facility_id,omitempty" validate:"omitempty,uuid"`
	ExamType    *string `json:"exam_type,omitempty" validate:"omitempty,min=1,max=120"`
	PerformedAt *string `json:"performed_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ReportURL   *string `json:"report_url,omitempty" validate:"omitempty,url"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=ordered performed reported cancelled"`
}
