package dto

import "time"

type CertificationResponse struct {
	ID          string    `json:"id"`
	SitterID    string    `json:"sitter_id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	AdminID     *string   `json:"admin_id,omitempty"`
}

type CertificationStatusResponse struct {
	Certified    bool       `json:"certified"`
	ApprovedDate *time.Time `json:"approved_date,omitempty"`
}

type CertificationQueueResponse struct {
	Requests []CertificationResponse `json:"requests"`
	Total    int                     `json:"total"`
}
