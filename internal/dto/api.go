package dto

import "drh-client/internal/domain"

// AnswersRequest is the body of POST /api/answers.
type AnswersRequest struct {
	EntryIDs []int64 `json:"entry_ids"`
	Store    bool    `json:"store"`
}

// HealthResponse reports the reachability of the backing services.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// WriteResponse wraps the raw DRH reply of a write endpoint.
type WriteResponse struct {
	Status int         `json:"status"`
	Body   interface{} `json:"body"`
}

// EntryAnswersResponse is the body of GET /api/entries/:id/answers.
type EntryAnswersResponse struct {
	EntryID int64              `json:"entry_id"`
	Rows    []domain.AnswerRow `json:"rows"`
}

// RunAnswersResponse is the body of GET /api/runs/:id/answers.
type RunAnswersResponse struct {
	Run  *domain.ExtractionRun `json:"run"`
	Rows []domain.AnswerRow    `json:"rows"`
}
