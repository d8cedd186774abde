package dto

import "time"

type DocumentInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type StatusResponse struct {
	Indexed       bool           `json:"indexed"`
	UpToDate      bool           `json:"up_to_date"`
	VectorStoreID string         `json:"vector_store_id,omitempty"`
	Documents     []DocumentInfo `json:"documents"`
	IndexedFiles  []string       `json:"indexed_files"`
	LastIndexTime *time.Time     `json:"last_index_time,omitempty"`
}

type IndexResponse struct {
	VectorStoreID string    `json:"vector_store_id"`
	Status        string    `json:"status"`
	IndexedFiles  []string  `json:"indexed_files"`
	IndexedAt     time.Time `json:"indexed_at"`
}

type AskRequest struct {
	Question string `json:"question" validate:"required,min=2"`
	Model    string `json:"model,omitempty"`
}

type AskResponse struct {
	Answer string `json:"answer"`
	Model  string `json:"model"`
	Cached bool   `json:"cached,omitempty"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}
