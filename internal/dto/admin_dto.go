package dto

import "time"

type IdeationSubmissionResponse struct {
	Id          string    `json:"id"`
	SessionId   string    `json:"session_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ChatSummary string    `json:"chat_summary"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactSubmissionResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type KnowledgeEntryResponse struct {
	Id             string    `json:"id"`
	Query          string    `json:"query"`
	Summary        string    `json:"summary"`
	SourceType     string    `json:"source_type"`
	UseCount       int       `json:"use_count"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	CreatedAt      time.Time `json:"created_at"`
}
