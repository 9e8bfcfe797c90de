package dto

import "time"

type CreateSessionResponse struct {
	SessionId      string `json:"session_id"`
	Status         string `json:"status"`
	WelcomeMessage string `json:"welcome_message"`
}

type ChatMessageResponse struct {
	Id          string    `json:"id"`
	Content     string    `json:"content"`
	Role        string    `json:"role"`
	Suggestions []string  `json:"suggestions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type GetChatHistoryResponse struct {
	SessionId string                 `json:"session_id"`
	Status    string                 `json:"status"`
	Messages  []*ChatMessageResponse `json:"messages"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid"`
	Message   string `json:"message" validate:"required"`
	// Optional explicit profile hints from the frontend. They take
	// priority over anything extracted from the message text.
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
}

type SendChatResponse struct {
	MessageId   string   `json:"message_id"`
	Content     string   `json:"content"`
	Suggestions []string `json:"suggestions"`
	IsOffer     bool     `json:"is_offer"`
	Stage       string   `json:"stage"`
}

type HandoffRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid"`
	Accepted  bool   `json:"accepted"`
}

type HandoffResponse struct {
	Content string `json:"content"`
}

type SubmissionRequest struct {
	SessionId   string `json:"session_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	ChatSummary string `json:"chat_summary"`
}

type SubmissionResponse struct {
	SubmissionId  string `json:"submission_id"`
	SessionStatus string `json:"session_status"`
}
