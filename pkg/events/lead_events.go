package events

import "time"

const TypeLeadSubmitted = "LEAD_SUBMITTED"

// NewLeadSubmitted is emitted when a chat visitor hands over their
// contact details for a team follow-up.
func NewLeadSubmitted(submissionId, sessionId, name, email, phone, chatSummary string) Event {
	return BaseEvent{
		Type: TypeLeadSubmitted,
		Data: map[string]interface{}{
			"submission_id": submissionId,
			"session_id":    sessionId,
			"name":          name,
			"email":         email,
			"phone":         phone,
			"chat_summary":  chatSummary,
		},
		OccurredAt: time.Now(),
	}
}
