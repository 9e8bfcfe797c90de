package dto

import (
	"testing"

	"daeda-site-be/internal/pkg/serverutils"

	"github.com/google/uuid"
)

func TestSubmissionRequestValidation(t *testing.T) {
	sessionId := uuid.NewString()

	tests := []struct {
		name    string
		req     SubmissionRequest
		wantErr bool
	}{
		{
			name: "phone is optional",
			req: SubmissionRequest{
				SessionId: sessionId,
				Name:      "Ada",
				Email:     "ada@example.com",
			},
			wantErr: false,
		},
		{
			name: "full submission",
			req: SubmissionRequest{
				SessionId: sessionId,
				Name:      "Ada",
				Email:     "ada@example.com",
				Phone:     "+62 812 0000 0000",
			},
			wantErr: false,
		},
		{
			name: "name is required",
			req: SubmissionRequest{
				SessionId: sessionId,
				Email:     "ada@example.com",
			},
			wantErr: true,
		},
		{
			name: "email must be well formed",
			req: SubmissionRequest{
				SessionId: sessionId,
				Name:      "Ada",
				Email:     "not-an-email",
			},
			wantErr: true,
		},
		{
			name: "session id must be a uuid",
			req: SubmissionRequest{
				SessionId: "abc",
				Name:      "Ada",
				Email:     "ada@example.com",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := serverutils.ValidateRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
