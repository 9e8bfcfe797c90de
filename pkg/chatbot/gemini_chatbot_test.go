package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withStubEndpoint(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	original := geminiEndpoint
	geminiEndpoint = server.URL
	t.Cleanup(func() {
		geminiEndpoint = original
		server.Close()
	})
}

func TestGetGeminiResponse(t *testing.T) {
	var gotReq GeminiChatRequest
	var gotKey string

	withStubEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"generated reply"}],"role":"model"}}]}`))
	})

	histories := []*ChatHistory{
		{Chat: "system prompt", Role: ChatMessageRoleUser},
		{Chat: "understood", Role: ChatMessageRoleModel},
		{Chat: "hello", Role: ChatMessageRoleUser},
	}

	got, err := GetGeminiResponse(context.Background(), "test-key", histories)
	if err != nil {
		t.Fatalf("GetGeminiResponse error: %v", err)
	}
	if got != "generated reply" {
		t.Errorf("reply = %q, want %q", got, "generated reply")
	}
	if gotKey != "test-key" {
		t.Errorf("x-goog-api-key = %q, want %q", gotKey, "test-key")
	}

	if len(gotReq.Contents) != 3 {
		t.Fatalf("len(Contents) = %d, want 3", len(gotReq.Contents))
	}
	for i, history := range histories {
		content := gotReq.Contents[i]
		if content.Role != history.Role || len(content.Parts) != 1 || content.Parts[0].Text != history.Chat {
			t.Errorf("Contents[%d] = %+v, want %q/%q", i, content, history.Chat, history.Role)
		}
	}

	if gotReq.GenerationConfig == nil {
		t.Fatalf("GenerationConfig missing")
	}
	if gotReq.GenerationConfig.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", gotReq.GenerationConfig.Temperature)
	}
	if gotReq.GenerationConfig.MaxOutputTokens != 2048 {
		t.Errorf("MaxOutputTokens = %v, want 2048", gotReq.GenerationConfig.MaxOutputTokens)
	}
}

func TestGetGeminiResponseNonOKStatus(t *testing.T) {
	withStubEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"quota"}`))
	})

	if _, err := GetGeminiResponse(context.Background(), "test-key", nil); err == nil {
		t.Errorf("expected an error on a non-200 response")
	}
}

func TestGetGeminiResponseEmptyCandidates(t *testing.T) {
	withStubEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := GetGeminiResponse(context.Background(), "test-key", nil); err == nil {
		t.Errorf("expected an error when no candidates are returned")
	}
}
