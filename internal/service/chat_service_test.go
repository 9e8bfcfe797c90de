package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"daeda-site-be/internal/constant"
	"daeda-site-be/internal/dto"
	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/repository/contract"
	"daeda-site-be/internal/repository/memory"
	"daeda-site-be/internal/repository/specification"
	"daeda-site-be/internal/repository/unitofwork"
	"daeda-site-be/pkg/chatbot"
	"daeda-site-be/pkg/consult/state"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.ChatSession
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	f.sessions[session.Id] = session
	return nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	f.sessions[session.Id] = session
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			return f.sessions[byID.ID], nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	out := make([]*entity.ChatSession, 0, len(f.sessions))
	for _, s := range f.sessions {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.sessions)), nil
}

type fakeMessageRepo struct {
	messages      []*entity.ChatMessage
	failModelSave bool
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	if f.failModelSave && message.Role == constant.ChatMessageRoleModel {
		return errors.New("insert failed")
	}
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return f.messages, nil
}

func (f *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.messages)), nil
}

type fakeContextRepo struct {
	stored *entity.ConversationContext
}

func (f *fakeContextRepo) FindBySession(ctx context.Context, sessionId uuid.UUID) (*entity.ConversationContext, error) {
	return f.stored, nil
}

func (f *fakeContextRepo) Upsert(ctx context.Context, conversationContext *entity.ConversationContext) error {
	f.stored = conversationContext
	return nil
}

type fakeUnitOfWork struct {
	sessions *fakeSessionRepo
	messages *fakeMessageRepo
	contexts *fakeContextRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return f.sessions
}

func (f *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return f.messages
}

func (f *fakeUnitOfWork) ConversationContextRepository() contract.ConversationContextRepository {
	return f.contexts
}

func (f *fakeUnitOfWork) KnowledgeRepository() contract.KnowledgeRepository { return nil }

func (f *fakeUnitOfWork) IdeationSubmissionRepository() contract.IdeationSubmissionRepository {
	return nil
}

func (f *fakeUnitOfWork) ContactSubmissionRepository() contract.ContactSubmissionRepository {
	return nil
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newTestChatService(uow *fakeUnitOfWork, generate func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error)) (*chatService, uuid.UUID) {
	session := &entity.ChatSession{
		Id:     uuid.New(),
		Status: constant.ChatSessionStatusActive,
	}
	uow.sessions.sessions[session.Id] = session

	return &chatService{
		uowFactory:   &fakeFactory{uow: uow},
		contextCache: memory.NewContextCache(),
		stateManager: state.NewManager(),
		logger:       nopLogger{},
		generate:     generate,
	}, session.Id
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		sessions: &fakeSessionRepo{sessions: map[uuid.UUID]*entity.ChatSession{}},
		messages: &fakeMessageRepo{},
		contexts: &fakeContextRepo{},
	}
}

func TestSendChatGenerationFailureFallsBack(t *testing.T) {
	uow := newFakeUnitOfWork()
	s, sessionId := newTestChatService(uow, func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error) {
		return "", errors.New("model unavailable")
	})

	res, err := s.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: sessionId.String(),
		Message:   "I run a retail business with manual data entry problems",
	})
	if err != nil {
		t.Fatalf("SendChat error: %v", err)
	}

	if res.Content != constant.FallbackReply {
		t.Errorf("Content = %q, want the fallback reply", res.Content)
	}
	if len(res.Suggestions) != len(constant.FallbackSuggestions) {
		t.Errorf("Suggestions = %v, want the fallback chips", res.Suggestions)
	}
	if res.IsOffer {
		t.Errorf("IsOffer = true, want false on fallback")
	}

	// Both the user turn and the fallback reply are persisted.
	if len(uow.messages.messages) != 2 {
		t.Errorf("persisted messages = %d, want 2", len(uow.messages.messages))
	}
}

func TestSendChatMessageIdSurvivesPersistFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.messages.failModelSave = true
	s, sessionId := newTestChatService(uow, func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error) {
		return "Here is an idea. [SUGGESTIONS: Tell me more | Pricing]", nil
	})

	res, err := s.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: sessionId.String(),
		Message:   "hello",
	})
	if err != nil {
		t.Fatalf("SendChat error: %v", err)
	}

	id, parseErr := uuid.Parse(res.MessageId)
	if parseErr != nil {
		t.Fatalf("MessageId %q is not a uuid: %v", res.MessageId, parseErr)
	}
	if id == uuid.Nil {
		t.Errorf("MessageId is the zero uuid; a real id must be assigned before persistence")
	}
	if res.Content != "Here is an idea." {
		t.Errorf("Content = %q", res.Content)
	}
}

func TestSendChatUnknownSession(t *testing.T) {
	uow := newFakeUnitOfWork()
	s, _ := newTestChatService(uow, func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error) {
		return "ok", nil
	})

	if _, err := s.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: uuid.NewString(),
		Message:   "hello",
	}); err == nil {
		t.Errorf("expected an error for an unknown session")
	}
}

func TestBuildResearchQuery(t *testing.T) {
	tests := []struct {
		name       string
		industry   string
		painPoints []string
		want       string
	}{
		{
			name:       "industry and top pain point",
			industry:   "retail",
			painPoints: []string{"manual data entry", "inventory management"},
			want:       "retail AI manual data entry",
		},
		{
			name:     "industry only",
			industry: "healthcare",
			want:     "healthcare AI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entity.NewConversationContext(uuid.New())
			c.Industry = tt.industry
			c.PainPoints = tt.painPoints

			if got := buildResearchQuery(c); got != tt.want {
				t.Errorf("buildResearchQuery = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateReplyHistoryShape(t *testing.T) {
	var captured []*chatbot.ChatHistory

	s := &chatService{
		geminiKey: "test-key",
		generate: func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error) {
			if apiKey != "test-key" {
				t.Errorf("apiKey = %q, want %q", apiKey, "test-key")
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("generation context has no deadline")
			}
			captured = histories
			return "a reply", nil
		},
	}

	messages := []*entity.ChatMessage{
		{Content: "hello", Role: constant.ChatMessageRoleUser},
		{Content: "hi there", Role: constant.ChatMessageRoleModel},
		{Content: "I run a retail shop", Role: constant.ChatMessageRoleUser},
	}

	reply, err := s.generateReply(context.Background(), "SYSTEM PROMPT", messages)
	if err != nil {
		t.Fatalf("generateReply error: %v", err)
	}
	if reply != "a reply" {
		t.Errorf("reply = %q", reply)
	}

	if len(captured) != len(messages)+2 {
		t.Fatalf("history length = %d, want %d", len(captured), len(messages)+2)
	}
	if captured[0].Chat != "SYSTEM PROMPT" || captured[0].Role != chatbot.ChatMessageRoleUser {
		t.Errorf("history[0] = %+v, want the persona instruction as a user turn", captured[0])
	}
	if captured[1].Chat != constant.PersonaAcknowledgment || captured[1].Role != chatbot.ChatMessageRoleModel {
		t.Errorf("history[1] = %+v, want the scripted acknowledgment", captured[1])
	}
	for i, msg := range messages {
		if captured[i+2].Chat != msg.Content || captured[i+2].Role != msg.Role {
			t.Errorf("history[%d] = %+v, want %q/%q", i+2, captured[i+2], msg.Content, msg.Role)
		}
	}
}

func TestGenerateReplyPropagatesError(t *testing.T) {
	wantErr := errors.New("model unavailable")
	s := &chatService{
		generate: func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error) {
			return "", wantErr
		},
	}

	if _, err := s.generateReply(context.Background(), "prompt", nil); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestGenerateReplyTimeoutBound(t *testing.T) {
	s := &chatService{
		generate: func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error) {
			deadline, ok := ctx.Deadline()
			if !ok {
				t.Fatalf("generation context has no deadline")
			}
			if remaining := time.Until(deadline); remaining > generateTimeout {
				t.Errorf("deadline %v exceeds the configured timeout %v", remaining, generateTimeout)
			}
			return "ok", nil
		},
	}

	if _, err := s.generateReply(context.Background(), "prompt", nil); err != nil {
		t.Fatalf("generateReply error: %v", err)
	}
}
