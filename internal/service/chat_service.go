package service

import (
	"context"
	"strings"
	"time"

	"daeda-site-be/internal/constant"
	"daeda-site-be/internal/dto"
	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/repository/memory"
	"daeda-site-be/internal/repository/specification"
	"daeda-site-be/internal/repository/unitofwork"
	"daeda-site-be/pkg/chatbot"
	"daeda-site-be/pkg/consult/catalog"
	"daeda-site-be/pkg/consult/insight"
	"daeda-site-be/pkg/consult/prompt"
	"daeda-site-be/pkg/consult/response"
	"daeda-site-be/pkg/consult/stage"
	"daeda-site-be/pkg/consult/state"
	"daeda-site-be/pkg/events"
	pktNats "daeda-site-be/pkg/nats"
	"daeda-site-be/pkg/research"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Context accumulation scans at most this many recent messages.
	historyWindow = 10

	// Research only kicks in once the conversation has this many
	// persisted messages, so early small talk never burns a search.
	researchMinMessages = 3

	generateTimeout = 30 * time.Second
)

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Handoff(ctx context.Context, req *dto.HandoffRequest) (*dto.HandoffResponse, error)
	SubmitLead(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error)
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	contextCache *memory.ContextCache
	stateManager *state.Manager
	researcher   *research.Orchestrator
	natsPub      *pktNats.Publisher
	geminiKey    string
	logger       logger.ILogger

	// Swappable for tests.
	generate func(ctx context.Context, apiKey string, histories []*chatbot.ChatHistory) (string, error)
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	contextCache *memory.ContextCache,
	researcher *research.Orchestrator,
	natsPub *pktNats.Publisher,
	geminiKey string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		contextCache: contextCache,
		stateManager: state.NewManager(),
		researcher:   researcher,
		natsPub:      natsPub,
		geminiKey:    geminiKey,
		logger:       log,
		generate:     chatbot.GetGeminiResponse,
	}
}

func (s *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Status:    constant.ChatSessionStatusActive,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	welcome := &entity.ChatMessage{
		Content:       constant.WelcomeMessage,
		Role:          constant.ChatMessageRoleModel,
		Suggestions:   constant.FallbackSuggestions,
		ChatSessionId: session.Id,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, welcome); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		SessionId:      session.Id.String(),
		Status:         session.Status,
		WelcomeMessage: welcome.Content,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionId uuid.UUID) (*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.GetChatHistoryResponse{
		SessionId: session.Id.String(),
		Status:    session.Status,
		Messages:  make([]*dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		res.Messages = append(res.Messages, &dto.ChatMessageResponse{
			Id:          msg.Id.String(),
			Content:     msg.Content,
			Role:        msg.Role,
			Suggestions: msg.Suggestions,
			CreatedAt:   msg.CreatedAt,
		})
	}
	return res, nil
}

func (s *chatService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sessionId, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	userMsg := &entity.ChatMessage{
		Content:       req.Message,
		Role:          constant.ChatMessageRoleUser,
		ChatSessionId: sessionId,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	messageCount := len(messages)

	// Accumulate conversation context for this turn
	conversationContext := s.accumulateContext(ctx, uow, sessionId, req, messages)

	st := stage.FromMessageCount(messageCount)

	researchDigest := ""
	if s.researcher != nil && st == stage.Exploration && conversationContext.Industry != "" && messageCount >= researchMinMessages {
		query := buildResearchQuery(conversationContext)
		researchDigest = s.researcher.Research(ctx, query, conversationContext.Industry, strings.Join(conversationContext.PainPoints, "; "))
	}

	useCases := catalog.RelevantUseCases(conversationContext.Industry)
	solutions := catalog.MatchingSolutions(conversationContext.PainPoints)
	questions := prompt.SuggestedQuestions(conversationContext, messageCount)

	systemPrompt := prompt.NewBuilder(conversationContext, st, useCases, solutions, questions, researchDigest).Build()

	reply, err := s.generateReply(ctx, systemPrompt, messages)

	var processed response.Processed
	if err != nil {
		s.logger.Error("ChatService", "Text generation failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		processed = response.Processed{
			Content:     constant.FallbackReply,
			Suggestions: constant.FallbackSuggestions,
		}
	} else {
		processed = response.Process(reply)
	}

	// The id is assigned up front so the response still carries a usable
	// message id when the insert below fails.
	modelMsg := &entity.ChatMessage{
		Id:            uuid.New(),
		Content:       processed.Content,
		Role:          constant.ChatMessageRoleModel,
		Suggestions:   processed.Suggestions,
		ChatSessionId: sessionId,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, modelMsg); err != nil {
		// The visitor already has their reply; losing the stored copy
		// is preferable to failing the request.
		s.logger.Error("ChatService", "Failed to persist model message", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}

	return &dto.SendChatResponse{
		MessageId:   modelMsg.Id.String(),
		Content:     processed.Content,
		Suggestions: processed.Suggestions,
		IsOffer:     processed.IsOffer,
		Stage:       string(st),
	}, nil
}

func (s *chatService) accumulateContext(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	sessionId uuid.UUID,
	req *dto.SendChatRequest,
	messages []*entity.ChatMessage,
) *entity.ConversationContext {
	prev, found := s.contextCache.Get(sessionId)
	if !found {
		stored, err := uow.ConversationContextRepository().FindBySession(ctx, sessionId)
		if err != nil {
			s.logger.Warn("ChatService", "Failed to load stored context", map[string]interface{}{
				"session_id": sessionId.String(),
				"error":      err.Error(),
			})
		} else {
			prev = stored
		}
	}

	window := messages
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}

	ins := insight.Extract(req.Message)
	updated := s.stateManager.Accumulate(sessionId, prev, ins, req.Industry, req.CompanySize, window)

	if err := uow.ConversationContextRepository().Upsert(ctx, updated); err != nil {
		// Context persistence is best-effort; the in-memory copy keeps
		// this session coherent.
		s.logger.Warn("ChatService", "Failed to persist context", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
	s.contextCache.Save(updated)

	return updated
}

func (s *chatService) generateReply(ctx context.Context, systemPrompt string, messages []*entity.ChatMessage) (string, error) {
	histories := make([]*chatbot.ChatHistory, 0, len(messages)+2)
	histories = append(histories, &chatbot.ChatHistory{
		Chat: systemPrompt,
		Role: chatbot.ChatMessageRoleUser,
	})
	histories = append(histories, &chatbot.ChatHistory{
		Chat: constant.PersonaAcknowledgment,
		Role: chatbot.ChatMessageRoleModel,
	})
	for _, msg := range messages {
		histories = append(histories, &chatbot.ChatHistory{
			Chat: msg.Content,
			Role: msg.Role,
		})
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	return s.generate(genCtx, s.geminiKey, histories)
}

func buildResearchQuery(c *entity.ConversationContext) string {
	parts := []string{c.Industry, "AI"}
	if len(c.PainPoints) > 0 {
		parts = append(parts, c.PainPoints[0])
	}
	return strings.Join(parts, " ")
}

func (s *chatService) Handoff(ctx context.Context, req *dto.HandoffRequest) (*dto.HandoffResponse, error) {
	sessionId, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	if req.Accepted {
		// The frontend opens the lead form; nothing to add to the chat.
		return &dto.HandoffResponse{}, nil
	}

	declined := &entity.ChatMessage{
		Content:       constant.HandoffDeclinedReply,
		Role:          constant.ChatMessageRoleModel,
		ChatSessionId: sessionId,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, declined); err != nil {
		return nil, err
	}

	return &dto.HandoffResponse{Content: declined.Content}, nil
}

func (s *chatService) SubmitLead(ctx context.Context, req *dto.SubmissionRequest) (*dto.SubmissionResponse, error) {
	sessionId, err := uuid.Parse(req.SessionId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	chatSummary := req.ChatSummary
	if chatSummary == "" {
		chatSummary = s.summarizeSession(ctx, uow, sessionId)
	}

	submission := &entity.IdeationSubmission{
		ChatSessionId: sessionId,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ChatSummary:   chatSummary,
		CreatedAt:     time.Now(),
	}
	if err := uow.IdeationSubmissionRepository().Create(ctx, submission); err != nil {
		return nil, err
	}

	session.Status = constant.ChatSessionStatusSubmitted
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if s.natsPub != nil {
		event := events.NewLeadSubmitted(
			submission.Id.String(),
			sessionId.String(),
			submission.Name,
			submission.Email,
			submission.Phone,
			submission.ChatSummary,
		)
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Error("ChatService", "Failed to publish lead event", map[string]interface{}{
				"submission_id": submission.Id.String(),
				"error":         err.Error(),
			})
		}
	}

	return &dto.SubmissionResponse{
		SubmissionId:  submission.Id.String(),
		SessionStatus: session.Status,
	}, nil
}

// summarizeSession builds a plain-text transcript digest for the team
// email when the frontend did not send one.
func (s *chatService) summarizeSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) string {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil || len(messages) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, msg := range messages {
		role := "Visitor"
		if msg.Role == constant.ChatMessageRoleModel {
			role = "Assistant"
		}
		sb.WriteString(role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
