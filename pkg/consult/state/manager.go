package state

import (
	"regexp"

	"daeda-site-be/internal/constant"
	"daeda-site-be/internal/entity"
	"daeda-site-be/pkg/consult/insight"

	"github.com/google/uuid"
)

var (
	toolRe     = regexp.MustCompile(`(?i)\b(Excel|Salesforce|HubSpot|Slack|Teams|SAP|Oracle|QuickBooks|Shopify|WordPress)\b`)
	budgetRe   = regexp.MustCompile(`(?i)\$?([\d,]+(?:k|K|000)?)\s*(budget|cost|spend)`)
	timelineRe = regexp.MustCompile(`(?i)\b(\d+\s*(week|month|day|year)s?)\b`)
)

// Manager merges freshly extracted insights into the running conversation
// context. Scalar fields resolve as explicit override > stored value >
// first extracted value, and are then fixed for the session. Set fields
// grow by exact-string union and never shrink.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Accumulate builds the updated context for one turn. prev may be nil
// (session start). history is the bounded recent-message window, oldest
// first; only user-authored messages are scanned for tool, budget and
// timeline backfill.
func (m *Manager) Accumulate(
	sessionId uuid.UUID,
	prev *entity.ConversationContext,
	ins insight.Insights,
	providedIndustry string,
	providedSize string,
	history []*entity.ChatMessage,
) *entity.ConversationContext {
	ctx := entity.NewConversationContext(sessionId)
	if prev != nil {
		ctx.Industry = prev.Industry
		ctx.CompanySize = prev.CompanySize
		ctx.PainPoints = append(ctx.PainPoints, prev.PainPoints...)
		ctx.Goals = append(ctx.Goals, prev.Goals...)
		ctx.CurrentTools = append(ctx.CurrentTools, prev.CurrentTools...)
		ctx.BudgetRange = prev.BudgetRange
		ctx.Timeline = prev.Timeline
		ctx.Stakeholders = append(ctx.Stakeholders, prev.Stakeholders...)
	}

	ctx.Industry = resolveScalar(providedIndustry, ctx.Industry, firstOrEmpty(ins.MentionedIndustries))
	ctx.CompanySize = resolveScalar(providedSize, ctx.CompanySize, ins.CompanySize)

	ctx.PainPoints = union(ctx.PainPoints, ins.MentionedPainPoints)
	ctx.Goals = union(ctx.Goals, ins.MentionedGoals)

	for _, msg := range history {
		if msg.Role != constant.ChatMessageRoleUser {
			continue
		}
		if tools := toolRe.FindAllString(msg.Content, -1); tools != nil {
			ctx.CurrentTools = union(ctx.CurrentTools, tools)
		}
		if ctx.BudgetRange == "" {
			if match := budgetRe.FindStringSubmatch(msg.Content); match != nil {
				ctx.BudgetRange = match[1]
			}
		}
		if ctx.Timeline == "" {
			if match := timelineRe.FindString(msg.Content); match != "" {
				ctx.Timeline = match
			}
		}
	}

	return ctx
}

func resolveScalar(provided, stored, extracted string) string {
	if provided != "" {
		return provided
	}
	if stored != "" {
		return stored
	}
	return extracted
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// union appends the values not already present, by exact string equality.
// Near-duplicate phrasings stay distinct members.
func union(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		existing = append(existing, v)
	}
	return existing
}
