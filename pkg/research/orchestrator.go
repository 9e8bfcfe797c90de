package research

import (
	"context"
	"fmt"
	"strings"

	"daeda-site-be/internal/entity"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/pkg/knowledge"
)

const (
	resultCount    = 5
	maxDescription = 200
)

// Orchestrator answers research queries for the chat pipeline. It
// checks the shared knowledge base before spending a web search, stores
// fresh results for reuse, and degrades to an empty digest on any
// failure so a broken search never breaks the conversation.
type Orchestrator struct {
	knowledge *knowledge.Service
	brave     *BraveClient
	logger    logger.ILogger
}

func NewOrchestrator(knowledgeService *knowledge.Service, brave *BraveClient, log logger.ILogger) *Orchestrator {
	return &Orchestrator{
		knowledge: knowledgeService,
		brave:     brave,
		logger:    log,
	}
}

// Research returns an AI-ready digest for the query, or "" when nothing
// useful could be gathered.
func (o *Orchestrator) Research(ctx context.Context, query, industry, conversationContext string) string {
	entries, exact, err := o.knowledge.Lookup(ctx, query)
	if err != nil {
		o.logger.Warn("research", "knowledge lookup failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		entries = nil
	}

	if exact && len(entries) > 0 {
		return entries[0].AiOptimizedContent
	}

	relatedSection := buildRelatedSection(entries)

	fresh, err := o.fetchAndStore(ctx, query, industry, conversationContext, entries)
	if err != nil {
		o.logger.Warn("research", "web research failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return relatedSection
	}

	if relatedSection == "" {
		return fresh
	}
	if fresh == "" {
		return relatedSection
	}
	return "RELATED KNOWLEDGE:\n" + relatedSection + "\n\nNEW RESEARCH:\n" + fresh
}

func (o *Orchestrator) fetchAndStore(ctx context.Context, query, industry, conversationContext string, related []*entity.KnowledgeEntry) (string, error) {
	results, err := o.brave.Search(ctx, query, resultCount)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", nil
	}

	summary := summarizeResults(results)
	digest := buildDigest(query, results)
	fullContent := buildFullContent(results)

	relatedQueries := make([]string, 0, len(related))
	for _, entry := range related {
		relatedQueries = append(relatedQueries, entry.Query)
	}

	metadata := map[string]interface{}{
		"industry":        industry,
		"context":         conversationContext,
		"result_count":    len(results),
		"related_queries": relatedQueries,
	}

	if _, err := o.knowledge.Store(ctx, query, fullContent, summary, digest, metadata); err != nil {
		o.logger.Warn("research", "knowledge store failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}

	return digest, nil
}

func buildRelatedSection(entries []*entity.KnowledgeEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.AiOptimizedContent != "" {
			parts = append(parts, entry.AiOptimizedContent)
		} else if entry.Summary != "" {
			parts = append(parts, entry.Summary)
		}
	}
	return strings.Join(parts, "\n\n")
}

func summarizeResults(results []*BraveResult) string {
	lines := make([]string, 0, len(results))
	for i, r := range results {
		desc := r.Description
		if runes := []rune(desc); len(runes) > maxDescription {
			desc = string(runes[:maxDescription])
		}
		lines = append(lines, fmt.Sprintf("[%d] %s: %s", i+1, r.Title, desc))
	}
	return strings.Join(lines, "\n")
}

func buildDigest(query string, results []*BraveResult) string {
	var sb strings.Builder
	sb.WriteString("TOPIC: ")
	sb.WriteString(query)
	sb.WriteString("\nKEY INSIGHTS:\n")
	if len(results) > 3 {
		results = results[:3]
	}
	for _, r := range results {
		sb.WriteString("• ")
		sb.WriteString(r.Title)
		sb.WriteString(": ")
		sb.WriteString(firstSentence(r.Description))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func buildFullContent(results []*BraveResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("%s\n%s\n%s", r.Title, r.URL, r.Description))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

func firstSentence(text string) string {
	if idx := strings.Index(text, ". "); idx >= 0 {
		return text[:idx+1]
	}
	return text
}
