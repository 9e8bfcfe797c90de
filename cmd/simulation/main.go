package main

import (
	"fmt"
	"strings"

	"daeda-site-be/internal/entity"
	"daeda-site-be/pkg/consult/catalog"
	"daeda-site-be/pkg/consult/insight"
	"daeda-site-be/pkg/consult/prompt"
	"daeda-site-be/pkg/consult/response"
	"daeda-site-be/pkg/consult/stage"
	"daeda-site-be/pkg/consult/state"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Offline walkthrough of the conversation pipeline: runs extraction,
// context accumulation, stage classification and prompt composition on
// a scripted conversation, without database or network.
func main() {
	color.Cyan("=== Conversation Pipeline Simulation ===\n")

	sessionId := uuid.New()
	manager := state.NewManager()

	var conversationContext *entity.ConversationContext
	var history []*entity.ChatMessage

	turns := []string{
		"Hi, I run a retail business and we waste hours on manual data entry",
		"We're a small business, about 8 people, mostly using Excel and Shopify",
		"Our goal is to reduce the time spent on inventory paperwork, ideally this month",
		"Budget is around 10k budget for the first phase",
	}

	for i, text := range turns {
		color.Yellow("\n[TURN %d] USER: %s", i+1, text)

		userMsg := &entity.ChatMessage{
			Content:       text,
			Role:          "user",
			ChatSessionId: sessionId,
		}
		history = append(history, userMsg)

		ins := insight.Extract(text)
		color.White("  extracted: industries=%v size=%q pains=%d goals=%d urgency=%q",
			ins.MentionedIndustries, ins.CompanySize, len(ins.MentionedPainPoints), len(ins.MentionedGoals), ins.Urgency)

		conversationContext = manager.Accumulate(sessionId, conversationContext, ins, "", "", history)
		color.White("  context: industry=%q size=%q tools=%v budget=%q timeline=%q",
			conversationContext.Industry, conversationContext.CompanySize,
			conversationContext.CurrentTools, conversationContext.BudgetRange, conversationContext.Timeline)

		messageCount := len(history)
		st := stage.FromMessageCount(messageCount)
		color.White("  stage: %s (%d messages)", st, messageCount)

		useCases := catalog.RelevantUseCases(conversationContext.Industry)
		solutions := catalog.MatchingSolutions(conversationContext.PainPoints)
		questions := prompt.SuggestedQuestions(conversationContext, messageCount)
		color.White("  catalog: %d use cases, %d solutions, %d suggested questions",
			len(useCases), len(solutions), len(questions))

		systemPrompt := prompt.NewBuilder(conversationContext, st, useCases, solutions, questions, "").Build()
		color.White("  prompt: %d chars", len(systemPrompt))

		// Scripted model reply for the postprocessor
		reply := fmt.Sprintf("Here is an idea for your %s business. [SUGGESTIONS: Tell me more | How much does it cost | What's the timeline]",
			orDefault(conversationContext.Industry, "own"))
		processed := response.Process(reply)
		color.Green("  MODEL: %s", processed.Content)
		color.Green("  chips: %s", strings.Join(processed.Suggestions, " / "))

		history = append(history, &entity.ChatMessage{
			Content:       processed.Content,
			Role:          "model",
			ChatSessionId: sessionId,
		})
	}

	color.Cyan("\n=== Final Context ===")
	color.White("industry:     %s", conversationContext.Industry)
	color.White("company size: %s", conversationContext.CompanySize)
	color.White("pain points:  %v", conversationContext.PainPoints)
	color.White("goals:        %v", conversationContext.Goals)
	color.White("tools:        %v", conversationContext.CurrentTools)
	color.White("budget:       %s", conversationContext.BudgetRange)
	color.White("timeline:     %s", conversationContext.Timeline)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
