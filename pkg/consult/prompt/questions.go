package prompt

import "daeda-site-be/internal/entity"

// genericQuestions is the fallback pool for later-stage conversations.
var genericQuestions = []string{
	"What tools or software are you currently using to handle this?",
	"Do you have a budget range in mind for this project?",
	"What's your ideal timeline for implementing a solution?",
	"How well are your current tools working for you?",
}

// SuggestedQuestions produces up to 2 stage-aware follow-up questions.
// Early conversations ask for the missing basics; later ones probe the
// specifics that are still unknown, deduplicated in pool order.
func SuggestedQuestions(c *entity.ConversationContext, messageCount int) []string {
	questions := make([]string, 0, 4)

	if messageCount < 3 {
		if c.Industry == "" {
			questions = append(questions, "What industry is your business in?")
		}
		if c.CompanySize == "" {
			questions = append(questions, "How many people are on your team?")
		}
		questions = append(questions, "What's the biggest challenge you're facing right now?")
	} else {
		if len(c.PainPoints) > 0 && len(c.CurrentTools) == 0 {
			questions = append(questions, genericQuestions[0])
		}
		if c.BudgetRange == "" {
			questions = append(questions, genericQuestions[1])
		}
		if c.Timeline == "" {
			questions = append(questions, genericQuestions[2])
		}
		if len(c.CurrentTools) > 0 {
			questions = append(questions, genericQuestions[3])
		}
	}

	questions = dedupe(questions)
	if len(questions) > 2 {
		questions = questions[:2]
	}
	return questions
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
