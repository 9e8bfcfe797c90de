package prompt

import (
	"strings"
	"testing"

	"daeda-site-be/internal/entity"
	"daeda-site-be/pkg/consult/catalog"
	"daeda-site-be/pkg/consult/stage"

	"github.com/google/uuid"
)

func TestBuildMinimalPrompt(t *testing.T) {
	c := entity.NewConversationContext(uuid.New())
	got := NewBuilder(c, stage.Discovery, nil, nil, nil, "").Build()

	mustContain := []string{
		"You are a helpful AI consultant for Daeda Group",
		"CONVERSATION STAGE: discovery.",
		"[SUGGESTIONS: option1 | option2 | option3]",
		"WHEN TO OFFER A HUMAN HANDOFF",
	}
	for _, section := range mustContain {
		if !strings.Contains(got, section) {
			t.Errorf("prompt missing %q", section)
		}
	}

	mustNotContain := []string{
		"WHAT YOU KNOW SO FAR:",
		"RELEVANT AI USE CASES:",
		"PAIN POINT SOLUTIONS TO DRAW ON:",
		"RESEARCH NOTES:",
		"GOOD NEXT QUESTIONS",
	}
	for _, section := range mustNotContain {
		if strings.Contains(got, section) {
			t.Errorf("prompt contains %q although nothing is known", section)
		}
	}
}

func TestBuildFullPrompt(t *testing.T) {
	c := entity.NewConversationContext(uuid.New())
	c.Industry = "retail"
	c.CompanySize = "small"
	c.PainPoints = []string{"manual data entry", "inventory management"}
	c.Goals = []string{"reduce paperwork"}
	c.CurrentTools = []string{"Excel", "Shopify"}
	c.BudgetRange = "10k"
	c.Timeline = "3 months"

	useCases := catalog.RelevantUseCases("retail")
	solutions := catalog.MatchingSolutions(c.PainPoints)
	questions := []string{"Do you have a budget range in mind for this project?"}

	got := NewBuilder(c, stage.Solutioning, useCases, solutions, questions, "TOPIC: retail AI manual data entry").Build()

	mustContain := []string{
		"WHAT YOU KNOW SO FAR:",
		"- Industry: retail",
		"- Company size: small",
		"- Pain points: manual data entry; inventory management",
		"- Goals: reduce paperwork",
		"- Current tools: Excel, Shopify",
		"- Budget range: 10k",
		"- Timeline: 3 months",
		"RELEVANT AI USE CASES:",
		"- Demand forecasting (Reduce inventory waste by 25%)",
		"PAIN POINT SOLUTIONS TO DRAW ON:",
		"- manual data entry -> Intelligent document processing with OCR and NLP (Reduce processing time by 80%)",
		"CONVERSATION STAGE: solutioning.",
		"RESEARCH NOTES:\nTOPIC: retail AI manual data entry",
		"GOOD NEXT QUESTIONS (pick at most one, only if it fits naturally):",
		"- Do you have a budget range in mind for this project?",
	}
	for _, section := range mustContain {
		if !strings.Contains(got, section) {
			t.Errorf("prompt missing %q", section)
		}
	}
}

func TestBuildSectionOrder(t *testing.T) {
	c := entity.NewConversationContext(uuid.New())
	c.Industry = "finance"

	got := NewBuilder(c, stage.Exploration, catalog.RelevantUseCases("finance"), nil, nil, "digest").Build()

	order := []string{
		"You are a helpful AI consultant",
		"WHAT YOU KNOW SO FAR:",
		"RELEVANT AI USE CASES:",
		"CONVERSATION STAGE:",
		"RESEARCH NOTES:",
		"[SUGGESTIONS:",
		"WHEN TO OFFER A HUMAN HANDOFF",
	}

	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("prompt missing %q", marker)
		}
		if idx < last {
			t.Errorf("section %q appears out of order", marker)
		}
		last = idx
	}
}
