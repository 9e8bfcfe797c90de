package prompt

import (
	"fmt"
	"strings"

	"daeda-site-be/internal/entity"
	"daeda-site-be/pkg/consult/catalog"
	"daeda-site-be/pkg/consult/stage"
)

// Builder composes the instruction text sent to the generation service,
// in a fixed section order: persona, known context, use cases, pain-point
// solutions, stage focus, research digest, suggested questions, the
// suggestion-chip directive, and the handoff criteria.
type Builder struct {
	context        *entity.ConversationContext
	stage          stage.Stage
	useCases       []catalog.UseCase
	solutions      []catalog.Solution
	questions      []string
	researchDigest string
}

func NewBuilder(
	ctx *entity.ConversationContext,
	st stage.Stage,
	useCases []catalog.UseCase,
	solutions []catalog.Solution,
	questions []string,
	researchDigest string,
) *Builder {
	return &Builder{
		context:        ctx,
		stage:          st,
		useCases:       useCases,
		solutions:      solutions,
		questions:      questions,
		researchDigest: researchDigest,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writePersona(&prompt)
	b.writeContext(&prompt)
	b.writeUseCases(&prompt)
	b.writeSolutions(&prompt)
	b.writeStage(&prompt)
	b.writeResearch(&prompt)
	b.writeQuestions(&prompt)
	b.writeSuggestionDirective(&prompt)
	b.writeHandoffCriteria(&prompt)

	return prompt.String()
}

func (b *Builder) writePersona(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful AI consultant for Daeda Group, an AI consulting firm. Your goal is to:\n\n")
	prompt.WriteString("1. Understand the user's business ideas, challenges, or pain points\n")
	prompt.WriteString("2. Ask clarifying questions to deeply understand their needs\n")
	prompt.WriteString("3. Suggest potential AI-powered solutions that could help them\n")
	prompt.WriteString("4. Help them think through the problem and solution space\n\n")
	prompt.WriteString("Be conversational, professional, and encouraging.\n")
	prompt.WriteString("DO: acknowledge what they told you, weave at most one question naturally into your reply, keep replies under 120 words.\n")
	prompt.WriteString("DON'T: interrogate with question lists, repeat questions already answered, or pitch services before understanding the problem.\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	c := b.context
	hasSets := len(c.PainPoints) > 0 || len(c.Goals) > 0 || len(c.CurrentTools) > 0
	if c.Industry == "" && c.CompanySize == "" && c.BudgetRange == "" && c.Timeline == "" && !hasSets {
		return
	}

	prompt.WriteString("WHAT YOU KNOW SO FAR:\n")
	if c.Industry != "" {
		fmt.Fprintf(prompt, "- Industry: %s\n", c.Industry)
	}
	if c.CompanySize != "" {
		fmt.Fprintf(prompt, "- Company size: %s\n", c.CompanySize)
	}
	if len(c.PainPoints) > 0 {
		fmt.Fprintf(prompt, "- Pain points: %s\n", strings.Join(c.PainPoints, "; "))
	}
	if len(c.Goals) > 0 {
		fmt.Fprintf(prompt, "- Goals: %s\n", strings.Join(c.Goals, "; "))
	}
	if len(c.CurrentTools) > 0 {
		fmt.Fprintf(prompt, "- Current tools: %s\n", strings.Join(c.CurrentTools, ", "))
	}
	if c.BudgetRange != "" {
		fmt.Fprintf(prompt, "- Budget range: %s\n", c.BudgetRange)
	}
	if c.Timeline != "" {
		fmt.Fprintf(prompt, "- Timeline: %s\n", c.Timeline)
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeUseCases(prompt *strings.Builder) {
	if len(b.useCases) == 0 {
		return
	}
	prompt.WriteString("RELEVANT AI USE CASES:\n")
	for _, uc := range b.useCases {
		fmt.Fprintf(prompt, "- %s (%s)\n", uc.UseCase, uc.Benefit)
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeSolutions(prompt *strings.Builder) {
	if len(b.solutions) == 0 {
		return
	}
	prompt.WriteString("PAIN POINT SOLUTIONS TO DRAW ON:\n")
	for _, s := range b.solutions {
		fmt.Fprintf(prompt, "- %s -> %s (%s)\n", s.PainPoint, s.AISolution, s.Impact)
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeStage(prompt *strings.Builder) {
	fmt.Fprintf(prompt, "CONVERSATION STAGE: %s. %s\n\n", b.stage, b.stage.Focus())
}

func (b *Builder) writeResearch(prompt *strings.Builder) {
	if b.researchDigest == "" {
		return
	}
	prompt.WriteString("RESEARCH NOTES:\n")
	prompt.WriteString(b.researchDigest)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeQuestions(prompt *strings.Builder) {
	if len(b.questions) == 0 {
		return
	}
	prompt.WriteString("GOOD NEXT QUESTIONS (pick at most one, only if it fits naturally):\n")
	for _, q := range b.questions {
		fmt.Fprintf(prompt, "- %s\n", q)
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeSuggestionDirective(prompt *strings.Builder) {
	prompt.WriteString("End every reply with a suggestion-chip directive of exactly this form, ")
	prompt.WriteString("containing 2-3 short follow-ups the user might tap next:\n")
	prompt.WriteString("[SUGGESTIONS: option1 | option2 | option3]\n\n")
}

func (b *Builder) writeHandoffCriteria(prompt *strings.Builder) {
	prompt.WriteString("WHEN TO OFFER A HUMAN HANDOFF: only offer to connect the user with the Daeda team once ALL of these hold:\n")
	prompt.WriteString("- You understand their industry or business type\n")
	prompt.WriteString("- At least one concrete pain point has been identified\n")
	prompt.WriteString("- You have described at least one concrete AI solution approach\n")
	prompt.WriteString("- They have expressed interest in exploring it further\n")
	prompt.WriteString("Do NOT offer the handoff during early discovery or before any solution has been suggested. ")
	prompt.WriteString("When offering, say something like: \"I have a good understanding of what you're looking for. ")
	prompt.WriteString("Would you like me to connect you with our team to get a detailed proposal and pricing for this solution?\"\n")
}
