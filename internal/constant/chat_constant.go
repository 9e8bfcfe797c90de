package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

const (
	ChatSessionStatusActive    = "active"
	ChatSessionStatusSubmitted = "submitted"
)

// WelcomeMessage is persisted as the first model message of every session.
const WelcomeMessage = "Hi there! I'm your AI ideation partner. \U0001F4A1\n\n" +
	"I'd love to hear about your business idea, challenge, or pain point. What's on your mind? " +
	"Whether it's a problem you're trying to solve or an opportunity you want to explore, I'm here to help you think it through!"

// PersonaAcknowledgment is the scripted model turn that follows the persona
// instruction, so the real history starts from an accepted role.
const PersonaAcknowledgment = "I understand my role as an AI consultant for Daeda Group. " +
	"I will help users explore their ideas and pain points, and suggest AI-powered solutions."

// FallbackReply replaces the model reply when the generation call fails.
const FallbackReply = "I'm having trouble connecting right now. Let me try a different approach - " +
	"could you tell me more about what you're working on?"

// HandoffDeclinedReply is appended when the user declines the handoff offer.
const HandoffDeclinedReply = "No problem! Feel free to keep exploring your idea with me, " +
	"or ask any other questions you have. I'm here to help!"

// FallbackSuggestions are shown with FallbackReply so the widget still has chips.
var FallbackSuggestions = []string{
	"What can AI do for my business?",
	"Automate a manual process",
	"Improve customer support",
	"Analyze my data",
}
