package stage

// Stage is the discrete progression label of a conversation. It is a pure
// function of the message count and never regresses as the count grows.
type Stage string

const (
	Discovery   Stage = "discovery"
	Exploration Stage = "exploration"
	Solutioning Stage = "solutioning"
	Closing     Stage = "closing"
)

// FromMessageCount classifies the conversation by how many messages it holds.
func FromMessageCount(count int) Stage {
	switch {
	case count < 3:
		return Discovery
	case count < 6:
		return Exploration
	case count < 10:
		return Solutioning
	default:
		return Closing
	}
}

// Focus returns the stage-specific instruction injected into the prompt.
func (s Stage) Focus() string {
	switch s {
	case Discovery:
		return "Focus on understanding their business, industry, and main challenges. Ask open questions, don't pitch yet."
	case Exploration:
		return "Deepen your understanding of the pain points they mentioned. Quantify the impact where you can."
	case Solutioning:
		return "Make concrete AI solution recommendations tied to the pain points you've heard."
	default:
		return "Summarize what you've understood, the solution direction, and gauge their readiness to move forward."
	}
}
