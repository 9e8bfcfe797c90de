package response

import "strings"

// suggestionTag is a case-sensitive literal; anything else is treated as
// plain reply text.
const suggestionTag = "[SUGGESTIONS:"

// Processed is the result of postprocessing one generated reply.
type Processed struct {
	Content     string
	Suggestions []string
	IsOffer     bool
}

// Process parses the suggestion-chip directive out of the reply and
// classifies whether the reply offers a human handoff. A missing or
// malformed directive is not an error: the reply is shown in full with no
// chips.
func Process(reply string) Processed {
	content, suggestions := parseSuggestions(reply)
	return Processed{
		Content:     content,
		Suggestions: suggestions,
		IsOffer:     IsHandoffOffer(content),
	}
}

func parseSuggestions(reply string) (string, []string) {
	start := strings.Index(reply, suggestionTag)
	if start < 0 {
		return reply, nil
	}
	end := strings.Index(reply[start:], "]")
	if end < 0 {
		return reply, nil
	}
	end += start

	inner := reply[start+len(suggestionTag) : end]
	suggestions := make([]string, 0, 3)
	for _, option := range strings.Split(inner, "|") {
		option = strings.TrimSpace(option)
		if option != "" {
			suggestions = append(suggestions, option)
		}
	}

	content := strings.TrimSpace(reply[:start] + reply[end+1:])
	return content, suggestions
}

// IsHandoffOffer reports whether the reply proposes connecting the user
// with the team. The string rule is intentionally permissive and may
// produce false positives on coincidental phrasing; it is kept as-is for
// behavioral compatibility.
func IsHandoffOffer(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "connect you with our team") {
		return true
	}
	return strings.Contains(lower, "proposal") && strings.Contains(lower, "would you like")
}
