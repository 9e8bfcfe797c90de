package response

import (
	"reflect"
	"testing"
)

func TestProcessParsesSuggestions(t *testing.T) {
	tests := []struct {
		name            string
		reply           string
		wantContent     string
		wantSuggestions []string
	}{
		{
			name:            "directive at the end",
			reply:           "Great, tell me more. [SUGGESTIONS: Automate reports | Improve support | See pricing]",
			wantContent:     "Great, tell me more.",
			wantSuggestions: []string{"Automate reports", "Improve support", "See pricing"},
		},
		{
			name:            "directive in the middle",
			reply:           "Before [SUGGESTIONS: A | B] after",
			wantContent:     "Before  after",
			wantSuggestions: []string{"A", "B"},
		},
		{
			name:            "no directive",
			reply:           "Just a plain reply.",
			wantContent:     "Just a plain reply.",
			wantSuggestions: nil,
		},
		{
			name:            "unterminated directive left as text",
			reply:           "Reply text [SUGGESTIONS: A | B",
			wantContent:     "Reply text [SUGGESTIONS: A | B",
			wantSuggestions: nil,
		},
		{
			name:            "empty options dropped",
			reply:           "Reply. [SUGGESTIONS: A || B | ]",
			wantContent:     "Reply.",
			wantSuggestions: []string{"A", "B"},
		},
		{
			name:            "all options empty",
			reply:           "Reply. [SUGGESTIONS: | | ]",
			wantContent:     "Reply.",
			wantSuggestions: []string{},
		},
		{
			name:            "lowercase tag is not a directive",
			reply:           "Reply. [suggestions: A | B]",
			wantContent:     "Reply. [suggestions: A | B]",
			wantSuggestions: nil,
		},
		{
			name:            "whitespace trimmed from options",
			reply:           "Reply. [SUGGESTIONS:  one thing  |  another  ]",
			wantContent:     "Reply.",
			wantSuggestions: []string{"one thing", "another"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Process(tt.reply)
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
			if !reflect.DeepEqual(got.Suggestions, tt.wantSuggestions) {
				t.Errorf("Suggestions = %v, want %v", got.Suggestions, tt.wantSuggestions)
			}
		})
	}
}

func TestIsHandoffOffer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "team connect phrase",
			text: "I can connect you with our team for next steps.",
			want: true,
		},
		{
			name: "proposal with invitation",
			text: "Would you like me to prepare a detailed proposal?",
			want: true,
		},
		{
			name: "proposal without invitation",
			text: "A proposal usually covers scope and pricing.",
			want: false,
		},
		{
			name: "invitation without proposal",
			text: "Would you like to hear another idea?",
			want: false,
		},
		{
			name: "case insensitive",
			text: "I can CONNECT YOU WITH OUR TEAM today.",
			want: true,
		},
		{
			name: "plain reply",
			text: "Demand forecasting could cut your inventory waste.",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHandoffOffer(tt.text); got != tt.want {
				t.Errorf("IsHandoffOffer(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestProcessSetsOfferFromParsedContent(t *testing.T) {
	reply := "Would you like me to connect you with our team? [SUGGESTIONS: Yes please | Not yet]"
	got := Process(reply)
	if !got.IsOffer {
		t.Errorf("IsOffer = false, want true")
	}
	if len(got.Suggestions) != 2 {
		t.Errorf("len(Suggestions) = %d, want 2", len(got.Suggestions))
	}
}
