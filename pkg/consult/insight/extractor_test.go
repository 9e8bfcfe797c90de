package insight

import (
	"reflect"
	"testing"
)

func TestExtractIndustries(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{
			name:    "single industry",
			message: "I run a retail business",
			want:    []string{"retail"},
		},
		{
			name:    "case insensitive",
			message: "We work in HEALTHCARE",
			want:    []string{"healthcare"},
		},
		{
			name:    "multiple industries in vocabulary order",
			message: "We serve retail and healthcare clients",
			want:    []string{"healthcare", "retail"},
		},
		{
			name:    "no industry",
			message: "We make things",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			if !reflect.DeepEqual(got.MentionedIndustries, tt.want) {
				t.Errorf("MentionedIndustries = %v, want %v", got.MentionedIndustries, tt.want)
			}
		})
	}
}

func TestExtractPainPoints(t *testing.T) {
	got := Extract("Our manual data entry is killing us and inventory management is a mess")
	want := []string{"manual data entry", "inventory management"}
	if !reflect.DeepEqual(got.MentionedPainPoints, want) {
		t.Errorf("MentionedPainPoints = %v, want %v", got.MentionedPainPoints, want)
	}
}

func TestExtractCompanySize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "startup", message: "we're a startup", want: CompanySizeSmall},
		{name: "small business", message: "just a small business here", want: CompanySizeSmall},
		{name: "mid-size", message: "a mid-size firm", want: CompanySizeMedium},
		{name: "growing", message: "we're growing fast", want: CompanySizeMedium},
		{name: "enterprise", message: "we are an enterprise with 1000+ staff", want: CompanySizeEnterprise},
		{name: "small wins over enterprise", message: "a startup inside a large corporation", want: CompanySizeSmall},
		{name: "no signal", message: "hello there", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			if got.CompanySize != tt.want {
				t.Errorf("CompanySize = %q, want %q", got.CompanySize, tt.want)
			}
		})
	}
}

func TestExtractUrgency(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "asap", message: "we need this ASAP", want: UrgencyHigh},
		{name: "this week", message: "ideally this week", want: UrgencyHigh},
		{name: "this month", message: "sometime this month would be fine", want: UrgencyMedium},
		{name: "high wins over medium", message: "urgent, but this month at the latest", want: UrgencyHigh},
		{name: "no signal", message: "whenever works", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.message)
			if got.Urgency != tt.want {
				t.Errorf("Urgency = %q, want %q", got.Urgency, tt.want)
			}
		})
	}
}

func TestExtractGoals(t *testing.T) {
	got := Extract("We want to reduce paperwork. Also we hope to automate billing.")

	if len(got.MentionedGoals) == 0 {
		t.Fatalf("MentionedGoals is empty, want at least one fragment")
	}
	for _, goal := range got.MentionedGoals {
		if goal == "" {
			t.Errorf("MentionedGoals contains an empty fragment")
		}
	}

	foundReduce := false
	for _, goal := range got.MentionedGoals {
		if goal == "We want to reduce paperwork." {
			foundReduce = true
		}
	}
	if !foundReduce {
		t.Errorf("MentionedGoals = %v, want it to contain %q", got.MentionedGoals, "We want to reduce paperwork.")
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	message := "Our retail startup needs to automate manual data entry urgently"
	first := Extract(message)
	second := Extract(message)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not deterministic: %+v vs %+v", first, second)
	}
}

func TestExtractEmptyMessage(t *testing.T) {
	got := Extract("")
	if got.MentionedIndustries == nil || got.MentionedPainPoints == nil || got.MentionedGoals == nil {
		t.Errorf("collections must be empty, not nil: %+v", got)
	}
	if len(got.MentionedIndustries) != 0 || len(got.MentionedPainPoints) != 0 || len(got.MentionedGoals) != 0 {
		t.Errorf("expected no signals from empty message, got %+v", got)
	}
}
