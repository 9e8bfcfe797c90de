package catalog

import (
	"reflect"
	"testing"
)

func TestRelevantUseCases(t *testing.T) {
	tests := []struct {
		name     string
		industry string
		wantLen  int
		generic  bool
	}{
		{name: "known industry capped at 3", industry: "healthcare", wantLen: 3},
		{name: "case insensitive lookup", industry: "Retail", wantLen: 3},
		{name: "industry with exactly 3 entries", industry: "legal", wantLen: 3},
		{name: "unknown industry falls back to generic", industry: "agriculture", wantLen: len(GenericUseCases), generic: true},
		{name: "empty industry falls back to generic", industry: "", wantLen: len(GenericUseCases), generic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelevantUseCases(tt.industry)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.generic && !reflect.DeepEqual(got, GenericUseCases) {
				t.Errorf("expected the generic set, got %v", got)
			}
		})
	}
}

func TestEveryIndustryHasUseCases(t *testing.T) {
	for _, industry := range Industries {
		if _, ok := IndustryUseCases[industry]; !ok {
			t.Errorf("industry %q has no use case table entry", industry)
		}
	}
}

func TestMatchingSolutions(t *testing.T) {
	tests := []struct {
		name       string
		painPoints []string
		wantPains  []string
	}{
		{
			name:       "exact pain point",
			painPoints: []string{"manual data entry"},
			wantPains:  []string{"manual data entry"},
		},
		{
			name:       "user phrasing contains the catalog pain",
			painPoints: []string{"our manual data entry workload"},
			wantPains:  []string{"manual data entry"},
		},
		{
			name:       "catalog pain contains the user phrasing",
			painPoints: []string{"data entry"},
			wantPains:  []string{"manual data entry"},
		},
		{
			name:       "case insensitive",
			painPoints: []string{"Inventory Management"},
			wantPains:  []string{"inventory management"},
		},
		{
			name:       "no pain points",
			painPoints: nil,
			wantPains:  nil,
		},
		{
			name:       "no match",
			painPoints: []string{"office coffee is bad"},
			wantPains:  []string{},
		},
		{
			name:       "capped at three matches",
			painPoints: []string{"manual data entry", "slow customer support", "forecasting errors", "compliance monitoring"},
			wantPains:  []string{"manual data entry", "slow customer support", "forecasting errors"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchingSolutions(tt.painPoints)
			if tt.wantPains == nil {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}
			gotPains := make([]string, 0, len(got))
			for _, s := range got {
				gotPains = append(gotPains, s.PainPoint)
			}
			if !reflect.DeepEqual(gotPains, tt.wantPains) {
				t.Errorf("matched pains = %v, want %v", gotPains, tt.wantPains)
			}
		})
	}
}
