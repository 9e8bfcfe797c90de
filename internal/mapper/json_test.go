package mapper

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"
)

func TestStringsToJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "nil slice stored as empty array", values: nil, want: "[]"},
		{name: "empty slice", values: []string{}, want: "[]"},
		{name: "values", values: []string{"a", "b"}, want: `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := stringsToJSON(tt.values)
			if string(raw) != tt.want {
				t.Errorf("stringsToJSON = %s, want %s", raw, tt.want)
			}

			back := jsonToStrings(raw)
			wantBack := tt.values
			if wantBack == nil {
				wantBack = []string{}
			}
			if !reflect.DeepEqual(back, wantBack) {
				t.Errorf("jsonToStrings = %v, want %v", back, wantBack)
			}
		})
	}
}

func TestJSONToStringsBadInput(t *testing.T) {
	if got := jsonToStrings(datatypes.JSON(`not json`)); len(got) != 0 {
		t.Errorf("jsonToStrings on invalid input = %v, want empty", got)
	}
	if got := jsonToStrings(nil); got == nil || len(got) != 0 {
		t.Errorf("jsonToStrings(nil) = %v, want empty non-nil slice", got)
	}
}

func TestMapToJSONRoundTrip(t *testing.T) {
	raw := mapToJSON(map[string]interface{}{"industry": "retail", "result_count": 5})
	back := jsonToMap(raw)

	if back["industry"] != "retail" {
		t.Errorf("industry = %v", back["industry"])
	}
	// Numbers come back as float64 after a JSON round trip.
	if back["result_count"] != float64(5) {
		t.Errorf("result_count = %v (%T)", back["result_count"], back["result_count"])
	}

	if got := mapToJSON(nil); string(got) != "{}" {
		t.Errorf("mapToJSON(nil) = %s, want {}", got)
	}
	if got := jsonToMap(nil); got == nil || len(got) != 0 {
		t.Errorf("jsonToMap(nil) = %v, want empty non-nil map", got)
	}
}

func TestStrOrNil(t *testing.T) {
	if got := strOrNil(""); got != nil {
		t.Errorf("strOrNil(\"\") = %v, want nil", got)
	}
	if got := strOrNil("x"); got == nil || *got != "x" {
		t.Errorf("strOrNil(\"x\") = %v", got)
	}
	if got := derefOrEmpty(nil); got != "" {
		t.Errorf("derefOrEmpty(nil) = %q", got)
	}
	s := "y"
	if got := derefOrEmpty(&s); got != "y" {
		t.Errorf("derefOrEmpty = %q", got)
	}
}
