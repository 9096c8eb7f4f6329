package request

import (
	"slices"
	"testing"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
)

func TestParseProjectionFilter(t *testing.T) {
	t.Run("default values when no parameters provided", func(t *testing.T) {
		filter, err := ParseProjectionFilter("", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !slices.Equal(filter.Years, finance.DefaultProjectionYears) {
			t.Errorf("Expected default years %v, got %v", finance.DefaultProjectionYears, filter.Years)
		}
		if filter.InflationAdjusted {
			t.Error("Expected InflationAdjusted to default to false")
		}
	})

	t.Run("default years are a copy", func(t *testing.T) {
		filter, err := ParseProjectionFilter("", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		filter.Years[0] = 99
		if finance.DefaultProjectionYears[0] != 0 {
			t.Error("Mutating the parsed years changed the package default")
		}
	})

	t.Run("parses years and mode", func(t *testing.T) {
		filter, err := ParseProjectionFilter("0, 1,5", "true")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !slices.Equal(filter.Years, []int{0, 1, 5}) {
			t.Errorf("Expected years [0 1 5], got %v", filter.Years)
		}
		if !filter.InflationAdjusted {
			t.Error("Expected InflationAdjusted to be true")
		}
	})

	tests := []struct {
		name      string
		years     string
		adjusted  string
		wantError bool
	}{
		{"non-numeric year", "1,abc", "", true},
		{"negative year", "-1", "", true},
		{"year beyond bound", "101", "", true},
		{"invalid boolean", "1", "maybe", true},
		{"upper bound accepted", "100", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProjectionFilter(tt.years, tt.adjusted)
			if (err != nil) != tt.wantError {
				t.Errorf("ParseProjectionFilter(%q, %q) error = %v, wantError %v", tt.years, tt.adjusted, err, tt.wantError)
			}
		})
	}
}

func TestParseHorizonMonths(t *testing.T) {
	tests := []struct {
		name      string
		param     string
		want      int
		wantError bool
	}{
		{"default", "", DefaultHorizonMonths, false},
		{"valid", "60", 60, false},
		{"maximum", "480", 480, false},
		{"zero", "0", 0, true},
		{"too long", "481", 0, true},
		{"not a number", "ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHorizonMonths(tt.param)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseHorizonMonths(%q) error = %v, wantError %v", tt.param, err, tt.wantError)
			}
			if got != tt.want {
				t.Errorf("ParseHorizonMonths(%q) = %d, want %d", tt.param, got, tt.want)
			}
		})
	}
}

func TestParseHistoryLimit(t *testing.T) {
	tests := []struct {
		name      string
		param     string
		want      int
		wantError bool
	}{
		{"default", "", DefaultHistoryLimit, false},
		{"valid", "10", 10, false},
		{"zero", "0", 0, true},
		{"too large", "1001", 0, true},
		{"not a number", "x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHistoryLimit(tt.param)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseHistoryLimit(%q) error = %v, wantError %v", tt.param, err, tt.wantError)
			}
			if got != tt.want {
				t.Errorf("ParseHistoryLimit(%q) = %d, want %d", tt.param, got, tt.want)
			}
		})
	}
}
