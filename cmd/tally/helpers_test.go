package main

import (
	"testing"
	"time"

	"github.com/tallyhq/tally/internal/timeframe"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date only",
			input: "2024-03-11",
			want:  time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "date with minutes",
			input: "2024-03-11 10:30",
			want:  time.Date(2024, 3, 11, 10, 30, 0, 0, time.Local),
		},
		{
			name:  "date with seconds",
			input: "2024-03-11 10:30:45",
			want:  time.Date(2024, 3, 11, 10, 30, 45, 0, time.Local),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildSelection(t *testing.T) {
	t.Run("granularity with anchor", func(t *testing.T) {
		sel, err := buildSelection("week", "2024-03-11", "", "")
		if err != nil {
			t.Fatalf("buildSelection failed: %v", err)
		}
		if sel.Granularity != timeframe.Week {
			t.Errorf("granularity = %v, want week", sel.Granularity)
		}
		if sel.Anchor.Day() != 11 {
			t.Errorf("anchor day = %d, want 11", sel.Anchor.Day())
		}
	})

	t.Run("from/to produces custom selection", func(t *testing.T) {
		sel, err := buildSelection("month", "", "2024-03-01", "2024-03-10")
		if err != nil {
			t.Fatalf("buildSelection failed: %v", err)
		}
		if sel.Granularity != timeframe.Custom {
			t.Errorf("granularity = %v, want custom", sel.Granularity)
		}
	})

	t.Run("from without to fails", func(t *testing.T) {
		if _, err := buildSelection("month", "", "2024-03-01", ""); err == nil {
			t.Error("expected error for --from without --to")
		}
	})

	t.Run("custom granularity without dates fails", func(t *testing.T) {
		if _, err := buildSelection("custom", "", "", ""); err == nil {
			t.Error("expected error for custom without --from/--to")
		}
	})

	t.Run("unknown granularity fails", func(t *testing.T) {
		if _, err := buildSelection("decade", "", "", ""); err == nil {
			t.Error("expected error for unknown granularity")
		}
	})

	t.Run("default anchor is now", func(t *testing.T) {
		sel, err := buildSelection("day", "", "", "")
		if err != nil {
			t.Fatalf("buildSelection failed: %v", err)
		}
		if time.Since(sel.Anchor) > time.Minute {
			t.Errorf("default anchor %v is not close to now", sel.Anchor)
		}
	})
}
