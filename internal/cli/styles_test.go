package cli

import (
	"strings"
	"testing"
)

func TestFormatMessages(t *testing.T) {
	tests := []struct {
		name    string
		format  func(string) string
		icon    string
		message string
	}{
		{"success", FormatSuccess, SuccessIcon, "recorded"},
		{"error", FormatError, ErrorIcon, "database unavailable"},
		{"warning", FormatWarning, WarningIcon, "window contains today"},
		{"info", FormatInfo, InfoIcon, "nothing spent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.format(tt.message)
			if !strings.Contains(got, tt.message) {
				t.Errorf("formatted output %q does not contain message %q", got, tt.message)
			}
			if !strings.Contains(got, tt.icon) {
				t.Errorf("formatted output %q does not contain icon %q", got, tt.icon)
			}
		})
	}
}
