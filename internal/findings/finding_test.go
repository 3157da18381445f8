package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindingString(t *testing.T) {
	f := NewIssue("touch-target-size", "Touch Target", "App.tsx", "Touch target size 20px < 44px minimum")
	assert.Equal(t, "[Touch Target] App.tsx: Touch target size 20px < 44px minimum", f.String())
	assert.True(t, f.IsIssue())
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityIssue, "issue"},
		{SeverityWarning, "warning"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestNewWarning(t *testing.T) {
	f := NewWarning("pure-black", "Color", "home.dart", "Pure black detected")
	assert.Equal(t, SeverityWarning, f.Severity)
	assert.False(t, f.IsIssue())
	assert.Equal(t, "pure-black", f.RuleID)
}
