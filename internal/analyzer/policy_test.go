package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_TruthTable(t *testing.T) {
	tests := []struct {
		name       string
		missing    []string
		unused     []string
		failOnWarn bool
		want       Outcome
	}{
		{
			name: "clean run succeeds",
			want: Outcome{Status: StatusOK, Code: 0},
		},
		{
			name:   "unused only warns by default",
			unused: []string{"boto3"},
			want:   Outcome{Status: StatusWarn, Code: 0},
		},
		{
			name:       "unused fails when escalated",
			unused:     []string{"boto3"},
			failOnWarn: true,
			want:       Outcome{Status: StatusFail, Code: 1},
		},
		{
			name:    "missing always fails",
			missing: []string{"requests"},
			want:    Outcome{Status: StatusFail, Code: 1},
		},
		{
			name:       "missing fails regardless of escalation",
			missing:    []string{"requests"},
			unused:     []string{"boto3"},
			failOnWarn: true,
			want:       Outcome{Status: StatusFail, Code: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &Report{Missing: tt.missing, Unused: tt.unused}
			assert.Equal(t, tt.want, Decide(rep, tt.failOnWarn))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "fail", StatusFail.String())
}
