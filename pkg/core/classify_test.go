package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inktally/inktally/pkg/core"
)

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		average float64
		want    core.Level
	}{
		{"just under the 80% line", 79, 100, core.LevelUnder},
		{"exactly at the 80% line", 80, 100, core.LevelWithin},
		{"equal to the average", 100, 100, core.LevelWithin},
		{"just above the average", 101, 100, core.LevelAbove},
		{"between 80% and 100%", 90, 100, core.LevelWithin},
		{"zero average, zero count", 0, 0, core.LevelWithin},
		{"zero average, positive count", 3, 0, core.LevelAbove},
		{"negative count against positive average", -1, 10, core.LevelUnder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.ClassifyLevel(tt.count, tt.average, 0.8)
			assert.Equal(t, tt.want, got)
		})
	}
}
