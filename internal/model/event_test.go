package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFormat(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{
			name:   "scheduled without description",
			status: Status{State: StatePre},
			want:   "Scheduled",
		},
		{
			name:   "scheduled with short detail",
			status: Status{State: StatePre, Description: "3/21 - 7:00 PM EDT"},
			want:   "3/21 - 7:00 PM EDT",
		},
		{
			name:   "in game second quarter",
			status: Status{State: StateIn, Period: 2, DisplayClock: "05:12"},
			want:   "2Q 05:12",
		},
		{
			name:   "in game first overtime",
			status: Status{State: StateIn, Period: 5, DisplayClock: "02:30"},
			want:   "OT1 02:30",
		},
		{
			name:   "final in regulation",
			status: Status{State: StatePost, Period: 4},
			want:   "Final",
		},
		{
			name:   "final in overtime",
			status: Status{State: StatePost, Period: 5},
			want:   "Final (OT)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Format())
		})
	}
}

func TestGameStateBefore(t *testing.T) {
	assert.True(t, StatePre.Before(StateIn))
	assert.True(t, StateIn.Before(StatePost))
	assert.True(t, StatePre.Before(StatePost))
	assert.False(t, StatePost.Before(StateIn))
	assert.False(t, StateIn.Before(StateIn))
}
