package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fortuna/courtside/internal/upstream/espn"
)

func TestRoundInfo(t *testing.T) {
	tests := []struct {
		name  string
		notes []espn.Note
		want  Round
	}{
		{
			name: "full headline",
			notes: []espn.Note{
				{Type: "event", Headline: "Women's NCAA Tournament - Sweet 16 - Albany Region 1"},
			},
			want: Round{
				Round:       "Sweet 16",
				Region:      "Albany Region 1",
				BracketType: "Women's NCAA Tournament",
			},
		},
		{
			name: "alias spelled out",
			notes: []espn.Note{
				{Type: "event", Headline: "Sweet Sixteen"},
			},
			want: Round{Round: "Sweet 16"},
		},
		{
			name: "national championship beats bare championship fragment",
			notes: []espn.Note{
				{Type: "event", Headline: "National Championship"},
			},
			want: Round{Round: "Championship"},
		},
		{
			name: "unmatched label lands in unknown",
			notes: []espn.Note{
				{Type: "event", Headline: "Opening Night Showcase"},
			},
			want: Round{Round: RoundUnknown},
		},
		{
			name:  "no notes stays unclassified",
			notes: nil,
			want:  Round{},
		},
		{
			name: "non-event notes ignored",
			notes: []espn.Note{
				{Type: "trivia", Headline: "First Round"},
			},
			want: Round{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundInfo(tt.notes))
		})
	}
}
