package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMatchups(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]PlayerID
		want   Snapshot
	}{
		{
			name:   "Should take the first two groups in order",
			groups: [][]PlayerID{{3, 1}, {4, 2}},
			want:   Snapshot{Current: []PlayerID{3, 1}, Next: []PlayerID{4, 2}},
		},
		{
			name:   "Should ignore groups after the second",
			groups: [][]PlayerID{{1, 2}, {3, 4}, {5, 6}},
			want:   Snapshot{Current: []PlayerID{1, 2}, Next: []PlayerID{3, 4}},
		},
		{
			name:   "Should leave next empty with a single group",
			groups: [][]PlayerID{{1, 2}},
			want:   Snapshot{Current: []PlayerID{1, 2}},
		},
		{
			name:   "Should be empty with no groups",
			groups: nil,
			want:   Snapshot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMatchups(tt.groups)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFromMatchups_DoesNotAliasInput(t *testing.T) {
	groups := [][]PlayerID{{1, 2}, {3}}
	s := FromMatchups(groups)

	groups[0][0] = 9

	assert.Equal(t, []PlayerID{1, 2}, s.Current)
}

func TestSnapshot_Equal(t *testing.T) {
	a := FromMatchups([][]PlayerID{{1, 2}, {3, 4}})
	b := FromMatchups([][]PlayerID{{1, 2}, {3, 4}})

	assert.True(t, a.Equal(a), "reflexive")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a), "symmetric")

	t.Run("Should be order sensitive", func(t *testing.T) {
		x := FromMatchups([][]PlayerID{{1, 2}})
		y := FromMatchups([][]PlayerID{{2, 1}})
		assert.False(t, x.Equal(y))
	})

	t.Run("Should compare next players", func(t *testing.T) {
		x := FromMatchups([][]PlayerID{{1, 2}, {3}})
		y := FromMatchups([][]PlayerID{{1, 2}, {4}})
		assert.False(t, x.Equal(y))
	})

	t.Run("Should treat nil and empty groups alike", func(t *testing.T) {
		x := Snapshot{Current: []PlayerID{}}
		assert.True(t, x.Equal(Snapshot{}))
		assert.True(t, Snapshot{}.IsEmpty())
	})
}
