package tournament

import (
	"fmt"
	"slices"
)

// PlayerID identifies a player in the backend's player directory
type PlayerID int

// Directory maps players to a name (display name or Discord username)
type Directory map[PlayerID]string

// Snapshot captures who plays now and who plays next at one poll tick.
// A Snapshot is never mutated after construction; the next tick builds a new one.
type Snapshot struct {
	Current []PlayerID // playing now
	Next    []PlayerID // playing after the current match
}

// FromMatchups builds a snapshot from the ranked match groups returned by the backend.
// Group 0 is current, group 1 is next, anything after that is ignored.
func FromMatchups(groups [][]PlayerID) Snapshot {
	var s Snapshot
	if len(groups) > 0 {
		s.Current = slices.Clone(groups[0])
	}
	if len(groups) > 1 {
		s.Next = slices.Clone(groups[1])
	}
	return s
}

// Equal reports whether both snapshots list the same players in the same order
func (s Snapshot) Equal(other Snapshot) bool {
	return slices.Equal(s.Current, other.Current) && slices.Equal(s.Next, other.Next)
}

// IsEmpty reports whether nobody is scheduled
func (s Snapshot) IsEmpty() bool {
	return len(s.Current) == 0 && len(s.Next) == 0
}

func (s Snapshot) String() string {
	return fmt.Sprintf("current=%v next=%v", s.Current, s.Next)
}
