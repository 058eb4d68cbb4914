// Package scores keeps the ranked best-scores table and its on-disk record.
package scores

import "rainbow-snake/game/types"

// Entry is one row of the high-score table.
type Entry struct {
	Name  string
	Score int32
}

// Table is the top-N list, best first. A new score only moves ahead of
// entries it strictly beats, so on ties the older entry keeps its place.
type Table struct {
	entries []Entry
}

// Update inserts name/score at its rank and reports whether it made the table.
func (t *Table) Update(name string, score int32) bool {
	pos := len(t.entries)
	for i, e := range t.entries {
		if score > e.Score {
			pos = i
			break
		}
	}
	if pos == types.MaxTop {
		return false
	}

	entry := Entry{Name: TruncateName(name), Score: score}
	if len(t.entries) < types.MaxTop {
		t.entries = append(t.entries, Entry{})
	}
	copy(t.entries[pos+1:], t.entries[pos:len(t.entries)-1])
	t.entries[pos] = entry
	return true
}

// Rank is the 1-based place score would take, counting only strictly higher entries.
func (t *Table) Rank(score int32) int {
	rank := 1
	for _, e := range t.entries {
		if score < e.Score {
			rank++
		}
	}
	return rank
}

// Entries returns a copy of the table, best first
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Reset() {
	t.entries = t.entries[:0]
}

// TruncateName cuts name to the bytes that fit the on-disk field. Text
// after an embedded NUL is dropped as it would be on reload.
func TruncateName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			name = name[:i]
			break
		}
	}
	if len(name) > types.MaxNameLen {
		return name[:types.MaxNameLen]
	}
	return name
}
