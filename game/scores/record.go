package scores

import (
	"bytes"
	"encoding/binary"
	"io"

	"rainbow-snake/game/types"

	"github.com/pkg/errors"
)

var (
	ErrShortRecord = errors.New("score record is truncated")
	ErrBadCount    = errors.New("score record has a negative entry count")
)

// entrySize is one table row on disk: name field plus int32 score
const entrySize = types.NameLength + 4

// Record is what the score file holds: the last player with their score,
// followed by the table.
//
//	[32]byte name | int32 score | int32 count | count x ([32]byte name | int32 score)
//
// All integers are little-endian.
type Record struct {
	Name  string
	Score int32
	Table Table
}

// MarshalBinary encodes the record in the fixed score-file layout.
func (r *Record) MarshalBinary() ([]byte, error) {
	n := r.Table.Len()
	if n > types.MaxTop {
		n = types.MaxTop
	}

	buf := bytes.NewBuffer(make([]byte, 0, types.NameLength+8+n*entrySize))
	buf.Write(encodeName(r.Name))
	binary.Write(buf, binary.LittleEndian, r.Score)
	binary.Write(buf, binary.LittleEndian, int32(n))
	for _, e := range r.Table.entries[:n] {
		buf.Write(encodeName(e.Name))
		binary.Write(buf, binary.LittleEndian, e.Score)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a record. Counts above the table size are clamped
// and only that many entries are read. Bytes past the last entry are ignored.
func (r *Record) UnmarshalBinary(data []byte) error {
	rd := bytes.NewReader(data)

	var header struct {
		Name  [types.NameLength]byte
		Score int32
		Count int32
	}
	if err := binary.Read(rd, binary.LittleEndian, &header); err != nil {
		return shortRead(err)
	}
	if header.Count < 0 {
		return errors.Wrapf(ErrBadCount, "count %d", header.Count)
	}
	count := int(header.Count)
	if count > types.MaxTop {
		count = types.MaxTop
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		var raw struct {
			Name  [types.NameLength]byte
			Score int32
		}
		if err := binary.Read(rd, binary.LittleEndian, &raw); err != nil {
			return errors.Wrapf(shortRead(err), "entry %d of %d", i+1, count)
		}
		entries = append(entries, Entry{Name: decodeName(raw.Name[:]), Score: raw.Score})
	}

	r.Name = decodeName(header.Name[:])
	r.Score = header.Score
	r.Table = Table{entries: entries}
	return nil
}

func shortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrShortRecord
	}
	return err
}

func encodeName(name string) []byte {
	field := make([]byte, types.NameLength)
	copy(field, TruncateName(name))
	return field
}

func decodeName(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	if len(field) > types.MaxNameLen {
		field = field[:types.MaxNameLen]
	}
	return string(field)
}
