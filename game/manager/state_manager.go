package manager

import (
	"log"
	"os"
	"path/filepath"

	"rainbow-snake/game/scores"

	"github.com/pkg/errors"
)

// ErrStorageUnavailable wraps every failure to read or write the score file.
var ErrStorageUnavailable = errors.New("score storage unavailable")

// StateManager reads and writes the binary score file. Reads never fail from
// the caller's point of view: anything unreadable becomes an empty record.
type StateManager struct {
	filename string
}

func NewStateManager(filename string) *StateManager {
	return &StateManager{filename: filename}
}

func (sm *StateManager) Filename() string {
	return sm.filename
}

// Load returns the stored record, or the zero record when the file is
// missing, short or corrupt.
func (sm *StateManager) Load() scores.Record {
	rec, err := sm.read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("scores: %v, starting with an empty table", err)
		}
		return scores.Record{}
	}
	return rec
}

func (sm *StateManager) read() (scores.Record, error) {
	var rec scores.Record
	data, err := os.ReadFile(sm.filename)
	if err != nil {
		return rec, err
	}
	if err := rec.UnmarshalBinary(data); err != nil {
		return scores.Record{}, errors.Wrapf(ErrStorageUnavailable, "decode %s: %v", sm.filename, err)
	}
	return rec, nil
}

// Save writes rec over the score file. The error is only informative, the
// game carries on either way.
func (sm *StateManager) Save(rec scores.Record) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "encode score record")
	}

	if dir := filepath.Dir(sm.filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			err = errors.Wrapf(ErrStorageUnavailable, "create %s: %v", dir, err)
			log.Printf("scores: %v", err)
			return err
		}
	}

	if err := os.WriteFile(sm.filename, data, 0644); err != nil {
		err = errors.Wrapf(ErrStorageUnavailable, "write %s: %v", sm.filename, err)
		log.Printf("scores: %v", err)
		return err
	}
	return nil
}
