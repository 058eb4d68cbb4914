package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GameStats is the history of finished games, kept as JSON next to the score
// file. It backs the session summary shown on screen.
type GameStats struct {
	Games    []GameRecord
	filename string
	mutex    sync.RWMutex
}

// GameRecord describes one finished game.
type GameRecord struct {
	ID         string    `json:"id"`
	Session    string    `json:"session"`
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	FoodsEaten int       `json:"foodsEaten"`
	Length     int       `json:"length"`
	Cause      string    `json:"cause"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Duration returns how long the game lasted in seconds
func (r GameRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// NewGameStats loads the history kept in filename. A missing file starts an
// empty history; any other read problem is returned together with the
// empty history so the caller can decide to log it.
func NewGameStats(filename string) (*GameStats, error) {
	stats := &GameStats{
		Games:    make([]GameRecord, 0),
		filename: filename,
	}
	return stats, stats.loadFromFile()
}

// AddGame appends a finished game and writes the history back.
func (s *GameStats) AddGame(rec GameRecord) error {
	s.mutex.Lock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.Games = append(s.Games, rec)
	s.mutex.Unlock()

	return s.SaveToFile()
}

// GetStats returns a copy of the recorded games.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

// GetAverageScore returns the mean score over every recorded game.
func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}

	var total float64
	for _, game := range s.Games {
		total += float64(game.Score)
	}
	return total / float64(len(s.Games))
}

// GetMedianScore returns the median score.
func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}

	all := make([]float64, 0, len(s.Games))
	for _, game := range s.Games {
		all = append(all, float64(game.Score))
	}
	sort.Float64s(all)
	if len(all)%2 == 0 {
		return (all[len(all)/2-1] + all[len(all)/2]) / 2
	}
	return all[len(all)/2]
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for i, game := range s.Games {
		if i == 0 || game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.Games)
}

// GetAverageDuration returns the mean game length in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.Games) == 0 {
		return 0
	}

	var total float64
	for _, game := range s.Games {
		total += game.Duration()
	}
	return total / float64(len(s.Games))
}

// SessionGames counts the games recorded under one session id
func (s *GameStats) SessionGames(session string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := 0
	for _, game := range s.Games {
		if game.Session == session {
			n++
		}
	}
	return n
}

// SaveToFile writes the history as JSON.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.filename == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.filename), 0755); err != nil {
		return errors.Wrap(err, "failed to create stats directory")
	}

	jsonData, err := json.MarshalIndent(s.Games, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal stats data")
	}

	if err := os.WriteFile(s.filename, jsonData, 0644); err != nil {
		return errors.Wrap(err, "failed to write stats file")
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	if s.filename == "" {
		return nil
	}
	data, err := os.ReadFile(s.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read stats file")
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return errors.Wrapf(err, "failed to parse %s", s.filename)
	}
	s.Games = games
	return nil
}
