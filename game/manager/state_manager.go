package manager

import (
	"time"

	"snek/game/types"
)

// maxHistory bounds the number of rounds kept in memory
const maxHistory = 200

// RoundRecord describes one finished round
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Cause     types.LossCause
}

// Score is the number of pellets eaten during the round
func (r RoundRecord) Score() int {
	return r.Length - 1
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps session statistics. Nothing is written to disk.
type StateManager struct {
	highScore    int
	gamesPlayed  int
	totalScore   int
	scoreHistory []RoundRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]RoundRecord, 0),
	}
}

func (sm *StateManager) AddRound(round RoundRecord) {
	score := round.Score()
	if score > sm.highScore {
		sm.highScore = score
	}
	sm.gamesPlayed++
	sm.totalScore += score

	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, round)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetAverageScore averages over every round of the session, not only the kept history
func (sm *StateManager) GetAverageScore() float64 {
	if sm.gamesPlayed == 0 {
		return 0
	}
	return float64(sm.totalScore) / float64(sm.gamesPlayed)
}

// GetAverageDuration averages over the kept history
func (sm *StateManager) GetAverageDuration() time.Duration {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	var total time.Duration
	for _, round := range sm.scoreHistory {
		total += round.Duration()
	}
	return total / time.Duration(len(sm.scoreHistory))
}

func (sm *StateManager) GetScoreHistory() []RoundRecord {
	history := make([]RoundRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}
