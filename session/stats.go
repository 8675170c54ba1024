package session

import "time"

// Stats provides statistics about a session.
type Stats struct {
	Frames     int64
	Paused     bool
	TotalSteps int64
	Boards     []BoardStats
}

// BoardStats provides step statistics for a single board.
type BoardStats struct {
	ID    BoardID
	Name  string
	Lines int
	// Games counts the games this board finished.
	Games int64
	// Cleared counts rows removed over every game.
	Cleared int64

	StepCount     int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type boardStatsInternal struct {
	name          string
	games         int64
	cleared       int64
	stepCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (st *boardStatsInternal) record(d time.Duration) {
	st.stepCount++
	st.lastDuration = d
	st.totalDuration += d
	if d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

// GetStats returns statistics about board execution.
func (s *Session) GetStats() *Stats {
	stats := &Stats{
		Frames: s.frames,
		Paused: s.paused,
		Boards: make([]BoardStats, len(s.stats)),
	}

	for i, internal := range s.stats {
		var avg, lowest time.Duration
		if internal.stepCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.stepCount)
			lowest = internal.minDuration
		}

		stats.Boards[i] = BoardStats{
			ID:            s.ids[i],
			Name:          internal.name,
			Lines:         s.boards[i].Lines,
			Games:         internal.games,
			Cleared:       internal.cleared,
			StepCount:     internal.stepCount,
			MinDuration:   lowest,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avg,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		stats.TotalSteps += internal.stepCount
	}
	return stats
}
