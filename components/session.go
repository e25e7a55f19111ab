package components

// SessionState is the level lifecycle phase.
type SessionState int

const (
	LevelConfigured SessionState = iota
	Dead
	Won
)

func (s SessionState) String() string {
	switch s {
	case LevelConfigured:
		return "LevelConfigured"
	case Dead:
		return "Dead"
	case Won:
		return "Won"
	}
	return "Unknown"
}

// SessionData is the progress of one play session. It is owned by the level
// scene and shared by pointer with everything that reads or advances it.
type SessionData struct {
	Level         int
	State         SessionState
	HasWon        bool
	UnlockMessage string

	// Attempt increments on every SetupLevel so callbacks scheduled for an
	// earlier attempt can tell they are stale.
	Attempt int

	// Lifetime counters, loaded from and saved to disk.
	Deaths    int
	Victories int
}

// NewSession starts a session at the given level.
func NewSession(level int) *SessionData {
	if level < 1 {
		level = 1
	}
	return &SessionData{Level: level}
}

// Playing reports whether gameplay systems should run.
func (s *SessionData) Playing() bool {
	return s.State == LevelConfigured
}
