package systems

import (
	"encoding/json"

	"github.com/automoto/rogueratou/components"
	"github.com/automoto/rogueratou/logging"
	"github.com/quasilyte/gdata"
)

// SavedStats represents the lifetime counters stored on disk. Level progress
// is never saved; every launch starts from the first level.
type SavedStats struct {
	Deaths    int `json:"deaths"`
	Victories int `json:"victories"`
}

const statsKey = "stats"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for stats storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logging.L.Warn("could not initialize persistence", "error", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadStats loads stats from disk. Missing or unreadable data yields zeroes.
func LoadStats() SavedStats {
	if !gdataInitialized || gdataManager == nil {
		return SavedStats{}
	}

	data, err := gdataManager.LoadItem(statsKey)
	if err != nil {
		logging.L.Warn("could not load stats", "error", err)
		return SavedStats{}
	}
	if data == nil {
		// No saved stats yet
		return SavedStats{}
	}

	var stats SavedStats
	if err := json.Unmarshal(data, &stats); err != nil {
		logging.L.Warn("could not parse saved stats", "error", err)
		return SavedStats{}
	}
	return stats
}

// SaveStats saves stats to disk
func SaveStats(s SavedStats) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.L.Warn("could not serialize stats", "error", err)
		return err
	}

	if err := gdataManager.SaveItem(statsKey, data); err != nil {
		logging.L.Warn("could not save stats", "error", err)
		return err
	}
	return nil
}

// SaveSessionStats saves the lifetime counters carried by the session
func SaveSessionStats(s *components.SessionData) {
	_ = SaveStats(SavedStats{
		Deaths:    s.Deaths,
		Victories: s.Victories,
	})
}
