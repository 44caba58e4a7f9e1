package systems

import (
	"encoding/json"

	"github.com/cozypark/cozypark/logging"
	"github.com/quasilyte/gdata"
)

// SavedPreferences represents the user preferences stored on disk
type SavedPreferences struct {
	Color     string `json:"color"`
	ServerURL string `json:"serverUrl"`
}

const preferencesKey = "preferences"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cozypark",
	})
	if err != nil {
		logging.L().Warnw("[persistence] could not initialize", "error", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil when nothing
// has been saved yet or persistence is unavailable.
func LoadPreferences() (*SavedPreferences, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		logging.L().Warnw("[persistence] could not load preferences", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		logging.L().Warnw("[persistence] could not parse preferences", "error", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if gdataManager == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		logging.L().Warnw("[persistence] could not save preferences", "error", err)
		return err
	}
	return nil
}
