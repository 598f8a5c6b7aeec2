package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const anchorItem = "anchor"

// SavedAnchor is the last calibrated weld point, in source image pixels
type SavedAnchor struct {
	ImageSrc string  `json:"imageSrc"`
	AnchorX  float64 `json:"anchorX"`
	AnchorY  float64 `json:"anchorY"`
}

// itemStore is the subset of gdata.Manager used here
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the per-user data directory for calibration results
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		zap.S().Warnw("could not initialize persistence", "error", err)
		return err
	}
	store = m
	return nil
}

// LoadAnchor returns the saved anchor, or nil when there is none
func LoadAnchor() (*SavedAnchor, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(anchorItem)
	if err != nil {
		zap.S().Warnw("could not load saved anchor", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedAnchor
	if err := json.Unmarshal(data, &saved); err != nil {
		zap.S().Warnw("could not parse saved anchor", "error", err)
		return nil, err
	}
	return &saved, nil
}

// SaveAnchor stores a calibrated anchor
func SaveAnchor(a SavedAnchor) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	if err := store.SaveItem(anchorItem, data); err != nil {
		zap.S().Warnw("could not save anchor", "error", err)
		return err
	}
	return nil
}
