package artifacts

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/bus-arrival/feature"
	"github.com/theoremus-urban-solutions/bus-arrival/model"
)

// Set is the complete output of one training run. All parts were fitted
// against the same generated table and must only ever be used together.
type Set struct {
	BusEncoder         *feature.EncodingTable
	DestinationEncoder *feature.EncodingTable
	DayEncoder         *feature.EncodingTable
	Scaler             feature.ScalingParams
	Model              model.RidgeParams
}

// Complete reports whether every part of the set is present.
func (s *Set) Complete() bool {
	return s != nil &&
		s.BusEncoder != nil && s.BusEncoder.Len() > 0 &&
		s.DestinationEncoder != nil && s.DestinationEncoder.Len() > 0 &&
		s.DayEncoder != nil && s.DayEncoder.Len() > 0 &&
		len(s.Scaler.Means) > 0 &&
		len(s.Model.Weights) > 0
}

// LoadError reports that persisted artifacts are missing or unreadable. It
// is fatal at service startup: without a consistent set the service must not
// accept requests.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("artifacts: cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Save writes the set to path atomically: gob-encode into a temporary file
// in the same directory, then rename over the target.
func Save(set *Set, path string) error {
	if !set.Complete() {
		return fmt.Errorf("artifacts: refusing to save incomplete set")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("artifacts: creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".artifacts-*.gob")
	if err != nil {
		return fmt.Errorf("artifacts: creating temp file: %w", err)
	}
	if err := gob.NewEncoder(tmp).Encode(set); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("artifacts: encoding set: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("artifacts: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("artifacts: renaming into place: %w", err)
	}
	return nil
}

// Load reads a set previously written by Save. Any failure, including an
// incomplete decoded set, surfaces as *LoadError.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	var set Set
	if err := gob.NewDecoder(f).Decode(&set); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to decode artifact set: %w", err)}
	}
	if !set.Complete() {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decoded artifact set is incomplete")}
	}
	return &set, nil
}
