package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/gymstats/internal/gymstats/workouts"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Dataset is a read-only snapshot of a training log, as exported by the app.
type Dataset struct {
	Exercises       []workouts.Exercise       `json:"exercises" yaml:"exercises"`
	Workouts        []workouts.Workout        `json:"workouts" yaml:"workouts"`
	PersonalRecords []workouts.PersonalRecord `json:"personalRecords" yaml:"personalRecords"`
}

// LoadFiles reads and merges the snapshots. All files are read, and every
// failure is reported in the returned error.
func LoadFiles(paths ...string) (*Dataset, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no dataset files given")
	}

	merged := &Dataset{}
	var errs error
	for _, path := range paths {
		ds, err := LoadFile(path)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		merged.Exercises = append(merged.Exercises, ds.Exercises...)
		merged.Workouts = append(merged.Workouts, ds.Workouts...)
		merged.PersonalRecords = append(merged.PersonalRecords, ds.PersonalRecords...)
	}
	if errs != nil {
		return nil, errs
	}

	log.Debugf("dataset loaded: %d exercises, %d workouts, %d personal records",
		len(merged.Exercises), len(merged.Workouts), len(merged.PersonalRecords))

	return merged, nil
}

// LoadFile decodes a JSON or YAML snapshot, chosen by the file extension.
func LoadFile(path string) (*Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	ds := &Dataset{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(content, ds)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, ds)
	default:
		return nil, fmt.Errorf("dataset %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	return ds, nil
}

// ListWorkouts returns the workouts of the user, within the optional time bounds.
// Workouts without a user id belong to everyone.
func (d *Dataset) ListWorkouts(_ context.Context, params workouts.ListParams) ([]workouts.Workout, error) {
	list := make([]workouts.Workout, 0, len(d.Workouts))
	for _, w := range d.Workouts {
		if params.UserID != "" && w.UserID != "" && w.UserID != params.UserID {
			continue
		}
		if params.From != nil && w.Date.Before(*params.From) {
			continue
		}
		if params.To != nil && w.Date.After(*params.To) {
			continue
		}
		list = append(list, w)
	}
	return list, nil
}

func (d *Dataset) ListExercises(_ context.Context) ([]workouts.Exercise, error) {
	return d.Exercises, nil
}

func (d *Dataset) ListPersonalRecords(_ context.Context, userID string) ([]workouts.PersonalRecord, error) {
	records := make([]workouts.PersonalRecord, 0, len(d.PersonalRecords))
	for _, r := range d.PersonalRecords {
		if userID != "" && r.UserID != "" && r.UserID != userID {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}
