package workouts

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type QuantificationType string

const (
	QuantificationRep  QuantificationType = "rep"
	QuantificationHold QuantificationType = "hold"
)

// CategoryCore is the muscle group tag used by legacy hold-time exercises.
const CategoryCore = "abdos"

// DefaultRestSeconds is used when a set has no rest time recorded.
const DefaultRestSeconds = 60

type Exercise struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"nom" yaml:"nom"`
	Category string `json:"categorie" yaml:"categorie"`
	// Quantification is nil for exercises created before the field existed.
	Quantification *QuantificationType `json:"typeQuantification,omitempty" yaml:"typeQuantification,omitempty"`
}

type WorkoutSet struct {
	ID          string   `json:"id" yaml:"id"`
	WorkoutID   string   `json:"workoutId" yaml:"workoutId"`
	ExerciseID  string   `json:"exerciseId" yaml:"exerciseId"`
	Repetitions int      `json:"repetitions" yaml:"repetitions"`
	Weight      *float64 `json:"poids,omitempty" yaml:"poids,omitempty"`
	Duration    *float64 `json:"duree,omitempty" yaml:"duree,omitempty"`
	Rest        *float64 `json:"tempsRepos,omitempty" yaml:"tempsRepos,omitempty"`
}

// RestSeconds returns the rest following the set, DefaultRestSeconds if not recorded.
func (s WorkoutSet) RestSeconds() float64 {
	if s.Rest == nil {
		return DefaultRestSeconds
	}
	return *s.Rest
}

// DurationSeconds returns the hold duration, 0 if not recorded.
func (s WorkoutSet) DurationSeconds() float64 {
	if s.Duration == nil {
		return 0
	}
	return *s.Duration
}

type Workout struct {
	ID              string       `json:"id" yaml:"id"`
	UserID          string       `json:"userId,omitempty" yaml:"userId,omitempty"`
	Name            string       `json:"nom" yaml:"nom"`
	Date            time.Time    `json:"date" yaml:"date"`
	Type            string       `json:"type" yaml:"type"`
	DurationMinutes int          `json:"duree" yaml:"duree"`
	Feeling         int          `json:"ressenti" yaml:"ressenti"`
	Description     *string      `json:"description,omitempty" yaml:"description,omitempty"`
	Sets            []WorkoutSet `json:"sets" yaml:"sets"`
}

// DateKey is the ISO calendar date of the workout, the form dates are compared in.
func (w Workout) DateKey() string {
	return w.Date.Format(time.DateOnly)
}

type PersonalRecord struct {
	UserID     string    `json:"userId" yaml:"userId"`
	ExerciseID string    `json:"exerciseId" yaml:"exerciseId"`
	Value      float64   `json:"valeur" yaml:"valeur"`
	AchievedAt time.Time `json:"date" yaml:"date"`
}

// ListParams filters workouts fetched from a source.
type ListParams struct {
	UserID string
	From   *time.Time
	To     *time.Time
}

// dateLayouts are tried in order. Snapshots exported by older app versions
// carry date-only values.
var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// ParseDate reads an ISO timestamp or calendar date. An empty value is the zero time.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func (w *Workout) UnmarshalJSON(data []byte) error {
	type Alias Workout
	wire := struct {
		*Alias
		Date string `json:"date"`
	}{Alias: (*Alias)(w)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	date, err := ParseDate(wire.Date)
	if err != nil {
		return fmt.Errorf("workout %s: %w", w.ID, err)
	}
	w.Date = date
	return nil
}

func (w *Workout) UnmarshalYAML(node *yaml.Node) error {
	type Alias Workout
	rest, rawDate := splitDate(node)
	if err := rest.Decode((*Alias)(w)); err != nil {
		return err
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return fmt.Errorf("workout %s: %w", w.ID, err)
	}
	w.Date = date
	return nil
}

func (r *PersonalRecord) UnmarshalJSON(data []byte) error {
	type Alias PersonalRecord
	wire := struct {
		*Alias
		Date string `json:"date"`
	}{Alias: (*Alias)(r)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	date, err := ParseDate(wire.Date)
	if err != nil {
		return fmt.Errorf("personal record %s: %w", r.ExerciseID, err)
	}
	r.AchievedAt = date
	return nil
}

func (r *PersonalRecord) UnmarshalYAML(node *yaml.Node) error {
	type Alias PersonalRecord
	rest, rawDate := splitDate(node)
	if err := rest.Decode((*Alias)(r)); err != nil {
		return err
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return fmt.Errorf("personal record %s: %w", r.ExerciseID, err)
	}
	r.AchievedAt = date
	return nil
}

// splitDate returns a copy of the mapping node without its date entry, and
// the raw date value.
func splitDate(node *yaml.Node) (*yaml.Node, string) {
	if node.Kind != yaml.MappingNode {
		return node, ""
	}
	rest := *node
	rest.Content = make([]*yaml.Node, 0, len(node.Content))
	var date string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value == "date" {
			if value.Tag != "!!null" {
				date = value.Value
			}
			continue
		}
		rest.Content = append(rest.Content, key, value)
	}
	return &rest, date
}
