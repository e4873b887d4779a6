package model

import (
	"github.com/pkg/errors"
)

// Note is one decoded chart event: a keysound anchored to a beat and,
// for long notes, an end beat. Column is empty when the source channel
// has no playable lane (e.g. the BGM channel).
type Note struct {
	Beat     float64  `json:"beat"`
	EndBeat  *float64 `json:"endBeat,omitempty"`
	Keysound string   `json:"keysound"`
	Column   string   `json:"column,omitempty"`
}

func (n Note) Validate() error {
	if n.Beat < 0 {
		return errors.Errorf("beat must be non-negative, got %v", n.Beat)
	}
	if n.Keysound == "" {
		return errors.New("keysound must not be empty")
	}
	if n.EndBeat != nil && *n.EndBeat < n.Beat {
		return errors.Errorf("end beat %v is before beat %v", *n.EndBeat, n.Beat)
	}
	return nil
}
