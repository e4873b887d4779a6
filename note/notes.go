package note

import (
	"github.com/mugabe/bmsdex/model"
	"github.com/pkg/errors"
)

// Notes is the immutable result of a build. Order is emission order,
// chronological by construction.
type Notes struct {
	notes []model.Note
}

func newNotes(candidates []model.Note) (*Notes, error) {
	for i, n := range candidates {
		if err := n.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid note %v (keysound %q)", i, n.Keysound)
		}
	}
	return &Notes{notes: candidates}, nil
}

func (ns *Notes) Count() int {
	return len(ns.notes)
}

// All returns a copy of the note list. EndBeat pointers are copied too,
// so callers cannot reach back into the collection.
func (ns *Notes) All() []model.Note {
	res := make([]model.Note, len(ns.notes))
	for i, n := range ns.notes {
		if n.EndBeat != nil {
			end := *n.EndBeat
			n.EndBeat = &end
		}
		res[i] = n
	}
	return res
}
