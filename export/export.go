// Package export renders a built note collection as a single-track
// Standard MIDI File, mostly useful for auditioning a chart's rhythm in
// tools that don't read BMS.
package export

import (
	"math"
	"sort"

	"github.com/mugabe/bmsdex/model"
	"github.com/mugabe/bmsdex/note"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const resolution = 480

// gate length in beats for notes without an end beat
const defaultGate = 0.25

// columns map onto a white-key-ish cluster; scratch sits below, BGM
// notes pile on a fixed low key
var columnKeys = map[string]uint8{
	"SC": 59,
	"1":  60,
	"2":  61,
	"3":  62,
	"4":  63,
	"5":  64,
	"6":  65,
	"7":  66,
}

const bgmKey = 48

type timedMessage struct {
	ticks   uint64
	isOff   bool
	message smf.Message
}

func keyFor(n model.Note) uint8 {
	if key, ok := columnKeys[n.Column]; ok {
		return key
	}
	return bgmKey
}

func beatToTicks(beat float64) uint64 {
	return uint64(math.Round(beat * resolution))
}

// ToSMF converts notes to a one-track SMF at the given tempo. Long notes
// hold until their end beat; everything else gets a short fixed gate.
func ToSMF(ns *note.Notes, bpm float64) *smf.SMF {
	var msgs []timedMessage
	for _, n := range ns.All() {
		key := keyFor(n)
		end := n.Beat + defaultGate
		if n.EndBeat != nil {
			end = *n.EndBeat
		}
		msgs = append(msgs, timedMessage{
			ticks:   beatToTicks(n.Beat),
			message: smf.Message(midi.NoteOn(0, key, 100)),
		})
		msgs = append(msgs, timedMessage{
			ticks:   beatToTicks(end),
			isOff:   true,
			message: smf.Message(midi.NoteOff(0, key)),
		})
	}

	// prioritize smaller tick values, then note off
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].ticks != msgs[j].ticks {
			return msgs[i].ticks < msgs[j].ticks
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTempo(bpm)})
	var lastTicks uint64
	for _, m := range msgs {
		track = append(track, smf.Event{
			Delta:   uint32(m.ticks - lastTicks),
			Message: m.message,
		})
		lastTicks = m.ticks
	}
	track.Close(0)

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(resolution)
	res.Tracks = append(res.Tracks, track)
	return &res
}
