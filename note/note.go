// Package note decodes a compiled chart's object stream into playable and
// background notes. One pass over the sorted objects, tracking in-flight
// long notes per lane and resolving the #LNOBJ terminator value.
package note

import (
	"strings"

	"github.com/mugabe/bmsdex/mapping"
	"github.com/mugabe/bmsdex/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ChartSource is what the builder needs from a compiled chart. Objects
// must be pre-sorted by temporal position; the builder never re-sorts.
type ChartSource interface {
	Header(name string) string
	Objects() []model.ChartObject
	MeasureToBeat(measure int, fraction float64) float64
}

type Options struct {
	Mapping mapping.Mapping
}

// FromChart builds the note collection for a chart, defaulting to the
// built-in player-1 mapping when opts carries none.
func FromChart(c ChartSource, opts *Options) (*Notes, error) {
	m := mapping.Default()
	if opts != nil && opts.Mapping != nil {
		m = opts.Mapping
	}
	return Build(c, m)
}

// Build decodes the chart against an explicit channel mapping. A nil
// mapping is a configuration error, raised before any object is read.
func Build(c ChartSource, m mapping.Mapping) (*Notes, error) {
	if m == nil {
		return nil, errors.New("channel mapping is required")
	}
	b := builder{
		chart:    c,
		mapping:  m,
		marker:   strings.ToLower(c.Header("LNOBJ")),
		activeLN: make(map[string]model.Note),
		lastNote: make(map[string]int),
	}
	return newNotes(b.run())
}

type channelKind int

const (
	kindIgnored channelKind = iota
	kindNormal
	kindLong
)

// classifyChannel folds long-note channels onto their normal-channel
// counterpart so both share per-lane state and column lookup.
func classifyChannel(channel string) (channelKind, string) {
	if channel == "01" {
		return kindNormal, channel
	}
	if channel == "" {
		return kindIgnored, channel
	}
	switch channel[0] {
	case '1', '2':
		return kindNormal, channel
	case '5':
		return kindLong, "1" + channel[1:]
	case '6':
		return kindLong, "2" + channel[1:]
	}
	return kindIgnored, channel
}

// builder state lives for a single Build call.
type builder struct {
	chart   ChartSource
	mapping mapping.Mapping
	marker  string

	// open long notes per normalized channel, not yet in out
	activeLN map[string]model.Note
	// index into out of the last sound note per normalized channel
	lastNote map[string]int
	out      []model.Note
}

func (b *builder) run() []model.Note {
	for _, obj := range b.chart.Objects() {
		kind, channel := classifyChannel(obj.Channel)
		if kind == kindIgnored {
			continue
		}
		beat := b.chart.MeasureToBeat(obj.Measure, obj.Fraction)
		if kind == kindLong {
			b.handleLong(channel, beat, obj.Value)
		} else {
			b.handleNormal(channel, beat, obj.Value)
		}
	}
	for channel, open := range b.activeLN {
		logrus.WithFields(logrus.Fields{
			"channel":  channel,
			"beat":     open.Beat,
			"keysound": open.Keysound,
		}).Warn("dropping long note with no end event")
	}
	return b.out
}

func (b *builder) isTerminator(value string) bool {
	return b.marker != "" && strings.ToLower(value) == b.marker
}

func (b *builder) handleNormal(channel string, beat float64, value string) {
	if b.isTerminator(value) {
		idx, ok := b.lastNote[channel]
		if !ok {
			logrus.WithField("channel", channel).Warn("terminator with no note to close")
			return
		}
		end := beat
		b.out[idx].EndBeat = &end
		return
	}
	b.lastNote[channel] = len(b.out)
	b.out = append(b.out, model.Note{
		Beat:     beat,
		Keysound: value,
		Column:   b.mapping[channel],
	})
}

func (b *builder) handleLong(channel string, beat float64, value string) {
	if open, ok := b.activeLN[channel]; ok {
		end := beat
		open.EndBeat = &end
		b.out = append(b.out, open)
		delete(b.activeLN, channel)
		return
	}
	b.activeLN[channel] = model.Note{
		Beat:     beat,
		Keysound: value,
		Column:   b.mapping[channel],
	}
}
