// Package chart compiles BMS text into headers, a keysound table and a
// time-sorted object stream.
package chart

import (
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mugabe/bmsdex/model"
	"github.com/pkg/errors"
)

// beats per measure with a 1.0 time signature
const beatsPerMeasure = 4

var channelLineRe = regexp.MustCompile(`^#(\d{3})([0-9A-Za-z]{2}):(\S+)$`)
var headerLineRe = regexp.MustCompile(`^#(\w+)(?:\s+(\S.*?))?\s*$`)

type Chart struct {
	headers    map[string]string
	keysounds  map[string]string
	signatures map[int]float64
	objects    []model.ChartObject
}

// Compile parses BMS text. Unrecognized lines are skipped, matching the
// format's convention that anything outside a command is a comment.
func Compile(text string) (*Chart, error) {
	c := &Chart{
		headers:    make(map[string]string),
		keysounds:  make(map[string]string),
		signatures: make(map[int]float64),
	}

	for num, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if m := channelLineRe.FindStringSubmatch(line); m != nil {
			measure, _ := strconv.Atoi(m[1])
			channel := strings.ToUpper(m[2])
			if channel == "02" {
				sig, err := strconv.ParseFloat(m[3], 64)
				if err != nil {
					return nil, errors.Wrapf(err, "bad time signature on line %v", num+1)
				}
				c.signatures[measure] = sig
				continue
			}
			c.appendObjects(measure, channel, m[3])
			continue
		}
		if m := headerLineRe.FindStringSubmatch(line); m != nil {
			c.setHeader(strings.ToUpper(m[1]), m[2])
		}
	}

	// stable so that simultaneous objects keep source line order
	sort.SliceStable(c.objects, func(i, j int) bool {
		if c.objects[i].Measure != c.objects[j].Measure {
			return c.objects[i].Measure < c.objects[j].Measure
		}
		return c.objects[i].Fraction < c.objects[j].Fraction
	})

	return c, nil
}

func (c *Chart) setHeader(name, value string) {
	if strings.HasPrefix(name, "WAV") && len(name) == 5 {
		c.keysounds[strings.ToLower(name[3:])] = value
		return
	}
	c.headers[name] = value
}

func (c *Chart) appendObjects(measure int, channel, data string) {
	numPairs := len(data) / 2
	for i := 0; i < numPairs; i++ {
		value := data[i*2 : i*2+2]
		if value == "00" {
			continue
		}
		c.objects = append(c.objects, model.ChartObject{
			Channel:  channel,
			Measure:  measure,
			Fraction: float64(i) / float64(numPairs),
			Value:    value,
		})
	}
}

// Header returns the value of a header, compared case-insensitively.
// Absent headers yield the empty string.
func (c *Chart) Header(name string) string {
	return c.headers[strings.ToUpper(name)]
}

// Objects returns the object stream sorted by (measure, fraction).
func (c *Chart) Objects() []model.ChartObject {
	return c.objects
}

// MeasureToBeat converts a measure number and intra-measure fraction to
// an absolute beat position, honoring channel-02 time signatures.
func (c *Chart) MeasureToBeat(measure int, fraction float64) float64 {
	var beat float64
	for m := 0; m < measure; m++ {
		beat += beatsPerMeasure * c.signature(m)
	}
	return beat + fraction*beatsPerMeasure*c.signature(measure)
}

func (c *Chart) signature(measure int) float64 {
	if sig, ok := c.signatures[measure]; ok {
		return sig
	}
	return 1
}

// Keysounds maps the two-character object value to the #WAVxx filename.
func (c *Chart) Keysounds() map[string]string {
	res := make(map[string]string, len(c.keysounds))
	for k, v := range c.keysounds {
		res[k] = v
	}
	return res
}

func (c *Chart) SongInfo() model.SongInfo {
	bpm, err := strconv.ParseFloat(c.Header("BPM"), 64)
	if err != nil {
		bpm = 130
	}
	return model.SongInfo{
		Title:  c.Header("TITLE"),
		Artist: c.Header("ARTIST"),
		Genre:  c.Header("GENRE"),
		BPM:    bpm,
	}
}

func ReadChartFile(path string) (*Chart, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading chart file")
	}
	c, err := Compile(string(dat))
	if err != nil {
		return nil, errors.Wrapf(err, "compiling %v", path)
	}
	return c, nil
}
