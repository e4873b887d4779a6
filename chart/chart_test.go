package chart

import (
	"testing"

	"github.com/mugabe/bmsdex/model"
	"github.com/stretchr/testify/assert"
)

func compileOrFail(t *testing.T, text string) *Chart {
	c, err := Compile(text)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return c
}

func TestHeadersAreCaseInsensitive(t *testing.T) {
	c := compileOrFail(t, "#TITLE Foo\n#artist Bar\n#LNOBJ ZZ\n")

	assert := assert.New(t)
	assert.Equal("Foo", c.Header("title"))
	assert.Equal("Bar", c.Header("ARTIST"))
	assert.Equal("ZZ", c.Header("LnObj"))
	assert.Equal("", c.Header("SUBTITLE"))
}

func TestKeysoundTable(t *testing.T) {
	c := compileOrFail(t, "#WAV01 kick.wav\n#WAVZZ snare.wav\n")

	assert := assert.New(t)
	assert.Equal("kick.wav", c.Keysounds()["01"])
	assert.Equal("snare.wav", c.Keysounds()["zz"])
	// keysound headers must not leak into the plain header table
	assert.Equal("", c.Header("WAV01"))
}

func TestChannelLineExpandsToObjects(t *testing.T) {
	c := compileOrFail(t, "#00111:0100AB\n")

	assert := assert.New(t)
	assert.Equal([]model.ChartObject{
		{Channel: "11", Measure: 1, Fraction: 0, Value: "01"},
		{Channel: "11", Measure: 1, Fraction: 2.0 / 3.0, Value: "AB"},
	}, c.Objects())
}

func TestObjectsSortedByPosition(t *testing.T) {
	c := compileOrFail(t, "#00211:01\n#00111:0002\n#00112:03\n")

	var positions []float64
	for _, obj := range c.Objects() {
		positions = append(positions, c.MeasureToBeat(obj.Measure, obj.Fraction))
	}
	assert.Equal(t, []float64{4, 6, 8}, positions)
}

func TestSimultaneousObjectsKeepSourceOrder(t *testing.T) {
	c := compileOrFail(t, "#00112:01\n#00111:02\n")

	objects := c.Objects()
	assert := assert.New(t)
	assert.Equal("12", objects[0].Channel)
	assert.Equal("11", objects[1].Channel)
}

func TestMeasureToBeatDefaultSignature(t *testing.T) {
	c := compileOrFail(t, "")

	assert := assert.New(t)
	assert.Equal(0.0, c.MeasureToBeat(0, 0))
	assert.Equal(2.0, c.MeasureToBeat(0, 0.5))
	assert.Equal(4.0, c.MeasureToBeat(1, 0))
	assert.Equal(9.0, c.MeasureToBeat(2, 0.25))
}

func TestMeasureToBeatHonorsTimeSignatures(t *testing.T) {
	c := compileOrFail(t, "#00002:0.75\n")

	assert := assert.New(t)
	assert.Equal(1.5, c.MeasureToBeat(0, 0.5))
	assert.Equal(3.0, c.MeasureToBeat(1, 0))
	assert.Equal(7.0, c.MeasureToBeat(2, 0))
}

func TestBadTimeSignatureIsAnError(t *testing.T) {
	_, err := Compile("#00002:xx\n")
	assert.NotNil(t, err)
}

func TestSongInfo(t *testing.T) {
	c := compileOrFail(t, "#TITLE Song\n#ARTIST Me\n#GENRE Test\n#BPM 185\n")

	assert.Equal(t, model.SongInfo{
		Title:  "Song",
		Artist: "Me",
		Genre:  "Test",
		BPM:    185,
	}, c.SongInfo())
}

func TestSongInfoDefaultBPM(t *testing.T) {
	c := compileOrFail(t, "#TITLE Song\n")
	assert.Equal(t, 130.0, c.SongInfo().BPM)
}
