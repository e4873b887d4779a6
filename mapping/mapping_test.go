package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsCoverSevenLanesAndScratch(t *testing.T) {
	assert := assert.New(t)
	for _, m := range []Mapping{IIDXP1, IIDXP2} {
		columns := make(map[string]bool)
		for _, col := range m {
			columns[col] = true
		}
		for _, want := range []string{"1", "2", "3", "4", "5", "6", "7", "SC"} {
			assert.True(columns[want], "missing column %v", want)
		}
	}
}

func TestDefaultIsPlayerOne(t *testing.T) {
	assert.Equal(t, "1", Default()["11"])
	assert.Equal(t, "SC", Default()["16"])
}
