//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/mugabe/bmsdex/cmd"
	"github.com/mugabe/bmsdex/model"
	"github.com/stretchr/testify/assert"
)

const chartText = `#TITLE E2E Song
#ARTIST Nobody
#BPM 120
#LNOBJ ZZ
#WAV01 a.wav

#00011:01ZZ
#00051:0202
#00001:03
`

func TestMain(m *testing.M) {
	media, err := os.MkdirTemp("", "bmsdex-media")
	if err != nil {
		panic(err.Error())
	}
	index, err := os.MkdirTemp("", "bmsdex-index")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("MEDIA_PATH", media)
	os.Setenv("INDEX_PATH", index)

	err = os.WriteFile(filepath.Join(media, "e2e.bms"), []byte(chartText), 0644)
	if err != nil {
		panic(err.Error())
	}

	cmd.Index(0)
	cmd.LoadServeFiles()

	exitVal := m.Run()

	os.RemoveAll(media)
	os.RemoveAll(index)
	os.Exit(exitVal)
}

func getCharts(t *testing.T) []model.CatalogEntry {
	req := httptest.NewRequest(http.MethodGet, "/charts", nil)
	w := httptest.NewRecorder()
	cmd.HandleCharts(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)

	var entries []model.CatalogEntry
	err := json.Unmarshal(respBody, &entries)
	if err != nil {
		panic(err.Error())
	}
	return entries
}

func TestCatalogE2E(t *testing.T) {
	entries := getCharts(t)

	assert := assert.New(t)
	assert.Equal(1, len(entries))
	assert.Equal(int64(3), entries[0].NumNotes)
	assert.Equal(int64(2), entries[0].NumLong)
	assert.Equal("E2E Song", entries[0].Song.Title)
	assert.Equal(120.0, entries[0].Song.BPM)
}

func TestNotesE2E(t *testing.T) {
	entries := getCharts(t)

	req := httptest.NewRequest(http.MethodGet, "/charts/"+entries[0].Id+"/notes", nil)
	req = mux.SetURLVars(req, map[string]string{"id": entries[0].Id})
	w := httptest.NewRecorder()
	cmd.HandleNotes(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var notes model.NotesResponse
	err := json.Unmarshal(respBody, &notes)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(3, notes.Count)
	assert.Equal(notes.Count, len(notes.Notes))

	end := 2.0
	assert.Contains(notes.Notes, model.Note{Beat: 0, EndBeat: &end, Keysound: "01", Column: "1"})
	assert.Contains(notes.Notes, model.Note{Beat: 0, Keysound: "03"})
}

func TestNotesUnknownChartE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/charts/nope/notes", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	w := httptest.NewRecorder()
	cmd.HandleNotes(w, req)

	assert.Equal(t, 404, w.Result().StatusCode)
}
