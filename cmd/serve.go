package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/mugabe/bmsdex/chart"
	"github.com/mugabe/bmsdex/db"
	"github.com/mugabe/bmsdex/model"
	"github.com/mugabe/bmsdex/note"
	"github.com/mugabe/bmsdex/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var catalog model.Catalog
var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the catalog over HTTP",
	Long:  `Serves the catalog and per-chart note data as JSON`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func LoadServeFiles() {
	catalog = util.ReadBinaryOrPanic[model.Catalog](util.GetCatalogPath())
}

func findEntry(id string) *model.CatalogEntry {
	for i := range catalog.Entries {
		if catalog.Entries[i].Id == id {
			return &catalog.Entries[i]
		}
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleCharts(w http.ResponseWriter, r *http.Request) {
	entries := catalog.Entries
	if entries == nil {
		entries = make([]model.CatalogEntry, 0)
	}
	json.NewEncoder(w).Encode(entries)
}

func HandleChart(w http.ResponseWriter, r *http.Request) {
	entry := findEntry(mux.Vars(r)["id"])
	if entry == nil {
		writeError(w, 404, "no such chart")
		return
	}

	res := model.ChartResponse{CatalogEntry: *entry}
	filename := filepath.Base(entry.Path)
	metadatas := db.GetChartMetadatas([]string{filename})
	if m, ok := metadatas[filename]; ok {
		res.Metadata = &m
	}
	json.NewEncoder(w).Encode(res)
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	entry := findEntry(mux.Vars(r)["id"])
	if entry == nil {
		writeError(w, 404, "no such chart")
		return
	}

	c, err := chart.ReadChartFile(entry.Path)
	if err != nil {
		writeError(w, 500, "could not read chart: "+err.Error())
		return
	}
	ns, err := note.FromChart(c, nil)
	if err != nil {
		writeError(w, 500, "could not build notes: "+err.Error())
		return
	}

	json.NewEncoder(w).Encode(model.NotesResponse{
		Count: ns.Count(),
		Notes: ns.All(),
	})
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/charts", HandleCharts).Methods("GET")
	router.HandleFunc("/charts/{id}", HandleChart).Methods("GET")
	router.HandleFunc("/charts/{id}/notes", HandleNotes).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := fmt.Sprintf(":%v", servePort)
	log.Fatal(http.ListenAndServe(addr, handler))
}
