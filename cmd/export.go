package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mugabe/bmsdex/chart"
	"github.com/mugabe/bmsdex/export"
	"github.com/mugabe/bmsdex/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports a chart as MIDI",
	Long:  `Decodes one chart file and writes its notes as a Standard MIDI File`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			panic("Need 1 or 2 args...")
		}
		out := ""
		if len(args) == 2 {
			out = args[1]
		}
		exportChart(args[0], out)
	},
}

func exportChart(path, out string) {
	if out == "" {
		base := filepath.Base(path)
		out = strings.TrimSuffix(base, filepath.Ext(base)) + ".mid"
	}

	c, err := chart.ReadChartFile(path)
	if err != nil {
		panic("Could not read chart: " + err.Error())
	}
	ns, err := note.FromChart(c, nil)
	if err != nil {
		panic("Could not build notes: " + err.Error())
	}

	s := export.ToSMF(ns, c.SongInfo().BPM)
	if err := s.WriteFile(out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v notes to %v\n", ns.Count(), out)
}
