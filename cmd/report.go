package cmd

import (
	"fmt"

	"github.com/mugabe/bmsdex/model"
	"github.com/mugabe/bmsdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Prints aggregate stats about the chart catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type catalogReport struct {
	numCharts   int64
	numFailed   int64
	noteCounts  []int64
	longCounts  []int64
	maxNotes    int64
	maxNotesRef string
}

func analyzeCatalog(catalog model.Catalog) catalogReport {
	var report catalogReport
	report.numFailed = catalog.NumFailed
	for _, entry := range catalog.Entries {
		report.numCharts++
		report.noteCounts = append(report.noteCounts, entry.NumNotes)
		report.longCounts = append(report.longCounts, entry.NumLong)
		if entry.NumNotes > report.maxNotes {
			report.maxNotes = entry.NumNotes
			report.maxNotesRef = entry.Path
		}
	}
	return report
}

func report() {
	catalog := util.ReadBinaryOrPanic[model.Catalog](util.GetCatalogPath())
	r := analyzeCatalog(catalog)

	totalNotes := util.Sum(r.noteCounts)
	totalLong := util.Sum(r.longCounts)

	fmt.Printf("charts indexed: %v\n", r.numCharts)
	fmt.Printf("charts skipped: %v\n", r.numFailed)
	fmt.Printf("total notes: %v\n", totalNotes)
	fmt.Printf("total long notes: %v\n", totalLong)
	if r.numCharts > 0 {
		fmt.Printf("avg notes per chart: %v\n", totalNotes/uint64(r.numCharts))
		fmt.Printf("densest chart: %v (%v notes)\n", r.maxNotesRef, r.maxNotes)
	}
}
