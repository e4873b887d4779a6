package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mugabe/bmsdex/chart"
	"github.com/mugabe/bmsdex/file"
	"github.com/mugabe/bmsdex/model"
	"github.com/mugabe/bmsdex/note"
	"github.com/mugabe/bmsdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Creates the chart catalog",
	Long:  `Walks the media dir, decodes every chart and writes the catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		Index(maxNum)
	},
}

func processChartFile(path string) (model.CatalogEntry, error) {
	var entry model.CatalogEntry

	c, err := chart.ReadChartFile(path)
	if err != nil {
		return entry, err
	}
	ns, err := note.FromChart(c, nil)
	if err != nil {
		return entry, err
	}

	entry.Id = uuid.New().String()
	entry.Path = path
	entry.Song = c.SongInfo()
	for _, n := range ns.All() {
		entry.NumNotes++
		if n.EndBeat != nil {
			entry.NumLong++
		}
	}
	return entry, nil
}

func Index(maxNum int) {
	util.RecreateIndexDir()
	paths := util.GatherAllChartPaths(util.GetMediaDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)

	var catalog model.Catalog
	keys := util.GetKeys(fileNumMap)
	for i, num := range keys {
		fmt.Printf("Processing %v of %v charts\n", i+1, len(keys))
		entry, err := processChartFile(fileNumMap[num])
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", fileNumMap[num], err)
			catalog.NumFailed++
			continue
		}
		catalog.Entries = append(catalog.Entries, entry)
	}

	util.CreateBinary(util.GetCatalogPath(), catalog)
}
