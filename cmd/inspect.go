package cmd

import (
	"fmt"
	"strings"

	"github.com/mugabe/bmsdex/chart"
	"github.com/mugabe/bmsdex/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a chart",
	Long:  `Decodes one chart file and prints its notes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	c, err := chart.ReadChartFile(path)
	if err != nil {
		panic("Could not read chart: " + err.Error())
	}
	ns, err := note.FromChart(c, nil)
	if err != nil {
		panic("Could not build notes: " + err.Error())
	}

	song := c.SongInfo()
	keysounds := c.Keysounds()
	fmt.Printf("title: %v\n", song.Title)
	fmt.Printf("artist: %v\n", song.Artist)
	fmt.Printf("genre: %v\n", song.Genre)
	fmt.Printf("bpm: %v\n", song.BPM)
	fmt.Printf("notes: %v\n", ns.Count())

	for _, n := range ns.All() {
		column := n.Column
		if column == "" {
			column = "BGM"
		}
		wav := keysounds[strings.ToLower(n.Keysound)]
		if n.EndBeat != nil {
			fmt.Printf("%8.3f..%-8.3f %-3v %v %v\n", n.Beat, *n.EndBeat, column, n.Keysound, wav)
		} else {
			fmt.Printf("%8.3f           %-3v %v %v\n", n.Beat, column, n.Keysound, wav)
		}
	}
}
