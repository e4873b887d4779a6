package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bmsdex",
	Short: "BMS chart note toolkit",
	Long:  `Indexes, inspects, serves and exports BMS charts as normalized note data.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
