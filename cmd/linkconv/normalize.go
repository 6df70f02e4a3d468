package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"linkconv/internal/translator"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Re-emit every valid link in canonical form, dropping duplicates",
	Long: `Parses the links found in a file or on stdin and prints them back in
canonical form, one per line. Links that describe the same server are
emitted once, invalid links are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		for _, link := range translator.NormalizeLinks(translator.ExtractLinks(text)) {
			fmt.Println(link)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
