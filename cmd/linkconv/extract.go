package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"linkconv/internal/translator"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Print the share links found in a file or on stdin, one per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		for _, link := range translator.ExtractLinks(text) {
			fmt.Println(link)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
