package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"linkconv/internal/logger"
	"linkconv/internal/translator"
	"linkconv/internal/xconf"
)

var batchFull bool

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Translate every share link found in a file or on stdin",
	Long: `Reads free text (or a base64 subscription payload), extracts all
share links, and translates them. Invalid links are logged and skipped;
the valid outbounds are printed as a JSON array in input order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		text, err := readInput(args)
		if err != nil {
			return err
		}

		links := translator.ExtractLinks(text)
		if len(links) == 0 {
			return fmt.Errorf("no share links found in input")
		}

		bar := progressbar.NewOptions(len(links),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan]Translating...[reset]"),
			progressbar.OptionSetWriter(os.Stderr),
		)

		outs := translator.TranslateManyN(links, cfg.Batch.Workers, func() {
			_ = bar.Add(1)
		})
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)

		logger.Get().Infof("translated %d/%d links", len(outs), len(links))
		if len(outs) == 0 {
			return fmt.Errorf("no links could be translated")
		}

		var data []byte
		if batchFull {
			docs := make([]string, 0, len(outs))
			for _, out := range outs {
				doc, err := translator.ToDocument(out, translator.DocumentOptions{
					Listen: cfg.Inbound.Listen,
					Port:   cfg.Inbound.Port,
					Indent: cfg.Output.Indent,
				})
				if err != nil {
					return err
				}
				docs = append(docs, string(doc))
			}
			for _, d := range docs {
				fmt.Println(d)
			}
			return nil
		}

		data, err = xconf.Marshal(outs, cfg.Output.Indent)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	batchCmd.Flags().BoolVar(&batchFull, "full", false, "Print one full config document per link instead of an outbound array")
	rootCmd.AddCommand(batchCmd)
}
