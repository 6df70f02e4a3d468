package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"linkconv/internal/translator"
	"linkconv/internal/xconf"
)

var convertIndent int
var outboundOnly bool

var convertCmd = &cobra.Command{
	Use:   "convert <link>",
	Short: "Translate a single share link into a core config document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		indent := cfg.Output.Indent
		if cmd.Flags().Changed("indent") {
			indent = convertIndent
		}

		out, err := translator.Translate(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if outboundOnly {
			data, err = xconf.Marshal(out, indent)
		} else {
			data, err = translator.ToDocument(out, translator.DocumentOptions{
				Listen: cfg.Inbound.Listen,
				Port:   cfg.Inbound.Port,
				Indent: indent,
			})
		}
		if err != nil {
			return err
		}

		fmt.Println(string(data))
		return nil
	},
}

func init() {
	convertCmd.Flags().IntVar(&convertIndent, "indent", 2, "JSON indent width (0 = compact)")
	convertCmd.Flags().BoolVar(&outboundOnly, "outbound-only", false, "Print only the outbound object, not the full document")
	rootCmd.AddCommand(convertCmd)
}
