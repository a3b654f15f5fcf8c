package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/skel/sketch/parser"
)

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand shorthand aliases and print the canonical notation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			text := strings.TrimRight(string(data), "\n")
			for _, line := range strings.Split(text, "\n") {
				fmt.Println(parser.ExpandAliases(line))
			}
			return nil
		},
	}
}
