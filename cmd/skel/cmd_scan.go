package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/skel/sketch"
	"github.com/dhamidi/skel/sketch/codebase"
)

func newScanCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Parse every .sketch file under a directory and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cb := codebase.New(dir)
			if err := cb.ScanAll(); err != nil {
				return fmt.Errorf("scan %s: %w", dir, err)
			}
			printSummary(cb)

			if !watch {
				return nil
			}

			watcher, err := codebase.NewFileWatcher(cb)
			if err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			watcher.Start()
			defer watcher.Stop()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep watching for changes until interrupted")

	return cmd
}

func printSummary(cb *codebase.Codebase) {
	for _, f := range cb.Files() {
		if f.ParseErr != nil {
			fmt.Printf("%s: %v\n", f.Path, f.ParseErr)
			continue
		}
		namespaces, types, members := countDeclarations(f.Model)
		fmt.Printf("%s: %d namespaces, %d types, %d members\n",
			f.Path, namespaces, types, members)
	}
}

func countDeclarations(file *sketch.File) (namespaces, types, members int) {
	namespaces = len(file.Namespaces)
	for _, ns := range file.Namespaces {
		types += len(ns.Classes) + len(ns.Enums) + len(ns.Interfaces)
		for _, c := range ns.Classes {
			members += len(c.Properties) + len(c.Methods)
		}
		for _, e := range ns.Enums {
			members += len(e.Properties)
		}
		for _, i := range ns.Interfaces {
			members += len(i.Properties) + len(i.Methods)
		}
	}
	return namespaces, types, members
}
