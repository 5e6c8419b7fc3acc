package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drivec/internal/diag"
	"drivec/internal/diagfmt"
	"drivec/internal/emit"
	"drivec/internal/lexer"
	"drivec/internal/parser"
	"drivec/internal/source"
	"drivec/internal/symbols"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.drv",
	Short: "Parse a driver DSL source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|source)")
	parseCmd.Flags().StringToString("config", nil, "placeholder values (name=expansion)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	config, err := cmd.Flags().GetStringToString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(fs, fs.Get(fileID), lexer.Options{
		Placeholders: config,
		Reporter:     reporter,
	})
	tokens := lx.Collect()

	p := parser.New(tokens, symbols.NewTable(), parser.Options{Reporter: reporter})
	nodes := p.Parse()

	if bag.HasErrors() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "tree":
		diagfmt.FormatNodeTree(os.Stdout, nodes, useColor(cmd, os.Stdout))
	case "source":
		printer := emit.NewPrinter(os.Stdout)
		for _, n := range nodes {
			n.Accept(printer)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		return fmt.Errorf("parsing failed")
	}
	return nil
}
