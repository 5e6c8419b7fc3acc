package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drivec/internal/diag"
	"drivec/internal/diagfmt"
	"drivec/internal/lexer"
	"drivec/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.drv",
	Short: "Tokenize a driver DSL source file",
	Long:  `Tokenize breaks down a driver DSL source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().StringToString("config", nil, "placeholder values (name=expansion)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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
	lx := lexer.New(fs, fs.Get(fileID), lexer.Options{
		Placeholders: config,
		Reporter:     diag.BagReporter{Bag: bag},
	})
	tokens := lx.Collect()

	if bag.HasErrors() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, tokens, fs); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		return fmt.Errorf("tokenization failed")
	}
	return nil
}
