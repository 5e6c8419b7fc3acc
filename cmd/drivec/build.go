package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drivec/internal/compile"
	"drivec/internal/diagfmt"
	"drivec/internal/emit"
	"drivec/internal/specs"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] specs.toml",
	Short: "Compile a driver specification into C source",
	Long:  `Build reads a specification file, compiles every driver it names in dependency order, and emits a single C translation unit`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "out.c", "output file path")
	buildCmd.Flags().String("emit", "c", "what to emit (c|ast)")
	buildCmd.Flags().Bool("cache", false, "reuse cached output when the specification is unchanged")
}

func runBuild(cmd *cobra.Command, args []string) error {
	specsPath := args[0]

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	emitKind, err := cmd.Flags().GetString("emit")
	if err != nil {
		return fmt.Errorf("failed to get emit flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	specsFile, err := specs.Load(specsPath)
	if err != nil {
		return err
	}

	var cache *compile.DiskCache
	var fingerprint compile.Digest
	if useCache && emitKind == "c" {
		cache, err = compile.OpenDiskCache("drivec")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
		} else {
			fingerprint = compile.Fingerprint(specsFile)
			var cached compile.Payload
			if hit, err := cache.Get(fingerprint, &cached); err == nil && hit {
				return os.WriteFile(output, []byte(cached.Source), 0o644)
			}
		}
	}

	comp := compile.New(specsFile, maxDiagnostics)

	runErr := func() error {
		switch emitKind {
		case "c":
			gen := emit.NewCGenerator()
			if err := comp.Run(gen); err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(gen.Source()), 0o644); err != nil {
				return err
			}
			if cache != nil {
				if err := cache.Put(fingerprint, &compile.Payload{Source: gen.Source()}); err != nil {
					fmt.Fprintf(os.Stderr, "warning: cannot update disk cache: %v\n", err)
				}
			}
			return nil
		case "ast":
			nodes, err := comp.Process()
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			printer := emit.NewPrinter(f)
			for _, n := range nodes {
				n.Accept(printer)
			}
			return nil
		default:
			return fmt.Errorf("unknown emit kind: %s", emitKind)
		}
	}()

	if bag := comp.Bag(); bag.HasErrors() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, specsFile.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		})
	}

	return runErr
}
