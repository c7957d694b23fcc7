// leap-table-tool transcodes leap second catalogs between the binary proto,
// text proto, and JSON encodings, and can dump the constructed leap table
// for inspection.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/holoplot/go-smear/internal/leaptool"
)

var (
	inputFormat  = leaptool.FormatTextProto
	outputFormat = leaptool.FormatProto
)

// runError marks failures that happen after flag handling, so that usage
// errors and runtime errors can exit with different codes.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "leap-table-tool FILENAME",
	Short: "Convert leap second catalogs between formats",
	Long: `leap-table-tool reads a leap second catalog file and writes it to standard
output in the selected format.

The --output=debug form validates the catalog, constructs the full leap
table, and prints its debug description.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Var(&inputFormat, "input", "input format (proto or textproto)")
	rootCmd.Flags().Var(&outputFormat, "output", "output format (proto, textproto, json, or debug)")
}

func run(cmd *cobra.Command, args []string) error {
	if inputFormat != leaptool.FormatProto && inputFormat != leaptool.FormatTextProto {
		return fmt.Errorf("--input=%s is not supported", inputFormat.String())
	}

	pb, err := leaptool.ReadCatalog(args[0], inputFormat)
	if err != nil {
		return &runError{err}
	}
	if err := leaptool.WriteCatalog(cmd.OutOrStdout(), pb, outputFormat); err != nil {
		return &runError{err}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("leap-table-tool failed", "error", err)

		var rerr *runError
		if errors.As(err, &rerr) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
