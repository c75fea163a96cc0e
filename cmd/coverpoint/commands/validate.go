package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
)

// ValidateCommand holds flags for the validate command.
type ValidateCommand struct {
	quiet   bool
	noColor bool
}

// NewValidateCommand creates the validate command: check feeds against
// the embedded match schema without replaying them.
func NewValidateCommand() *cobra.Command {
	validate := &ValidateCommand{}

	cmd := &cobra.Command{
		Use:   "validate <match.json> [match.json ...]",
		Short: "Check match feeds against the schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validate.run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&validate.quiet, "quiet", "q", false, "suppress per-feed success output")
	cmd.Flags().BoolVar(&validate.noColor, "no-color", false, "disable colored output")

	return cmd
}

func (vc *ValidateCommand) run(cmd *cobra.Command, paths []string) error {
	colorize := !vc.noColor
	out := cmd.OutOrStdout()

	var failures int

	for _, path := range paths {
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			failures++

			fmt.Fprintln(out, paint(colorize, color.FgRed, fmt.Sprintf("%s: %v", path, readErr)))

			continue
		}

		validateErr := cricsheet.Validate(raw)
		if validateErr != nil {
			failures++

			fmt.Fprintln(out, paint(colorize, color.FgRed, fmt.Sprintf("%s: invalid", path)))
			fmt.Fprintf(out, "  %v\n", validateErr)

			continue
		}

		if !vc.quiet {
			fmt.Fprintln(out, paint(colorize, color.FgGreen, path+": valid"))
		}
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrValidationFailures, failures, len(paths))
	}

	return nil
}
