package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coverpoint/coverpoint/internal/engine"
	"github.com/coverpoint/coverpoint/pkg/persist"
)

// ExportCommand holds flags for the export command.
type ExportCommand struct {
	configPath   string
	registryPath string
	output       string
}

// NewExportCommand creates the export command: replay one feed and
// persist the full match state. The output extension picks the codec.
func NewExportCommand() *cobra.Command {
	export := &ExportCommand{}

	cmd := &cobra.Command{
		Use:   "export <match.json>",
		Short: "Replay one match and persist the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return export.run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&export.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVarP(&export.registryPath, "registry", "r", "", "player registry feed path")
	cmd.Flags().StringVarP(&export.output, "output", "o", "", `output file, "name.json" or "name.json.lz4"`)

	mustErr := cmd.MarkFlagRequired("output")
	if mustErr != nil {
		panic(mustErr)
	}

	return cmd
}

func (ec *ExportCommand) run(cmd *cobra.Command, path string) error {
	rt, err := loadRuntime(ec.configPath)
	if err != nil {
		return err
	}

	dir, basename, codec, err := splitOutput(ec.output)
	if err != nil {
		return err
	}

	job, err := rt.loadJob(path, ec.registryPath)
	if err != nil {
		return err
	}

	mat, err := engine.NewMatch(job.Data, job.Feed)
	if err != nil {
		return err
	}

	runErr := mat.Run()
	if runErr != nil {
		return runErr
	}

	saveErr := persist.SaveMatch(dir, basename, codec, mat)
	if saveErr != nil {
		return saveErr
	}

	target := filepath.Join(dir, basename+codec.Extension())

	info, statErr := os.Stat(target)
	if statErr != nil {
		return fmt.Errorf("stat output: %w", statErr)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", target, humanize.Bytes(uint64(info.Size())))

	return nil
}

// splitOutput derives the save directory, basename and codec from the
// output file name.
func splitOutput(output string) (string, string, persist.Codec, error) {
	dir := filepath.Dir(output)
	base := filepath.Base(output)

	var codec persist.Codec

	switch {
	case strings.HasSuffix(base, persist.NewLZ4Codec().Extension()):
		codec = persist.NewLZ4Codec()
	case strings.HasSuffix(base, persist.NewJSONCodec().Extension()):
		codec = persist.NewJSONCodec()
	default:
		return "", "", nil, fmt.Errorf("%w: %q", ErrBadOutputName, output)
	}

	return dir, strings.TrimSuffix(base, codec.Extension()), codec, nil
}
