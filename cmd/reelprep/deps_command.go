package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelprep/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Report external programs reelprep can use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := deps.CheckBinaries(deps.AudioRequirements(cfg.Media.FFprobeBinary))

			out := newPrinter(cmd.OutOrStdout())
			out.section("Dependencies")
			for _, s := range statuses {
				switch {
				case s.Available:
					out.status(s.Name, statusOK, s.Path)
				case s.Optional:
					out.status(s.Name, statusWarn, fmt.Sprintf("%s (optional: %s)", s.Detail, s.Description))
				default:
					out.status(s.Name, statusError, s.Detail)
				}
			}
			out.status("mp3/flac/wav", statusOK, "built-in decoders")

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("%d required dependencies missing", len(missing))
			}
			return nil
		},
	}
}
