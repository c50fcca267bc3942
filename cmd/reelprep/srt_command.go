package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelprep/internal/logging"
	"reelprep/internal/project"
	"reelprep/internal/subtitles"
)

func newSRTCommand(ctx *commandContext) *cobra.Command {
	var maxWords int
	var outputPath string
	var probe bool

	cmd := &cobra.Command{
		Use:   "srt <project-folder>",
		Short: "Generate an SRT subtitle file from narration timing and script text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = sess.close() }()
			if cmd.Flags().Changed("max-words") && maxWords <= 0 {
				return fmt.Errorf("--max-words must be positive")
			}
			limit := sess.cfg.Subtitles.MaxWords
			if maxWords > 0 {
				limit = maxWords
			}

			out := newPrinter(cmd.OutOrStdout())
			out.section("Generate subtitles")
			out.status("project", statusInfo, args[0])
			out.status("max words", statusInfo, fmt.Sprintf("%d", limit))

			var prober subtitles.DurationProber
			if probe {
				prober = sess.prober()
			}
			svc := subtitles.NewService(sess.cfg, sess.logger, prober)

			return withProjectLock(args[0], func(p *project.Project) error {
				sess.logger.Debug("generating subtitles", logging.String(logging.FieldProject, p.Root))
				res, err := svc.Generate(sess.ctx, subtitles.GenerateRequest{
					Project:    p,
					MaxWords:   limit,
					OutputPath: strings.TrimSpace(outputPath),
					ProbeAudio: probe,
				})
				if err != nil {
					return err
				}

				if len(res.SplitScenes) > 0 {
					rows := make([][]string, 0, len(res.SplitScenes))
					for _, split := range res.SplitScenes {
						rows = append(rows, []string{
							fmt.Sprintf("%d", split.Scene),
							fmt.Sprintf("%d", split.Segments),
							fmt.Sprintf("%d", split.Words),
						})
					}
					out.blank()
					out.line("%s", renderTable([]string{"Scene", "Segments", "Words"}, rows,
						[]columnAlignment{alignRight, alignRight, alignRight}, 0))
				}
				out.warnings(res.Warnings)
				out.blank()
				out.status("srt file", statusOK, res.OutputPath)
				out.status("subtitle entries", statusInfo, fmt.Sprintf("%d", res.CueCount))
				out.status("scenes with splits", statusInfo, fmt.Sprintf("%d", len(res.SplitScenes)))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&maxWords, "max-words", "m", 0, "Maximum words per subtitle cue (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output SRT path (default <project>/subtitles.srt)")
	cmd.Flags().BoolVar(&probe, "probe", false, "Measure audio files instead of reading audio/audio_metadata.json")
	return cmd
}
