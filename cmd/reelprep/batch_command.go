package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelprep/internal/batch"
	"reelprep/internal/project"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "batch <project-folder>",
		Short: "Prepare images_batch.json and audios_batch.json for the video editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = sess.close() }()
			out := newPrinter(cmd.OutOrStdout())
			builder := batch.NewBuilder(sess.cfg, sess.prober(), sess.logger)

			return withProjectLock(args[0], func(p *project.Project) error {
				out.section("Prepare batch data")
				out.status("project", statusInfo, p.Root)

				res, err := builder.Prepare(sess.ctx, p)
				if err != nil {
					return err
				}

				stats := res.Stats
				out.blank()
				out.line("%s", renderTable(
					[]string{"Scenes", "Images", "Audios", "Seconds", "Minutes"},
					[][]string{{
						fmt.Sprintf("%d", stats.TotalScenes),
						fmt.Sprintf("%d", stats.TotalImages),
						fmt.Sprintf("%d", stats.TotalAudios),
						fmt.Sprintf("%.2f", stats.TotalDurationSeconds),
						fmt.Sprintf("%.2f", stats.TotalDurationMinutes),
					}},
					[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight}, 0,
				))
				out.warnings(res.Warnings)

				dir := strings.TrimSpace(outputDir)
				if dir == "" {
					dir = p.Root
				}
				paths, err := batch.Write(dir, res)
				if err != nil {
					return err
				}
				out.blank()
				out.status("images batch", statusOK, paths.Images)
				out.status("audios batch", statusOK, paths.Audios)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the batch files (default: project folder)")
	return cmd
}
