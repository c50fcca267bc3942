package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reelprep/internal/logging"
	"reelprep/internal/project"
	"reelprep/internal/verify"
)

const promptPreviewLength = 100

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var noOutput bool
	var reportPath string

	cmd := &cobra.Command{
		Use:   "verify <project-folder>",
		Short: "Check that every image the script expects exists",
		Long:  "Check that every image the script expects exists. Exits with status 1 when any image is missing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.newSession(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = sess.close() }()
			p, err := project.Open(args[0])
			if err != nil {
				return err
			}
			res, err := verify.Verify(p, sess.cfg.Images.Format)
			if err != nil {
				return err
			}
			logging.NewComponentLogger(sess.logger, "verify").Info("images verified",
				logging.String(logging.FieldProject, p.Root),
				logging.Int("expected", res.ExpectedCount),
				logging.Int("actual", res.ActualCount),
				logging.Bool("complete", res.AllComplete),
			)

			if jsonOutput {
				if err := writeJSON(cmd, res); err != nil {
					return err
				}
				if !res.AllComplete {
					return errIncomplete
				}
				return nil
			}

			out := newPrinter(cmd.OutOrStdout())
			printVerifyReport(out, p.Root, res)
			if res.AllComplete {
				return nil
			}
			if !noOutput {
				target := strings.TrimSpace(reportPath)
				if target == "" {
					target = verify.DefaultReportPath(p.Root)
				}
				release, err := p.Lock()
				if err != nil {
					return err
				}
				defer func() { _ = release() }()
				if err := verify.SaveReport(target, verify.NewReport(res, p.Root, time.Now())); err != nil {
					return fmt.Errorf("save missing image report: %w", err)
				}
				out.blank()
				out.status("report", statusOK, target)
				out.line("%sUse this file to regenerate only the missing images.", statusIndent)
			}
			return errIncomplete
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Print the result as JSON instead of a report")
	cmd.Flags().BoolVar(&noOutput, "no-output", false, "Do not write missing_images.json")
	cmd.Flags().StringVar(&reportPath, "output", "", "Path for the missing image report (default <project>/missing_images.json)")
	return cmd
}

func printVerifyReport(out *printer, root string, res verify.Result) {
	out.section("Verify images")
	out.status("project", statusInfo, root)
	out.status("expected images", statusInfo, fmt.Sprintf("%d", res.ExpectedCount))
	out.status("found images", statusInfo, fmt.Sprintf("%d", res.ActualCount))
	out.blank()

	if res.AllComplete {
		out.status("images", statusOK, "all images generated")
		return
	}

	rows := make([][]string, 0, len(res.Missing))
	for _, m := range res.Missing {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Index),
			strings.Join(m.MissingFiles, ", "),
			m.Script,
			truncate(m.Prompt, promptPreviewLength),
		})
	}
	out.line("%s", renderTable([]string{"Index", "Missing files", "Script", "Prompt"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}, 48))
	out.blank()
	out.status("missing", statusWarn, fmt.Sprintf("%d images from %d prompts", res.MissingCount(), len(res.Missing)))
}
