package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/birchgrove/tfbump/internal/doctor"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
	"github.com/birchgrove/tfbump/internal/update"
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, err := expandTargetPath(opts.path)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)

			results := []doctor.Result{
				doctor.CheckTarget(root),
				doctor.CheckTerraform(terraform.ExecRunner{}),
				doctor.CheckConfig(root),
				updateCheckResult(cmd),
			}

			for _, r := range results {
				printResult(out, r)
			}

			if doctor.AnyFailed(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// updateCheckResult performs the latest-release check, honoring the offline
// switch.
func updateCheckResult(cmd *cobra.Command) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameUpdate}
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, update.EnvNoNetwork)
		result.Recommendation = fmt.Sprintf(messages.DoctorUpdateSkippedRecommendFmt, update.EnvNoNetwork)
		return result
	}

	check, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
		result.Recommendation = messages.DoctorUpdateFailedRecommend
	case check.CurrentIsDev:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, check.Latest)
	case check.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, check.Latest, check.Current)
		result.Recommendation = messages.DoctorUpdateAvailableRecommend
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, check.Current)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
