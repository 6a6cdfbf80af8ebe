package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/birchgrove/tfbump/internal/config"
	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/terraform"
)

// CheckTarget verifies the target path exists and is a directory.
func CheckTarget(root string) Result {
	info, err := os.Stat(root)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        fmt.Sprintf(messages.DoctorTargetMissingFmt, root),
			Recommendation: messages.DoctorTargetMissingRecommend,
		}
	}
	if !info.IsDir() {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        fmt.Sprintf(messages.DoctorTargetNotDirFmt, root),
			Recommendation: messages.DoctorTargetNotDirRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTarget,
		Message:   fmt.Sprintf(messages.DoctorTargetOKFmt, root),
	}
}

// CheckTerraform verifies the terraform binary is reachable and reports its
// version line.
func CheckTerraform(runner terraform.Runner) Result {
	path, err := runner.LookPath()
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTerraform,
			Message:        messages.DoctorTerraformMissing,
			Recommendation: messages.DoctorTerraformMissingRecommend,
		}
	}
	ok, output := runner.Run(".", "version")
	if !ok {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameTerraform,
			Message:        fmt.Sprintf(messages.DoctorTerraformNoVersionFmt, path, firstLine(output)),
			Recommendation: messages.DoctorTerraformVersionRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTerraform,
		Message:   fmt.Sprintf(messages.DoctorTerraformFoundFmt, path, firstLine(output)),
	}
}

// CheckConfig reports whether the target's settings file loads. A missing
// file is healthy; the built-in defaults apply.
func CheckConfig(root string) Result {
	path := filepath.Join(root, config.FileName)
	_, found, err := config.Load(root)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, path, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}
	}
	if !found {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigDefaultsFmt, config.FileName),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
