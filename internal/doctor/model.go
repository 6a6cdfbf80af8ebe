// Package doctor implements the environment health checks behind the doctor
// command.
package doctor

// Status classifies a check result.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something suboptimal but not fatal.
	StatusWarn
	// StatusFail means the check found a problem requiring attention.
	StatusFail
)

// Result is a single check finding.
type Result struct {
	Status    Status
	CheckName string
	Message   string
	// Recommendation suggests a fix. Empty when nothing needs doing.
	Recommendation string
}

// AnyFailed reports whether any result carries StatusFail.
func AnyFailed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}
