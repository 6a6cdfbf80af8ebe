// Package update checks the latest published release against the running
// build. The check is best-effort: callers degrade to a warning when it
// cannot be completed.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/birchgrove/tfbump/internal/messages"
	"github.com/birchgrove/tfbump/internal/version"
)

// Repo identifies the GitHub repository used for release checks.
const Repo = "birchgrove/tfbump"

// ReleasesBaseURL is the base URL for release downloads.
const ReleasesBaseURL = "https://github.com/" + Repo + "/releases"

// EnvNoNetwork disables release checks entirely when set to a non-empty value.
const EnvNoNetwork = "TFBUMP_NO_NETWORK"

var latestReleaseURL = "https://api.github.com/repos/" + Repo + "/releases/latest"
var httpClient = &http.Client{Timeout: 10 * time.Second}

// RateLimitError indicates GitHub's API rate limit was hit while checking for updates.
//
// Callers should generally treat this as a best-effort failure and suppress/minimize output.
type RateLimitError struct {
	StatusCode int
	Status     string
	Remaining  *int
}

func (e *RateLimitError) Error() string {
	remainingText := "unknown"
	if e.Remaining != nil {
		remainingText = fmt.Sprintf("%d", *e.Remaining)
	}
	return fmt.Sprintf("github api rate limit exceeded (%s, remaining=%s)", e.Status, remainingText)
}

// IsRateLimitError reports whether err represents a GitHub API rate-limit condition.
func IsRateLimitError(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// CheckResult captures the latest release check outcome.
type CheckResult struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Check fetches the latest release and compares it to the currentVersion.
// It returns the normalized versions along with an outdated flag. Dev builds
// are never reported outdated.
func Check(ctx context.Context, currentVersion string) (CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	current, isDev, err := normalizeCurrentVersion(currentVersion)
	if err != nil {
		return CheckResult{}, err
	}

	latest, err := fetchLatestReleaseVersion(ctx)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{
		Current:      current,
		Latest:       latest,
		CurrentIsDev: isDev,
	}
	if !isDev {
		currentVer, err := goversion.NewVersion(current)
		if err != nil {
			return CheckResult{}, fmt.Errorf(messages.UpdateInvalidCurrentVersionFmt, current, err)
		}
		latestVer, err := goversion.NewVersion(latest)
		if err != nil {
			return CheckResult{}, fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, latest, err)
		}
		result.Outdated = currentVer.LessThan(latestVer)
	}
	return result, nil
}

type latestReleaseResponse struct {
	TagName string `json:"tag_name"`
}

// fetchLatestReleaseVersion returns the normalized latest release tag.
func fetchLatestReleaseVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateCreateRequestErrFmt, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "tfbump")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateFetchLatestReleaseErrFmt, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		if rateLimitErr := rateLimitErrorFromResponse(resp); rateLimitErr != nil {
			return "", rateLimitErr
		}
		return "", fmt.Errorf(messages.UpdateFetchLatestReleaseStatusFmt, resp.Status)
	}

	var payload latestReleaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf(messages.UpdateDecodeLatestReleaseErrFmt, err)
	}
	if strings.TrimSpace(payload.TagName) == "" {
		return "", fmt.Errorf(messages.UpdateLatestReleaseMissingTag)
	}
	normalized, err := version.Normalize(payload.TagName)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, payload.TagName, err)
	}
	return normalized, nil
}

func rateLimitErrorFromResponse(resp *http.Response) *RateLimitError {
	if resp == nil {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// GitHub returns 403 Forbidden for unauthenticated exhaustion; confirm with rate-limit headers.
	if resp.StatusCode == http.StatusForbidden {
		remainingStr := strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining"))
		if remainingStr == "" {
			return nil
		}
		remaining, err := strconv.Atoi(remainingStr)
		if err != nil {
			return nil //nolint:nilerr // Malformed header means we cannot confirm rate limiting; fall through to generic error.
		}
		if remaining == 0 {
			return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status, Remaining: &remaining}
		}
	}
	return nil
}

// normalizeCurrentVersion validates the current version and reports dev builds.
func normalizeCurrentVersion(raw string) (string, bool, error) {
	if version.IsDev(raw) {
		return "dev", true, nil
	}
	normalized, err := version.Normalize(raw)
	if err != nil {
		return "", false, fmt.Errorf(messages.UpdateInvalidCurrentVersionFmt, raw, err)
	}
	return normalized, false, nil
}
