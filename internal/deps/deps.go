// Package deps checks the external binaries video scanning shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"finddup/internal/config"
)

// Requirement defines an external binary finddup relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// VideoRequirements returns the binaries the videos command needs, with the
// configured overrides applied.
func VideoRequirements(cfg *config.Config) []Requirement {
	ffmpeg := strings.TrimSpace(cfg.Video.FFmpegBinary)
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	ffprobe := strings.TrimSpace(cfg.Video.FFprobeBinary)
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	return []Requirement{
		{Name: "FFmpeg", Command: ffmpeg, Description: "Samples video frames"},
		{Name: "FFprobe", Command: ffprobe, Description: "Reads video metadata"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Missing returns an error naming every unavailable requirement, or nil when
// all are present.
func Missing(statuses []Status) error {
	var missing []string
	for _, status := range statuses {
		if !status.Available {
			missing = append(missing, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required binaries: %s", strings.Join(missing, ", "))
}
