package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExtractionError reports that frame sampling failed for a video. The file
// is skipped for comparison purposes; the run continues.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract frame from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Screenshot renders a single frame of videoPath at the given offset to
// outputPath as a JPEG, preserving the source aspect ratio.
func Screenshot(ctx context.Context, binary, videoPath, outputPath string, offsetSeconds int) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if strings.TrimSpace(videoPath) == "" {
		return &ExtractionError{Path: videoPath, Err: errors.New("empty video path")}
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-ss", FormatOffset(offsetSeconds),
		"-i", videoPath,
		"-vf", "scale=iw*sar:ih",
		"-vframes", "1",
		"-q:v", "3",
		"-y",
		outputPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			err = fmt.Errorf("%w: %s", err, detail)
		}
		return &ExtractionError{Path: videoPath, Err: err}
	}
	return nil
}

// FormatOffset renders a second offset in the HH:MM:SS form ffmpeg expects.
func FormatOffset(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
