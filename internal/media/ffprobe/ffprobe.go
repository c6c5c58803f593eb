package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// VideoInfo is the subset of container metadata the duplicate finder needs.
type VideoInfo struct {
	Width           int
	Height          int
	DurationSeconds float64
	SizeBytes       int64
	FPS             int
	Codec           string
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	CodecName    string `json:"codec_name"`
}

type probeFormat struct {
	Duration string `json:"duration"`
	Size     string `json:"size"`
}

// Inspect executes ffprobe against the provided path and extracts the video
// stream and container metadata.
func Inspect(ctx context.Context, binary string, path string) (VideoInfo, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return VideoInfo{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-show_entries", "format=duration,size",
		"-show_entries", "stream=width,height,avg_frame_rate,codec_name",
		"-select_streams", "v:0",
		"-of", "json",
		"--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return VideoInfo{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var parsed probeOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return VideoInfo{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	if len(parsed.Streams) == 0 {
		return VideoInfo{}, fmt.Errorf("ffprobe inspect: no video stream in %s", path)
	}

	stream := parsed.Streams[0]
	return VideoInfo{
		Width:           stream.Width,
		Height:          stream.Height,
		DurationSeconds: parseFloat(parsed.Format.Duration),
		SizeBytes:       parseSize(parsed.Format.Size),
		FPS:             parseFrameRate(stream.AvgFrameRate),
		Codec:           stream.CodecName,
	}, nil
}

// parseFrameRate converts ffprobe's fractional frame rate ("30000/1001")
// into a rounded integer, 0 when the rate is absent or degenerate.
func parseFrameRate(value string) int {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 2 {
		return 0
	}
	num, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	den, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || den == 0 {
		return 0
	}
	return int(math.Round(num / den))
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseSize(value string) int64 {
	size := parseFloat(value)
	if size < 0 {
		return 0
	}
	return int64(size)
}
