// Package ffprobe wraps the ffprobe command line tool for reading video
// metadata.
package ffprobe
