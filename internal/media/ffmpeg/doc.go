// Package ffmpeg wraps the ffmpeg command line tool for sampling still
// frames out of video files.
package ffmpeg
