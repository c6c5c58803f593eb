// Package media decodes still images and carries the metadata shapes shared
// by the image and video pipelines. Subpackages wrap the external ffmpeg and
// ffprobe tools.
package media
