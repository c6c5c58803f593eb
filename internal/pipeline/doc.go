// Package pipeline fans media files out over a worker pool to produce
// fingerprinted items for the grouping engine, with an optional persistent
// cache and terminal progress bars.
package pipeline
