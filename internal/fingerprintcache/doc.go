// Package fingerprintcache stores computed fingerprints in a SQLite database
// so repeat scans only hash files that changed on disk.
package fingerprintcache
