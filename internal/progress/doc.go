// Package progress provides console status reporting for fetches.
//
// This package outputs human-readable status lines to stdout, each prefixed
// with a symbolic marker, plus helpers for formatting and parsing byte sizes.
//
// # Usage
//
//	reporter := progress.NewReporter(os.Stdout)
//
//	reporter.Readyf("Directory %q is ready", dir)
//	reporter.Warnf("URL doesn't appear to point to an image file")
//	reporter.Errorf("Connection error: unable to reach the server")
//	reporter.Successf("Saved: %s (%s)", name, progress.FormatBytes(size))
//
// # Output Format
//
//	✓ Directory "Fetched_Images" is ready
//	Connecting to: https://example.com/photo.jpg
//	⚠ Warning: server response doesn't appear to be an image
//	✅ Saved: photo.jpg (1.24 MB)
//
// A nil *Reporter is valid; all methods become no-ops.
package progress
