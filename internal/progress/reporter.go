package progress

import (
	"fmt"
	"io"
	"os"
)

// Status markers prefixed to console output lines.
const (
	markerReady   = "✓"
	markerWarn    = "⚠"
	markerError   = "✗"
	markerSuccess = "✅"
)

// Reporter outputs marker-prefixed status lines.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out. A nil out defaults to
// os.Stdout.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out}
}

// Readyf reports that a precondition is satisfied.
func (r *Reporter) Readyf(format string, args ...any) {
	r.printf(markerReady, format, args...)
}

// Warnf reports a non-fatal condition; the workflow continues.
func (r *Reporter) Warnf(format string, args ...any) {
	r.printf(markerWarn, format, args...)
}

// Errorf reports a terminal failure.
func (r *Reporter) Errorf(format string, args ...any) {
	r.printf(markerError, format, args...)
}

// Successf reports a completed operation.
func (r *Reporter) Successf(format string, args ...any) {
	r.printf(markerSuccess, format, args...)
}

// Infof reports a neutral status line with no marker.
func (r *Reporter) Infof(format string, args ...any) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Reporter) printf(marker, format string, args ...any) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.out, marker+" "+format+"\n", args...)
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case b >= TB:
		return fmt.Sprintf("%.2f TB", float64(b)/float64(TB))
	case b >= GB:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(GB))
	case b >= MB:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(MB))
	case b >= KB:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(KB))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// FormatBytes is exported for use by other packages.
func FormatBytes(b int64) string {
	return formatBytes(b)
}

// ParseBytes parses a human-readable byte string (e.g., "8KB").
func ParseBytes(s string) (int64, error) {
	var multiplier int64 = 1
	s = trimSuffix(s, " ")

	switch {
	case hasSuffix(s, "TB"):
		multiplier = 1024 * 1024 * 1024 * 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "GB"):
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "MB"):
		multiplier = 1024 * 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "KB"):
		multiplier = 1024
		s = s[:len(s)-2]
	case hasSuffix(s, "B"):
		s = s[:len(s)-1]
	}

	var value float64
	_, err := fmt.Sscanf(s, "%f", &value)
	if err != nil {
		return 0, fmt.Errorf("invalid byte string: %s", s)
	}

	return int64(value * float64(multiplier)), nil
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func trimSuffix(s, suffix string) string {
	for hasSuffix(s, suffix) {
		s = s[:len(s)-len(suffix)]
	}
	return s
}
