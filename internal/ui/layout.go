package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the bars drop hints.
	LayoutCompactWidth = 100
)

// Screen regions, in lines.
const (
	headerLines = 2
	footerLines = 1
)

// Log display limits.
const (
	// LogTailLines is how many log lines the Log tab reads.
	LogTailLines = 300
)

// Timing constants.
const (
	// FetchTimeout bounds every drill-down request.
	FetchTimeout = 10 * time.Second

	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)

// bodyHeight is the number of lines left for documents.
func bodyHeight(height int) int {
	return max(1, height-headerLines-footerLines)
}
