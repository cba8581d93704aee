// Package logtail reads the tail of faceoff's own log file for the Log tab.
//
// # Reading
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// O(maxLines) no matter how large the file grows between rotations. A missing
// file yields no lines and no error; the log file only appears after the first
// write.
//
// # Parsing
//
// The logger in internal/logging writes one JSON object per line:
//
//	{"level":"INFO","timestamp":"2026-01-12T19:02:11.204-0500","caller":"app/poller.go:61","message":"poll complete","games":9}
//
// ParseLine splits the well-known keys into Entry fields and leaves the rest
// in Fields. Anything that is not JSON is returned as a bare message so a
// stray line never hides the rest of the log.
package logtail
