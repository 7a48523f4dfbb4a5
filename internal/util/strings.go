// Package util provides shared utility functions used across the codebase.
package util

// TruncateHead truncates a string to maxLen runes, keeping the tail and
// prefixing "..." if truncated. Used for relative subpaths where the deepest
// path segments carry the information.
func TruncateHead(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return "..." + string(runes[len(runes)-(maxLen-3):])
}
