package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ParseJob.
var FileTypes = []string{"PDF"}

// AllowedExtensions holds the default allowed file extensions for statement ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a ParseJob format, or "" if
// the extension is not supported.
func MapExtToFormat(ext string) string {
	if _, ok := AllowedExtensions[NormalizeExt(ext)]; ok {
		return "PDF"
	}
	return ""
}
