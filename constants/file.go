package constants

import "strings"

// FileFormat classifies an upload by the extraction path it takes.
type FileFormat string

const (
	PDF         FileFormat = "PDF"
	IMAGE       FileFormat = "IMAGE"
	SPREADSHEET FileFormat = "SPREADSHEET"
)

// AllowedExtensions holds the file extensions the pipeline accepts.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"xlsx": {},
	"xls":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat resolves a normalized extension to its file format.
// Returns "" for extensions the pipeline does not accept.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	case "xlsx", "xls":
		return SPREADSHEET
	default:
		return ""
	}
}
