package overlap

import (
	"path/filepath"
	"strings"
)

// ExportPrefix is the directory prefix Letterboxd uses for export folders.
const ExportPrefix = "letterboxd-"

// DisplayName derives a label from an export location, e.g.
// "/tmp/letterboxd-jane-doe-2024" becomes "jane doe 2024".
func DisplayName(location string) string {
	base := filepath.Base(location)
	base = strings.TrimPrefix(base, ExportPrefix)
	return strings.ReplaceAll(base, "-", " ")
}
