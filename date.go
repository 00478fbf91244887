package md2html

import (
	"time"

	"github.com/alnah/go-md2html/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" resolves to the given time in YYYY-MM-DD format
//   - "auto:FORMAT" resolves using a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" resolves using a named preset (iso, european, us, long)
//   - any other value is returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
