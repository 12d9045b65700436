package utils

import (
	"math"
	"strings"
	"time"
)

// IsDownloadURL reports whether s looks like an absolute http(s) URL.
// Resolvers that are offline or misconfigured tend to return ids, empty
// strings or error text; none of those may be cached.
func IsDownloadURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ObjectName builds the storage object name for a file variant.
// Variants live under their own directory: prefix/variant/fileID.
func ObjectName(prefix, fileID, variant string) string {
	parts := make([]string, 0, 3)
	if p := strings.Trim(prefix, "/"); p != "" {
		parts = append(parts, p)
	}
	if variant != "" {
		parts = append(parts, variant)
	}
	parts = append(parts, fileID)
	return strings.Join(parts, "/")
}

// maxDurationSeconds is the largest whole number of seconds a Duration holds
const maxDurationSeconds = int64(math.MaxInt64 / time.Second)

// SecondsToDuration converts an optional seconds value from a request
// into a duration. nil and non-positive values mean "use the default".
// Values past the Duration range saturate instead of wrapping.
func SecondsToDuration(seconds *int) time.Duration {
	if seconds == nil || *seconds <= 0 {
		return 0
	}
	return time.Duration(min(int64(*seconds), maxDurationSeconds)) * time.Second
}
