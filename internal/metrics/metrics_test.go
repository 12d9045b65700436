package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestURLCacheMetrics(t *testing.T) {
	// Metrics are package-level variables, these checks only verify the helpers

	t.Run("RecordLookup", func(t *testing.T) {
		before := testutil.ToFloat64(URLCacheLookups.WithLabelValues("hit"))
		RecordLookup("hit")
		assert.Equal(t, before+1, testutil.ToFloat64(URLCacheLookups.WithLabelValues("hit")))
	})

	t.Run("RecordRemovals", func(t *testing.T) {
		before := testutil.ToFloat64(URLCacheRemovals.WithLabelValues("capacity"))
		RecordRemovals("capacity", 3)
		RecordRemovals("capacity", 0)
		assert.Equal(t, before+3, testutil.ToFloat64(URLCacheRemovals.WithLabelValues("capacity")))
	})

	t.Run("UpdateEntries", func(t *testing.T) {
		UpdateEntries(42)
		assert.Equal(t, float64(42), testutil.ToFloat64(URLCacheEntries))
	})

	t.Run("RecordResolution", func(t *testing.T) {
		before := testutil.ToFloat64(URLResolutions.WithLabelValues("presign", "async"))
		RecordResolution("presign", "async")
		assert.Equal(t, before+1, testutil.ToFloat64(URLResolutions.WithLabelValues("presign", "async")))
	})

	t.Run("TimeResolve", func(t *testing.T) {
		// This should not panic
		timer := TimeResolve("presign")
		timer()
	})

	t.Run("RecordSharedStoreError", func(t *testing.T) {
		// This should not panic
		RecordSharedStoreError("get")
	})
}
