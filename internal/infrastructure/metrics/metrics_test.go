package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTagCounters(t *testing.T) {
	before := testutil.ToFloat64(tagCountUpdates.WithLabelValues("increment"))
	AddTagCountUpdates("increment", 3)
	AddTagCountUpdates("increment", 0)
	assert.Equal(t, before+3, testutil.ToFloat64(tagCountUpdates.WithLabelValues("increment")))

	warnBefore := testutil.ToFloat64(tagIntegrityWarnings)
	IncCountIntegrityWarning()
	assert.Equal(t, warnBefore+1, testutil.ToFloat64(tagIntegrityWarnings))
}

func TestCacheCounters(t *testing.T) {
	before := testutil.ToFloat64(cacheLookups.WithLabelValues("tag_list", "hit"))
	IncTagListHit()
	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookups.WithLabelValues("tag_list", "hit")))
}
