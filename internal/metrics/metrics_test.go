/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.KindLoad("postType", ResultLoaded)
	m.KindLoad("postType", ResultLoaded)
	m.KindLoad("comment", ResultUnknown)
	m.PersistWrite("prefs", nil)
	m.PersistWrite("prefs", errors.New("quota"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.KindLoads.WithLabelValues("postType", ResultLoaded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KindLoads.WithLabelValues("comment", ResultUnknown)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistWrites.WithLabelValues("prefs", ResultWritten)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistWrites.WithLabelValues("prefs", ResultError)))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.KindLoad("postType", ResultLoaded)
		m.PersistWrite("prefs", nil)
	})
}
