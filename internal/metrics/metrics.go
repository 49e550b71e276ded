/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metrics defines the Prometheus collectors of coredata.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Results of a kind load.
const (
	ResultLoaded  = "loaded"
	ResultSkipped = "skipped"
	ResultUnknown = "unknown"
	ResultError   = "error"
	ResultWritten = "written"
)

// Metrics holds the collectors.
type Metrics struct {
	KindLoads     *prometheus.CounterVec
	PersistWrites *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		KindLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coredata_kind_loads_total",
				Help: "Entity kind load attempts by kind and result.",
			},
			[]string{"kind", "result"},
		),
		PersistWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coredata_persist_writes_total",
				Help: "Writes of persisted state slices by storage key and result.",
			},
			[]string{"storage_key", "result"},
		),
	}
	reg.MustRegister(m.KindLoads, m.PersistWrites)
	return m
}

// KindLoad counts one load attempt of kind.
func (m *Metrics) KindLoad(kind, result string) {
	if m == nil {
		return
	}
	m.KindLoads.WithLabelValues(kind, result).Inc()
}

// PersistWrite counts one persistence write for storageKey.
func (m *Metrics) PersistWrite(storageKey string, err error) {
	if m == nil {
		return
	}
	result := ResultWritten
	if err != nil {
		result = ResultError
	}
	m.PersistWrites.WithLabelValues(storageKey, result).Inc()
}
