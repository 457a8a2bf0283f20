// Package metrics provides observability for the entity stores using
// Prometheus collectors. Every store operation against the backing CSV
// files is counted, so drift between in-memory state and disk after a
// failed save stays visible.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreLoads counts full loads of a backing file.
	// Labels: store (record type name), status (success/failure)
	StoreLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_store_loads_total",
			Help: "Total number of store load operations",
		},
		[]string{"store", "status"},
	)

	// StoreSaves counts full rewrites of a backing file.
	// Labels: store, status (success/failure)
	StoreSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_store_saves_total",
			Help: "Total number of store save operations",
		},
		[]string{"store", "status"},
	)

	// StoreRecords tracks the current in-memory record count per store.
	StoreRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hms_store_records",
			Help: "Current number of records held by a store",
		},
		[]string{"store"},
	)

	// FieldScans counts linear find-by-field scans.
	// Labels: store, field
	FieldScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_store_field_scans_total",
			Help: "Total number of find-by-field scans",
		},
		[]string{"store", "field"},
	)

	// IDsAllocated counts identifiers handed out per prefix.
	IDsAllocated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hms_ids_allocated_total",
			Help: "Total number of identifiers allocated",
		},
		[]string{"prefix"},
	)
)
