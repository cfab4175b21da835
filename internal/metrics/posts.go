package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NamePostReads              = "post_reads_total"
	NamePostWrites             = "post_writes_total"
	NamePostValidationFailures = "post_validation_failures_total"
	LabelOperation             = "operation"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

var PostReads = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NamePostReads,
		Help:      "Total rendered post reads",
		Namespace: Namespace,
	},
)

var PostWrites = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NamePostWrites,
		Help:      "Total successful post writes",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)

var PostValidationFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NamePostValidationFailures,
		Help:      "Total rejected post submissions",
		Namespace: Namespace,
	},
)
