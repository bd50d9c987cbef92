package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueryRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodwaste_catalogue_queries_total",
		Help: "Catalogue query executions by query id and result.",
	}, []string{"query", "result"})

	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodwaste_mutations_total",
		Help: "Gateway writes by operation and result.",
	}, []string{"op", "result"})

	Loads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodwaste_loads_total",
		Help: "Bulk loads by result.",
	}, []string{"result"})

	LoadedRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "foodwaste_loaded_rows",
		Help: "Rows per table after the last successful load.",
	}, []string{"table"})
)

// Result labels an outcome for the counters above.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func Handler() http.Handler { return promhttp.Handler() }
