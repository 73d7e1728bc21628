package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/davidbz/sixteen/internal/domain"
)

var (
	SolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sixteen_solves_total",
			Help: "Total number of solve requests",
		},
		[]string{"model", "status"},
	)

	SolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sixteen_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sixteen_tokens_total",
			Help: "Total tokens billed, split by direction",
		},
		[]string{"model", "direction"},
	)

	CostTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sixteen_cost_usd_total",
			Help: "Total estimated spend in USD",
		},
		[]string{"model"},
	)
)

// RecordSolve records the outcome of one solve request.
func RecordSolve(model, status string, seconds float64) {
	SolvesTotal.WithLabelValues(model, status).Inc()
	SolveDuration.WithLabelValues(model).Observe(seconds)
}

// RecordUsage records billed tokens and estimated cost for one solve.
func RecordUsage(model string, usage *domain.Usage, cost *domain.CostBreakdown) {
	if usage != nil {
		TokensTotal.WithLabelValues(model, "input").Add(float64(usage.PromptTokens))
		TokensTotal.WithLabelValues(model, "output").Add(float64(usage.CompletionTokens))
	}
	if cost != nil {
		CostTotal.WithLabelValues(model).Add(cost.TotalCost)
	}
}
