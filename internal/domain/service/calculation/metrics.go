package calculation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/pkg/errcodes"
)

const (
	outcomeConverged   = "converged"
	outcomeApproximate = "approximate"
	outcomeInvalid     = "invalid"
	outcomeUnsolvable  = "unsolvable"
	outcomeError       = "error"
)

type Metrics struct {
	solves     *prometheus.CounterVec
	iterations prometheus.Histogram
	saved      prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricer",
			Name:      "solves_total",
			Help:      "Price solves by outcome.",
		}, []string{"outcome"}),
		iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pricer",
			Name:      "solve_iterations",
			Help:      "Fixed-point iterations spent per solve.",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),
		saved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pricer",
			Name:      "calculations_saved_total",
			Help:      "Calculations stored in history.",
		}),
	}
}

func (m *Metrics) observe(result entity.CalculationResult, code errcodes.ErrorCode, failed bool) {
	if m == nil {
		return
	}

	if failed {
		m.solves.WithLabelValues(outcomeFor(code)).Inc()
		return
	}

	m.iterations.Observe(float64(result.Iterations))

	if result.Approximate {
		m.solves.WithLabelValues(outcomeApproximate).Inc()
		return
	}

	m.solves.WithLabelValues(outcomeConverged).Inc()
}

func (m *Metrics) observeSaved() {
	if m == nil {
		return
	}

	m.saved.Inc()
}

func outcomeFor(code errcodes.ErrorCode) string {
	switch code {
	case errcodes.InvalidInput, errcodes.ValidationError:
		return outcomeInvalid
	case errcodes.Unsolvable:
		return outcomeUnsolvable
	default:
		return outcomeError
	}
}

// Solves счётчик решений по исходу.
func (m *Metrics) Solves() *prometheus.CounterVec {
	return m.solves
}
