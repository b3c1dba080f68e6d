package enactedby

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes pattern-coverage counters so gaps in the regex tables
// can be found offline: which strategies supply results, which patterns
// fire, and which strategy types never match. Observability only.
type Metrics struct {
	ResolutionsTotal    *prometheus.CounterVec
	PatternMatchesTotal *prometheus.CounterVec
	ZeroMatchTotal      *prometheus.CounterVec
	UnresolvedTotal     prometheus.Counter
}

// NewMetrics registers the resolver counters on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the resolver counters on reg.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ResolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sertantai_enactedby_resolutions_total",
			Help: "Total enacted-by resolutions by winning strategy",
		}, []string{"strategy"}),
		PatternMatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sertantai_enactedby_pattern_matches_total",
			Help: "Total pattern matches by pattern id",
		}, []string{"pattern_id"}),
		ZeroMatchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sertantai_enactedby_zero_match_total",
			Help: "Total resolutions in which a strategy type produced no match",
		}, []string{"strategy"}),
		UnresolvedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "sertantai_enactedby_unresolved_total",
			Help: "Total resolutions that produced no enacting laws at all",
		}),
	}
}

// InstrumentedResolver wraps a Resolver, recording each invocation's
// report into the counters.
type InstrumentedResolver struct {
	resolver *Resolver
	metrics  *Metrics
}

// NewInstrumentedResolver wraps resolver with metrics.
func NewInstrumentedResolver(resolver *Resolver, metrics *Metrics) *InstrumentedResolver {
	return &InstrumentedResolver{resolver: resolver, metrics: metrics}
}

// Resolve delegates to the wrapped resolver and records the report.
func (ir *InstrumentedResolver) Resolve(text string, refs map[string][]string) ([]string, Report) {
	outputs, report := ir.resolver.Resolve(text, refs)

	if report.Matched {
		ir.metrics.ResolutionsTotal.WithLabelValues(string(report.Strategy)).Inc()
	} else {
		ir.metrics.UnresolvedTotal.Inc()
	}
	for _, match := range report.PatternMatches {
		ir.metrics.PatternMatchesTotal.WithLabelValues(match.PatternID).Inc()
	}
	for _, strategy := range report.ZeroMatchStrategies {
		ir.metrics.ZeroMatchTotal.WithLabelValues(string(strategy)).Inc()
	}

	return outputs, report
}
