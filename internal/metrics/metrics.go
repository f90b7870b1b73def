// Package metrics records per-run counters in a private Prometheus registry
// and can dump them in the text exposition format (node_exporter textfile
// collector style).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"readsanalyzer/core/reads"
)

// Recorder holds the metrics of one tool run.
type Recorder struct {
	reg      *prometheus.Registry
	reads    prometheus.Counter
	bases    prometheus.Counter
	rejected prometheus.Counter
	distinct prometheus.Gauge
	edges    prometheus.Gauge
	ingest   prometheus.Gauge
}

// New registers the run metrics for tool.
func New(tool string) *Recorder {
	labels := prometheus.Labels{"tool": tool}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "readsanalyzer", Name: "reads_processed_total",
			Help: "Reads handed to the processor.", ConstLabels: labels,
		}),
		bases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "readsanalyzer", Name: "bases_processed_total",
			Help: "Symbols in reads handed to the processor.", ConstLabels: labels,
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "readsanalyzer", Name: "reads_rejected_total",
			Help: "Reads the processor refused.", ConstLabels: labels,
		}),
		distinct: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "readsanalyzer", Name: "distinct_items",
			Help: "Distinct k-mers or sequences after ingest.", ConstLabels: labels,
		}),
		edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "readsanalyzer", Name: "overlap_edges",
			Help: "Edges in the overlap graph after ingest.", ConstLabels: labels,
		}),
		ingest: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "readsanalyzer", Name: "ingest_seconds",
			Help: "Wall time spent reading and processing input.", ConstLabels: labels,
		}),
	}
	r.reg.MustRegister(r.reads, r.bases, r.rejected, r.distinct, r.edges, r.ingest)
	return r
}

// Instrument wraps p so every read it accepts or rejects is counted.
func (r *Recorder) Instrument(p reads.Processor) reads.Processor {
	return reads.ProcessorFunc(func(seq string) error {
		if err := p.ProcessRead(seq); err != nil {
			r.rejected.Inc()
			return err
		}
		r.reads.Inc()
		r.bases.Add(float64(len(seq)))
		return nil
	})
}

func (r *Recorder) SetDistinct(n int)             { r.distinct.Set(float64(n)) }
func (r *Recorder) SetEdges(n int)                { r.edges.Set(float64(n)) }
func (r *Recorder) ObserveIngest(d time.Duration) { r.ingest.Set(d.Seconds()) }

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
