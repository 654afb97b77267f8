package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/five82/logdeck/internal/vstack"
)

const namespace = "logdeck"

// Collector counts container lifecycle events of a virtualizing panel.
type Collector struct {
	created   *prometheus.CounterVec
	reused    *prometheus.CounterVec
	recycled  *prometheus.CounterVec
	destroyed prometheus.Counter
	realized  prometheus.Gauge
	lines     prometheus.Counter
}

var _ vstack.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg. A nil reg
// leaves them unregistered, which is useful when metrics are disabled.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "containers_created_total",
			Help:      "Row containers built by the factory, by recycle key.",
		}, []string{"key"}),
		reused: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "containers_reused_total",
			Help:      "Row containers taken from the recycle pool, by recycle key.",
		}, []string{"key"}),
		recycled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "containers_recycled_total",
			Help:      "Row containers returned to the recycle pool, by recycle key.",
		}, []string{"key"}),
		destroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "containers_destroyed_total",
			Help:      "Row containers dropped because they had no recycle key.",
		}),
		realized: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realized_rows",
			Help:      "Rows in the realized window after the last measure pass.",
		}),
		lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_received_total",
			Help:      "Log lines received from the source.",
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range []prometheus.Collector{c.created, c.reused, c.recycled, c.destroyed, c.realized, c.lines} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) ContainerCreated(key vstack.RecycleKey) {
	c.created.WithLabelValues(string(key)).Inc()
}

func (c *Collector) ContainerReused(key vstack.RecycleKey) {
	c.reused.WithLabelValues(string(key)).Inc()
}

func (c *Collector) ContainerRecycled(key vstack.RecycleKey) {
	c.recycled.WithLabelValues(string(key)).Inc()
}

func (c *Collector) ContainerDestroyed() { c.destroyed.Inc() }

// Measured records the size of the realized window. An empty window is
// reported as (-1, -1).
func (c *Collector) Measured(first, last int) {
	if first < 0 {
		c.realized.Set(0)
		return
	}
	c.realized.Set(float64(last - first + 1))
}

// LinesReceived counts lines delivered by the follower or poller.
func (c *Collector) LinesReceived(n int) {
	if n > 0 {
		c.lines.Add(float64(n))
	}
}
