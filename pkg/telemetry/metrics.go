package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// TableCollector exports intern table statistics. Values are read from
// Table.Info at scrape time.
type TableCollector struct {
	table *intern.Table

	pools         *prometheus.Desc
	strings       *prometheus.Desc
	staticStrings *prometheus.Desc
	dataBytes     *prometheus.Desc
	overheadBytes *prometheus.Desc
	capacity      *prometheus.Desc
	longestBucket *prometheus.Desc
}

// NewTableCollector returns a collector for t. name becomes the "table" label.
func NewTableCollector(t *intern.Table, name string) *TableCollector {
	labels := prometheus.Labels{"table": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("qstr", "table", metric), help, nil, labels)
	}
	return &TableCollector{
		table:         t,
		pools:         desc("pools", "Number of pools in the chain."),
		strings:       desc("strings", "Number of interned strings, static included."),
		staticStrings: desc("static_strings", "Number of static strings."),
		dataBytes:     desc("data_bytes", "Bytes of string content."),
		overheadBytes: desc("overhead_bytes", "Bytes spent on pool and record bookkeeping."),
		capacity:      desc("capacity", "Record slots allocated across all pools."),
		longestBucket: desc("index_longest_bucket", "Longest hash index bucket."),
	}
}

// Describe implements prometheus.Collector.
func (c *TableCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pools
	ch <- c.strings
	ch <- c.staticStrings
	ch <- c.dataBytes
	ch <- c.overheadBytes
	ch <- c.capacity
	ch <- c.longestBucket
}

// Collect implements prometheus.Collector.
func (c *TableCollector) Collect(ch chan<- prometheus.Metric) {
	info := c.table.Info()
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	gauge(c.pools, info.Pools)
	gauge(c.strings, info.Strings)
	gauge(c.staticStrings, info.StaticStrings)
	gauge(c.dataBytes, info.StrDataBytes)
	gauge(c.overheadBytes, info.OverheadBytes)
	gauge(c.capacity, info.Capacity)
	if stats, ok := c.table.IndexStats(); ok {
		gauge(c.longestBucket, stats.Longest)
	}
}
