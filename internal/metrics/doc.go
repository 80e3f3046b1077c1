// Package metrics records task and step timings for doctasks runs.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default; PrometheusRecorder collects into a registry that the CLI can
// write out in text exposition format (--metrics-file), which suits the
// node_exporter textfile collector on CI runners.
package metrics
