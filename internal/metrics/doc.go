// Package metrics records build metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites. PrometheusRecorder
// registers its collectors on a caller-supplied registry; WriteTextfile dumps
// that registry in the text exposition format for node_exporter's textfile
// collector, which suits one-shot CI builds that expose no HTTP endpoint.
package metrics
