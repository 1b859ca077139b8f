// Package metrics exposes feeder activity to observability backends.
//
// Components depend on the [Recorder] interface and default to
// [NoopRecorder]; the headless controller installs a [PrometheusRecorder]
// and serves it through [HTTPHandler].
package metrics
