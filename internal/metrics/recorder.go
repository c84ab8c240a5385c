package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultSkipped  ResultLabel = "skipped"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// BuildOutcomeLabel enumerates final build outcomes.
type BuildOutcomeLabel string

const (
	BuildSuccess  BuildOutcomeLabel = "success"
	BuildWarning  BuildOutcomeLabel = "warning"
	BuildFailed   BuildOutcomeLabel = "failed"
	BuildCanceled BuildOutcomeLabel = "canceled"
)

// Recorder defines observability hooks for build and stage metrics.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncBuildOutcome(outcome BuildOutcomeLabel)
	SetCatalogSize(documents, directories int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)         {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncBuildOutcome(BuildOutcomeLabel)          {}
func (NoopRecorder) SetCatalogSize(int, int)                    {}

// ResultFor classifies a stage error.
func ResultFor(err error, canceled bool) ResultLabel {
	switch {
	case err == nil:
		return ResultSuccess
	case canceled:
		return ResultCanceled
	default:
		return ResultFailed
	}
}

var _ Recorder = NoopRecorder{}
