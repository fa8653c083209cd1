package recorder

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordExitReview(_ *ExitReview) error { return nil }
func (n *NoopRecorder) RecordEntryScan(_ *EntryScan) error   { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
