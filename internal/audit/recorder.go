package audit

// Recorder is what emitters of audit events depend on; Dispatcher is the
// production implementation.
type Recorder interface {
	Dispatch(ev Event)
}

var _ Recorder = (*Dispatcher)(nil)
