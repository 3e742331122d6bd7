package pipeline

import "time"

// Stage describes a phase of validating one file.
type Stage string

const (
	// StageRead loads the file from disk.
	StageRead Stage = "read"
	// StageValidate runs the compiler service.
	StageValidate Stage = "validate"
	// StageReconcile maps compiler messages to records.
	StageReconcile Stage = "reconcile"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is running.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished without errors.
	StatusDone Status = "done"
	// StatusError indicates the file could not be read or has error records.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; workers report independently.
type ProgressSink interface {
	OnEvent(Event)
}
