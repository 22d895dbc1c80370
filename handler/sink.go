package handler

// Sink is a destination for rendered log text. Writes receive one
// complete, newline-terminated block at a time; the engine serializes
// calls, so implementations do not need their own locking.
type Sink interface {
	Write(p []byte) error
	Close() error
}
