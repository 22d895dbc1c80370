package handler

import (
	"os"
	"sync"
)

// FileSink appends rendered blocks to a log file. The file is opened
// create-or-append so successive sessions accumulate. Close is
// idempotent and writes after Close are silent no-ops, which is what
// the engine relies on when a file is closed concurrently with an
// in-flight log call.
type FileSink struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// OpenFileSink opens the file at path for appending, creating it if
// needed.
func OpenFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{path: path, file: f}, nil
}

// Path returns the path the sink was opened with.
func (s *FileSink) Path() string {
	return s.path
}

// Write appends one rendered block to the file.
func (s *FileSink) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	_, err := s.file.Write(p)
	return err
}

// Close closes the underlying file. Calling Close more than once is
// harmless.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
