package gpio

import "errors"

// FakeReader is a test double that returns scripted pin levels.
type FakeReader struct {
	// Levels contains scripted raw pin levels to return.
	// Each call to Read() consumes the next one.
	Levels []bool

	// index tracks current position in Levels
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given scripted levels.
func NewFakeReader(levels []bool) *FakeReader {
	return &FakeReader{Levels: levels}
}

// Read returns the next scripted level.
// If levels are exhausted, returns the last one repeatedly.
func (f *FakeReader) Read() (bool, error) {
	if f.ReadError != nil {
		return false, f.ReadError
	}

	if len(f.Levels) == 0 {
		return false, errors.New("no levels configured")
	}

	level := f.Levels[f.index]
	if f.index < len(f.Levels)-1 {
		f.index++
	}

	return level, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of the script.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Closed = false
}
