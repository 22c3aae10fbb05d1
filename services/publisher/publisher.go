package publisher

// Publisher represents a service for publishing collection events
type Publisher interface {
	// Publish publishes a message to a stream
	Publish(key string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}

// Noop is a Publisher that discards everything; used when no stream
// address is configured
type Noop struct{}

// Publish discards the message
func (Noop) Publish(string, []byte) error { return nil }

// TrimStreams does nothing
func (Noop) TrimStreams() error { return nil }

// Close does nothing
func (Noop) Close() error { return nil }
