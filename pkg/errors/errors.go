package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeBrowser represents render/scroll errors from the browser session
	ErrorTypeBrowser ErrorType = "browser"
	// ErrorTypeParsing represents HTML/JSON parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypePersistence represents checkpoint/table persistence errors
	ErrorTypePersistence ErrorType = "persistence"
	// ErrorTypeEmptyInput represents an upstream table or signal that is
	// entirely absent; the stage skips the derivation instead of failing
	ErrorTypeEmptyInput ErrorType = "empty_input"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// PipelineError represents a stage-specific error
type PipelineError struct {
	Type    ErrorType
	Stage   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Stage, e.Message)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsFatal returns true if the error should abort the whole run
func (e *PipelineError) IsFatal() bool {
	switch e.Type {
	case ErrorTypeConfiguration, ErrorTypePersistence:
		return true
	default:
		return false
	}
}

// New creates a new PipelineError
func New(errType ErrorType, stage, message string, err error) *PipelineError {
	return &PipelineError{
		Type:    errType,
		Stage:   stage,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(stage, message string, err error) *PipelineError {
	return New(ErrorTypeNetwork, stage, message, err)
}

// NewBrowser creates a new browser error
func NewBrowser(stage, message string, err error) *PipelineError {
	return New(ErrorTypeBrowser, stage, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(stage, message string, err error) *PipelineError {
	return New(ErrorTypeParsing, stage, message, err)
}

// NewPersistence creates a new persistence error
func NewPersistence(stage, message string, err error) *PipelineError {
	return New(ErrorTypePersistence, stage, message, err)
}

// NewEmptyInput creates a new empty-input error
func NewEmptyInput(stage, message string) *PipelineError {
	return New(ErrorTypeEmptyInput, stage, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *PipelineError {
	return New(ErrorTypeConfiguration, "config", message, err)
}

// IsEmptyInput reports whether err is an empty-input condition, letting
// callers branch on kind instead of on message content
func IsEmptyInput(err error) bool {
	var perr *PipelineError
	if stderrors.As(err, &perr) {
		return perr.Type == ErrorTypeEmptyInput
	}
	return false
}
