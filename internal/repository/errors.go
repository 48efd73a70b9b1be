package repository

import "fmt"

// NetworkError reports an HTTP failure status from the weather API.
type NetworkError struct {
	Code    int
	Message string
}

func (e *NetworkError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather api returned status %d", e.Code)
	}
	return fmt.Sprintf("weather api returned status %d: %s", e.Code, e.Message)
}

// MappingError reports a payload that decoded but failed domain conversion.
type MappingError struct {
	Cause error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("failed to map weather payload: %v", e.Cause)
}

func (e *MappingError) Unwrap() error { return e.Cause }

// NoDataError reports a successful response with an empty body.
type NoDataError struct {
	Reason string
}

func (e *NoDataError) Error() string {
	if e.Reason == "" {
		return "weather api returned no data"
	}
	return "weather api returned no data: " + e.Reason
}

// UnknownError reports a transport-level failure (timeout, DNS, cancellation).
type UnknownError struct {
	Cause error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("weather fetch failed: %v", e.Cause)
}

func (e *UnknownError) Unwrap() error { return e.Cause }
