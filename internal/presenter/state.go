package presenter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"weathercast/internal/repository"
	"weathercast/internal/weather"
)

// Phase is the closed set of presentation phases.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// ErrorKind distinguishes errors that need different user remediation.
type ErrorKind string

const (
	ErrorNone                     ErrorKind = ""
	ErrorLocationServicesDisabled ErrorKind = "location_services_disabled"
	ErrorLocationPermissionDenied ErrorKind = "location_permission_denied"
	ErrorNetwork                  ErrorKind = "network"
	ErrorMapping                  ErrorKind = "mapping"
	ErrorNoData                   ErrorKind = "no_data"
	ErrorUnknown                  ErrorKind = "unknown"
)

// State is the observable presentation state. On Success, Current and
// Forecast always come from the same fetch cycle, identified by CycleID.
// On Error the previously displayed weather is retained so readers may keep
// showing stale data alongside the error.
type State struct {
	Phase             Phase                  `json:"phase"`
	CycleID           uuid.UUID              `json:"cycleId"`
	Query             string                 `json:"query,omitempty"`
	Current           *weather.CurrentWeather `json:"current,omitempty"`
	Forecast          *weather.Forecast      `json:"forecast,omitempty"`
	Theme             Theme                  `json:"theme"`
	ErrorKind         ErrorKind              `json:"errorKind,omitempty"`
	ErrorCode         int                    `json:"errorCode,omitempty"`
	ErrorMessage      string                 `json:"errorMessage,omitempty"`
	Suggestions       []weather.SearchResult `json:"suggestions,omitempty"`
	RequestPermission bool                   `json:"requestPermission,omitempty"`
}

// classify maps a repository error onto an error kind, HTTP status code and
// a user-facing message.
func classify(err error) (ErrorKind, int, string) {
	var netErr *repository.NetworkError
	var noDataErr *repository.NoDataError
	var mapErr *repository.MappingError
	var unkErr *repository.UnknownError

	switch {
	case errors.As(err, &netErr):
		return ErrorNetwork, netErr.Code, fmt.Sprintf(
			"Failed to fetch weather. Please check your internet connection. (Error Code: %d)", netErr.Code)
	case errors.As(err, &noDataErr):
		return ErrorNoData, 0, "No weather data was returned."
	case errors.As(err, &mapErr):
		return ErrorMapping, 0, "There was an issue processing the weather data."
	case errors.As(err, &unkErr):
		return ErrorUnknown, 0, "An unexpected error occurred: " + unkErr.Error()
	default:
		return ErrorUnknown, 0, "An unknown error has occurred."
	}
}
