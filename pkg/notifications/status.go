package notifications

import (
	"errors"
	"strings"
)

// Status is the outcome of the workflow run the notification reports on
type Status int

const (
	Success Status = iota
	Failure
	Cancelled
	Custom
)

// Always is the mention trigger that matches every outcome
const Always = "always"

var errUnsupportedStatus = errors.New("You can specify success or failure or cancelled or custom")

func (s Status) String() string {
	return statusToString[s]
}

// ParseStatus is case insensitive
func ParseStatus(statusString string) (Status, error) {
	if status, ok := statusToID[strings.ToLower(strings.TrimSpace(statusString))]; ok {
		return status, nil
	}
	return Success, errUnsupportedStatus
}

var statusToString = map[Status]string{
	Success:   "success",
	Failure:   "failure",
	Cancelled: "cancelled",
	Custom:    "custom",
}

var statusToID = map[string]Status{
	"success":   Success,
	"failure":   Failure,
	"cancelled": Cancelled,
	"custom":    Custom,
}
