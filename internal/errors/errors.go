// internal/errors/errors.go
package appErrors

import "fmt"

// ErrUnknownProgram is returned when a program identifier has no registry entry.
type ErrUnknownProgram struct {
    Program string
}

func (e *ErrUnknownProgram) Error() string {
    return fmt.Sprintf("unknown program %q", e.Program)
}

func NewUnknownProgram(program string) error {
    return &ErrUnknownProgram{Program: program}
}

// ErrTemplateNotFound is returned when a program's template file cannot be read.
type ErrTemplateNotFound struct {
    Program string
    Path    string
    Err     error
}

func (e *ErrTemplateNotFound) Error() string {
    return fmt.Sprintf("template for program %q not found at %s: %v", e.Program, e.Path, e.Err)
}

func (e *ErrTemplateNotFound) Unwrap() error { return e.Err }

func NewTemplateNotFound(program, path string, err error) error {
    return &ErrTemplateNotFound{Program: program, Path: path, Err: err}
}

// ErrScheduleFetch wraps a failed request to the schedule source.
type ErrScheduleFetch struct {
    URL string
    Err error
}

func (e *ErrScheduleFetch) Error() string {
    return fmt.Sprintf("schedule fetch %s failed: %v", e.URL, e.Err)
}

func (e *ErrScheduleFetch) Unwrap() error { return e.Err }

func NewScheduleFetch(url string, err error) error {
    return &ErrScheduleFetch{URL: url, Err: err}
}

// ErrSchedulePayloadInvalid is returned when the schedule source responds
// with a body that is not a JSON array of part records.
type ErrSchedulePayloadInvalid struct {
    Err error
}

func (e *ErrSchedulePayloadInvalid) Error() string {
    return fmt.Sprintf("schedule payload invalid: %v", e.Err)
}

func (e *ErrSchedulePayloadInvalid) Unwrap() error { return e.Err }

func NewSchedulePayloadInvalid(err error) error {
    return &ErrSchedulePayloadInvalid{Err: err}
}

// ErrEmptySchedule is returned when the schedule source answers with zero
// parts. Subject derivation needs at least one part, so this fails fast.
type ErrEmptySchedule struct {
    Program string
    Date    string
}

func (e *ErrEmptySchedule) Error() string {
    return fmt.Sprintf("empty schedule for %s on %s", e.Program, e.Date)
}

func NewEmptySchedule(program, date string) error {
    return &ErrEmptySchedule{Program: program, Date: date}
}

// ErrCampaignRejected carries the sink's structured error verbatim.
type ErrCampaignRejected struct {
    Key     string
    Message string
}

func (e *ErrCampaignRejected) Error() string {
    return fmt.Sprintf("campaign rejected by sink (%s): %s", e.Key, e.Message)
}

func NewCampaignRejected(key, message string) error {
    return &ErrCampaignRejected{Key: key, Message: message}
}

// ErrCampaignSchedule is returned when the created campaign could not be scheduled.
type ErrCampaignSchedule struct {
    CampaignID string
    Err        error
}

func (e *ErrCampaignSchedule) Error() string {
    return fmt.Sprintf("scheduling campaign %s failed: %v", e.CampaignID, e.Err)
}

func (e *ErrCampaignSchedule) Unwrap() error { return e.Err }

func NewCampaignSchedule(campaignID string, err error) error {
    return &ErrCampaignSchedule{CampaignID: campaignID, Err: err}
}

// ErrRunNotFound is returned when a newsletter run id has no row.
type ErrRunNotFound struct {
    RunID int
}

func (e *ErrRunNotFound) Error() string {
    return fmt.Sprintf("newsletter run with ID %d not found", e.RunID)
}

func NewRunNotFound(id int) error {
    return &ErrRunNotFound{RunID: id}
}
