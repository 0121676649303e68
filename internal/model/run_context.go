// internal/model/run_context.go
package model

import (
    "fmt"
    "time"
)

// RunContext is the immutable per-invocation configuration for one pipeline
// run. Built once from validated input, never mutated afterwards.
type RunContext struct {
    Program     ProgramInfo
    Date        time.Time // calendar day, time-of-day zeroed
    ListIDs     []string
    SenderName  string
    SenderEmail string
    ReplyTo     string
}

// NewRunContext validates the inputs shared by the CLI and the HTTP surface
// and applies the reply-to default. Validation failures here stop a run
// before any pipeline step executes.
func NewRunContext(program ProgramInfo, date time.Time, listIDs []string, senderName, senderEmail, replyTo string) (RunContext, error) {
    if len(listIDs) == 0 {
        return RunContext{}, fmt.Errorf("at least one contact list id is required")
    }
    if senderName == "" {
        return RunContext{}, fmt.Errorf("sender name is required")
    }
    if senderEmail == "" {
        return RunContext{}, fmt.Errorf("sender email is required")
    }
    if replyTo == "" {
        replyTo = senderEmail
    }

    day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

    return RunContext{
        Program:     program,
        Date:        day,
        ListIDs:     listIDs,
        SenderName:  senderName,
        SenderEmail: senderEmail,
        ReplyTo:     replyTo,
    }, nil
}
