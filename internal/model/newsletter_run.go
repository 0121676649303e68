// internal/model/newsletter_run.go
package model

import "time"

// NewsletterRun is the persisted record of one pipeline run.
type NewsletterRun struct {
    ID           int        `db:"id" json:"id"`
    Program      string     `db:"program" json:"program"`
    ScheduleDate time.Time  `db:"schedule_date" json:"schedule_date"`
    CampaignID   string     `db:"campaign_id" json:"campaign_id,omitempty"`
    CampaignName string     `db:"campaign_name" json:"campaign_name,omitempty"`
    Subject      string     `db:"subject" json:"subject,omitempty"`
    Status       string     `db:"status" json:"status"` // pending, submitted, scheduled, failed
    LastError    string     `db:"last_error" json:"last_error,omitempty"`
    CreatedAt    time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
