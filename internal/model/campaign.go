// internal/model/campaign.go
package model

// ContactList identifies one subscriber list on the campaign sink.
type ContactList struct {
    ID string `json:"id"`
}

// CampaignRequest is the outbound create-campaign payload. Field names match
// the sink's wire format.
type CampaignRequest struct {
    Name                    string        `json:"name"`
    Subject                 string        `json:"subject"`
    FromName                string        `json:"from_name"`
    FromEmail               string        `json:"from_email"`
    ReplyToEmail            string        `json:"reply_to_email"`
    IsViewAsWebpageEnabled  bool          `json:"is_view_as_webpage_enabled"`
    ViewAsWebPageText       string        `json:"view_as_web_page_text"`
    ViewAsWebPageLinkText   string        `json:"view_as_web_page_link_text"`
    EmailContentFormat      string        `json:"email_content_format"`
    EmailContent            string        `json:"email_content"`
    TextContent             string        `json:"text_content"`
    SentToContactLists      []ContactList `json:"sent_to_contact_lists"`
}

// ScheduleRequest is the outbound schedule payload, keyed externally by the
// campaign id returned from creation.
type ScheduleRequest struct {
    ScheduledDate string `json:"scheduled_date"`
}
