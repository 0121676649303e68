// internal/campaign/request.go
package campaign

import (
    "time"

    "github.com/tanach-study/email-automation/internal/model"
)

const (
    viewAsWebPageText     = "Having trouble viewing this email?"
    viewAsWebPageLinkText = "Click here"
)

// BuildCreateRequest assembles the outbound create-campaign payload: sender
// fields from the run context, derived subject and name, sanitized bodies,
// and the sink's fixed flags.
func BuildCreateRequest(rc model.RunContext, data *model.TemplateData, htmlBody, textBody string, now time.Time) (model.CampaignRequest, error) {
    subject := Subject(data)

    html, err := SanitizeBody(htmlBody)
    if err != nil {
        return model.CampaignRequest{}, err
    }
    text, err := SanitizeBody(textBody)
    if err != nil {
        return model.CampaignRequest{}, err
    }

    lists := make([]model.ContactList, 0, len(rc.ListIDs))
    for _, id := range rc.ListIDs {
        lists = append(lists, model.ContactList{ID: id})
    }

    return model.CampaignRequest{
        Name:                   CampaignName(rc, subject, now),
        Subject:                subject,
        FromName:               rc.SenderName,
        FromEmail:              rc.SenderEmail,
        ReplyToEmail:           rc.ReplyTo,
        IsViewAsWebpageEnabled: true,
        ViewAsWebPageText:      viewAsWebPageText,
        ViewAsWebPageLinkText:  viewAsWebPageLinkText,
        EmailContentFormat:     "HTML",
        EmailContent:           html,
        TextContent:            text,
        SentToContactLists:     lists,
    }, nil
}

// BuildScheduleRequest keys the schedule payload strictly by the run's date;
// no content is recomputed after creation.
func BuildScheduleRequest(rc model.RunContext) model.ScheduleRequest {
    return model.ScheduleRequest{
        ScheduledDate: rc.Date.Format(time.RFC3339),
    }
}
