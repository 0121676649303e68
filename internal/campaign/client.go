// internal/campaign/client.go
package campaign

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "time"

    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
)

// Client submits campaigns to the email-marketing platform. Credentials are
// injected at construction; nothing here reads the environment.
type Client struct {
    BaseURL     string
    APIKey      string
    AccessToken string
    HTTPClient  *http.Client
}

func NewClient(baseURL, apiKey, accessToken string, timeout time.Duration) *Client {
    return &Client{
        BaseURL:     baseURL,
        APIKey:      apiKey,
        AccessToken: accessToken,
        HTTPClient: &http.Client{
            Timeout: timeout,
        },
    }
}

// sinkError is the error object the sink returns inside a JSON array when a
// request is rejected.
type sinkError struct {
    Key     string `json:"error_key"`
    Message string `json:"error_message"`
}

// Create submits the create-campaign request and returns the new campaign id.
// The sink answers with either a created-campaign object or an array holding
// an error object; the latter becomes ErrCampaignRejected with the sink's
// message untouched.
func (c *Client) Create(ctx context.Context, req model.CampaignRequest) (string, error) {
    body, status, err := c.post(ctx, c.BaseURL+"/v2/emailmarketing/campaigns", req)
    if err != nil {
        return "", err
    }

    if rejected := parseSinkErrors(body); rejected != nil {
        return "", rejected
    }

    if status < 200 || status >= 300 {
        return "", fmt.Errorf("unexpected status %d: %.200s", status, string(body))
    }

    var created struct {
        ID string `json:"id"`
    }
    if err := json.Unmarshal(body, &created); err != nil {
        return "", fmt.Errorf("parse create response: %w", err)
    }
    if created.ID == "" {
        return "", fmt.Errorf("create response missing campaign id: %.200s", string(body))
    }

    return created.ID, nil
}

// Schedule submits the schedule request for a created campaign.
func (c *Client) Schedule(ctx context.Context, campaignID string, req model.ScheduleRequest) error {
    url := fmt.Sprintf("%s/v2/emailmarketing/campaigns/%s/schedules", c.BaseURL, campaignID)
    body, status, err := c.post(ctx, url, req)
    if err != nil {
        return appErrors.NewCampaignSchedule(campaignID, err)
    }

    if rejected := parseSinkErrors(body); rejected != nil {
        return appErrors.NewCampaignSchedule(campaignID, rejected)
    }

    // Rejections the sink does not phrase as an error array (expired token,
    // plain 404, HTML error page) must still fail the run.
    if status < 200 || status >= 300 {
        return appErrors.NewCampaignSchedule(campaignID, fmt.Errorf("unexpected status %d: %.200s", status, string(body)))
    }

    return nil
}

// post sends the payload and returns the body and status code. Status
// handling stays with the callers: a non-2xx body may still carry the
// sink's structured error array, which outranks a generic status error.
func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, int, error) {
    reqBytes, err := json.Marshal(payload)
    if err != nil {
        return nil, 0, fmt.Errorf("marshal request: %w", err)
    }

    req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"?api_key="+c.APIKey, bytes.NewReader(reqBytes))
    if err != nil {
        return nil, 0, fmt.Errorf("build request: %w", err)
    }
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Authorization", "Bearer "+c.AccessToken)

    resp, err := c.HTTPClient.Do(req)
    if err != nil {
        return nil, 0, err
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
    if err != nil {
        return nil, 0, fmt.Errorf("read response: %w", err)
    }

    return body, resp.StatusCode, nil
}

// parseSinkErrors returns ErrCampaignRejected when the body is the sink's
// error-array shape, nil otherwise.
func parseSinkErrors(body []byte) error {
    trimmed := bytes.TrimSpace(body)
    if len(trimmed) == 0 || trimmed[0] != '[' {
        return nil
    }
    var errs []sinkError
    if err := json.Unmarshal(trimmed, &errs); err != nil || len(errs) == 0 {
        return nil
    }
    return appErrors.NewCampaignRejected(errs[0].Key, errs[0].Message)
}
