// internal/schedule/client.go
package schedule

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "time"

    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
)

// Client reads a day's schedule from the remote content API.
type Client struct {
    BaseURL    string
    HTTPClient *http.Client
}

// NewClient builds a schedule client with an explicit timeout. The source
// system defined none; every call here is bounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
    return &Client{
        BaseURL: baseURL,
        HTTPClient: &http.Client{
            Timeout: timeout,
        },
    }
}

// FetchDay requests the part records for one program and calendar day.
func (c *Client) FetchDay(ctx context.Context, programPath string, date time.Time) ([]model.ScheduleRecord, error) {
    url := fmt.Sprintf("%s/%s/schedule/%s", c.BaseURL, programPath, date.Format("2006-01-02"))

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil {
        return nil, appErrors.NewScheduleFetch(url, err)
    }

    resp, err := c.HTTPClient.Do(req)
    if err != nil {
        return nil, appErrors.NewScheduleFetch(url, err)
    }
    defer resp.Body.Close()

    body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
    if err != nil {
        return nil, appErrors.NewScheduleFetch(url, err)
    }

    if resp.StatusCode != http.StatusOK {
        return nil, appErrors.NewScheduleFetch(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
    }

    var records []model.ScheduleRecord
    if err := json.Unmarshal(body, &records); err != nil {
        return nil, appErrors.NewSchedulePayloadInvalid(err)
    }

    return records, nil
}
