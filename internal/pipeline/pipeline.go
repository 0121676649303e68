// internal/pipeline/pipeline.go
package pipeline

import (
    "context"
    "log"
    "os"
    "path/filepath"
    "time"

    "github.com/tanach-study/email-automation/internal/campaign"
    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
    "github.com/tanach-study/email-automation/internal/render"
)

// TemplateStore loads the HTML/text template pair for a program.
type TemplateStore interface {
    Load(p model.ProgramInfo) (htmlSource, textSource string, err error)
}

// ScheduleSource fetches the day's raw part records.
type ScheduleSource interface {
    FetchDay(ctx context.Context, programPath string, date time.Time) ([]model.ScheduleRecord, error)
}

// CampaignSink creates and schedules campaigns on the marketing platform.
type CampaignSink interface {
    Create(ctx context.Context, req model.CampaignRequest) (string, error)
    Schedule(ctx context.Context, campaignID string, req model.ScheduleRequest) error
}

// Recorder persists run history. It is optional; a nil Recorder disables
// recording without changing pipeline behavior.
type Recorder interface {
    Create(run *model.NewsletterRun) error
    Update(run *model.NewsletterRun) error
}

// Transform maps raw records to template data; injected so tests can
// exercise abort behavior without real data.
type Transform func(records []model.ScheduleRecord, programPath, siteDomain string) (*model.TemplateData, error)

// Result summarizes a completed run.
type Result struct {
    CampaignID   string
    CampaignName string
    Subject      string
    ScheduledFor string
}

// Pipeline sequences one newsletter run: load templates, fetch schedule,
// transform, render, persist artifacts, create and schedule the campaign.
// Single attempt, no retries; the first failure aborts the run.
type Pipeline struct {
    Templates   TemplateStore
    Schedule    ScheduleSource
    Renderer    *render.Renderer
    Sink        CampaignSink
    Recorder    Recorder
    Transform   Transform
    SiteDomain  string
    ArtifactDir string
    Now         func() time.Time
}

func (p *Pipeline) now() time.Time {
    if p.Now != nil {
        return p.Now()
    }
    return time.Now()
}

// Run executes all steps for one run context. Any error is propagated
// unchanged; the caller is the single catch point.
func (p *Pipeline) Run(ctx context.Context, rc model.RunContext) (*Result, error) {
    return p.RunRecorded(ctx, rc, nil)
}

// RunRecorded runs the pipeline against an already-created run record (the
// HTTP surface inserts one before enqueueing). A nil run falls back to
// creating a fresh record when a Recorder is wired.
func (p *Pipeline) RunRecorded(ctx context.Context, rc model.RunContext, run *model.NewsletterRun) (*Result, error) {
    if run == nil {
        run = p.record(rc)
    }

    res, err := p.run(ctx, rc, run)
    if err != nil {
        p.markFailed(run, err)
        return nil, err
    }

    return res, nil
}

func (p *Pipeline) run(ctx context.Context, rc model.RunContext, run *model.NewsletterRun) (*Result, error) {
    htmlSource, textSource, err := p.Templates.Load(rc.Program)
    if err != nil {
        return nil, err
    }

    records, err := p.Schedule.FetchDay(ctx, rc.Program.Path, rc.Date)
    if err != nil {
        return nil, err
    }

    data, err := p.Transform(records, rc.Program.Path, p.SiteDomain)
    if err != nil {
        if empty, ok := err.(*appErrors.ErrEmptySchedule); ok {
            empty.Date = rc.Date.Format("2006-01-02")
        }
        return nil, err
    }

    htmlBody, err := p.Renderer.RenderHTML(htmlSource, data)
    if err != nil {
        return nil, err
    }
    textBody, err := p.Renderer.RenderText(textSource, data)
    if err != nil {
        return nil, err
    }

    if err := p.writeArtifacts(htmlBody, textBody); err != nil {
        return nil, err
    }

    req, err := campaign.BuildCreateRequest(rc, data, htmlBody, textBody, p.now())
    if err != nil {
        return nil, err
    }

    campaignID, err := p.Sink.Create(ctx, req)
    if err != nil {
        return nil, err
    }
    p.markSubmitted(run, campaignID, req.Name, req.Subject)

    schedReq := campaign.BuildScheduleRequest(rc)
    if err := p.Sink.Schedule(ctx, campaignID, schedReq); err != nil {
        return nil, err
    }
    p.markScheduled(run)

    return &Result{
        CampaignID:   campaignID,
        CampaignName: req.Name,
        Subject:      req.Subject,
        ScheduledFor: schedReq.ScheduledDate,
    }, nil
}

// writeArtifacts persists the most recent rendered bodies for operator
// inspection. Files are overwritten on every run.
func (p *Pipeline) writeArtifacts(htmlBody, textBody string) error {
    dir := p.ArtifactDir
    if dir == "" {
        dir = "."
    }
    if err := os.WriteFile(filepath.Join(dir, "newsletter.html"), []byte(htmlBody), 0o644); err != nil {
        return err
    }
    return os.WriteFile(filepath.Join(dir, "newsletter.txt"), []byte(textBody), 0o644)
}

// ── Run recording ────────────────────────────────────────────────────────
// Recording is observability, never a pipeline failure: errors are logged
// and the run continues.

func (p *Pipeline) record(rc model.RunContext) *model.NewsletterRun {
    if p.Recorder == nil {
        return nil
    }
    run := &model.NewsletterRun{
        Program:      rc.Program.ID,
        ScheduleDate: rc.Date,
        Status:       "pending",
    }
    if err := p.Recorder.Create(run); err != nil {
        log.Println("⚠️ failed to record run:", err)
        return nil
    }
    return run
}

func (p *Pipeline) markSubmitted(run *model.NewsletterRun, campaignID, name, subject string) {
    if run == nil || p.Recorder == nil {
        return
    }
    run.Status = "submitted"
    run.CampaignID = campaignID
    run.CampaignName = name
    run.Subject = subject
    if err := p.Recorder.Update(run); err != nil {
        log.Println("⚠️ failed to update run record:", err)
    }
}

func (p *Pipeline) markScheduled(run *model.NewsletterRun) {
    if run == nil || p.Recorder == nil {
        return
    }
    run.Status = "scheduled"
    if err := p.Recorder.Update(run); err != nil {
        log.Println("⚠️ failed to update run record:", err)
    }
}

func (p *Pipeline) markFailed(run *model.NewsletterRun, cause error) {
    if run == nil || p.Recorder == nil {
        return
    }
    run.Status = "failed"
    run.LastError = cause.Error()
    if err := p.Recorder.Update(run); err != nil {
        log.Println("⚠️ failed to update run record:", err)
    }
}
