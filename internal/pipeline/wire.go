// internal/pipeline/wire.go
package pipeline

import (
    "github.com/tanach-study/email-automation/internal/campaign"
    "github.com/tanach-study/email-automation/internal/config"
    "github.com/tanach-study/email-automation/internal/render"
    "github.com/tanach-study/email-automation/internal/schedule"
    "github.com/tanach-study/email-automation/internal/templates"
    "github.com/tanach-study/email-automation/internal/transform"
)

// New assembles a pipeline with the real collaborators. The recorder may be
// nil when no database is configured.
func New(cfg *config.Config, recorder Recorder) *Pipeline {
    return &Pipeline{
        Templates:   templates.NewStore(cfg.TemplateDir),
        Schedule:    schedule.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout),
        Renderer:    render.NewRenderer(),
        Sink:        campaign.NewClient(cfg.SinkBaseURL, cfg.SinkAPIKey, cfg.SinkAccessToken, cfg.HTTPTimeout),
        Recorder:    recorder,
        Transform:   transform.Transform,
        SiteDomain:  cfg.SiteDomain,
        ArtifactDir: cfg.ArtifactDir,
    }
}
