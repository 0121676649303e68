// internal/transform/transform.go
package transform

import (
    "fmt"

    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
)

// DefaultSponsor is the fallback text for absent sponsor fields.
const DefaultSponsor = "Sponsorship Available"

// Transform maps raw schedule records into render-ready template data.
// Shared section fields come from the first record; each record becomes one
// part with its audio and page URLs composed. An empty record set is a
// defect in the upstream response and fails fast.
func Transform(records []model.ScheduleRecord, programPath, siteDomain string) (*model.TemplateData, error) {
    if len(records) == 0 {
        return nil, appErrors.NewEmptySchedule(programPath, "")
    }

    first := records[0]
    data := &model.TemplateData{
        SegmentName:    first.SegmentName,
        SegmentTitle:   first.SegmentTitle,
        SegmentSponsor: sponsorOrDefault(first.SegmentSponsor),
        SectionName:    first.SectionName,
        SectionTitle:   first.SectionTitle,
        SectionSponsor: sponsorOrDefault(first.SectionSponsor),
        Parts:          make([]model.TemplatePart, 0, len(records)),
    }

    for _, rec := range records {
        data.Parts = append(data.Parts, model.TemplatePart{
            Unit:     rec.Unit,
            Part:     rec.Part,
            Title:    rec.PartTitle,
            AudioURL: rec.AudioURL.Host + rec.AudioURL.Path,
            PageURL: fmt.Sprintf("https://%s/%s/perek/%d/%d/%d?part=%d",
                siteDomain, programPath, rec.Segment, rec.Section, rec.Unit, rec.Part),
        })
    }

    return data, nil
}

func sponsorOrDefault(s string) string {
    if s == "" {
        return DefaultSponsor
    }
    return s
}
