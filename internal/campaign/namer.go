// internal/campaign/namer.go
package campaign

import (
    "fmt"
    "time"

    "github.com/tanach-study/email-automation/internal/model"
)

// nameMarker prefixes every generated campaign name.
const nameMarker = "EMAIL"

// Subject derives the human-readable subject line from the day's parts.
func Subject(data *model.TemplateData) string {
    return fmt.Sprintf("%s %s: %s", data.SectionName, data.SectionTitle, textRange(data.Parts))
}

// CampaignName builds a unique campaign name. The millisecond timestamp
// keeps repeated runs for the same date distinct on the sink.
func CampaignName(rc model.RunContext, subject string, now time.Time) string {
    return fmt.Sprintf("%s %d %s - %s", nameMarker, now.UnixMilli(), subject, rc.Date.Format("01/02/2006"))
}

// textRange formats the unit/part span covered by the parts.
//
// The single-unit branches print the unit number where the part number looks
// intended ("3:3" instead of "3:5"). This matches what subscribers have
// always received; keep it until product confirms the intended display.
func textRange(parts []model.TemplatePart) string {
    startUnit, endUnit := parts[0].Unit, parts[0].Unit
    startPart, endPart := parts[0].Part, parts[0].Part
    for _, p := range parts[1:] {
        if p.Unit < startUnit {
            startUnit = p.Unit
        }
        if p.Unit > endUnit {
            endUnit = p.Unit
        }
        if p.Part < startPart {
            startPart = p.Part
        }
        if p.Part > endPart {
            endPart = p.Part
        }
    }

    switch {
    case startUnit == endUnit && startPart == endPart:
        return fmt.Sprintf("%d:%d", startUnit, startUnit)
    case startUnit == endUnit:
        return fmt.Sprintf("%d:%d-%d", startUnit, startUnit, endPart)
    default:
        return fmt.Sprintf("%d:%d - %d:%d", startUnit, startUnit, endUnit, endPart)
    }
}
