// internal/model/schedule.go
package model

// AudioLocation is the split audio reference returned by the schedule source.
type AudioLocation struct {
    Host string `json:"host"`
    Path string `json:"path"`
}

// ScheduleRecord is one raw part record from the schedule source. The
// segment/section descriptive fields repeat on every record of a response;
// the transformer reads them from the first one.
type ScheduleRecord struct {
    SegmentName    string        `json:"segment_name"`
    SegmentTitle   string        `json:"segment_title"`
    SegmentSponsor string        `json:"segment_sponsor"`
    SectionName    string        `json:"section_name"`
    SectionTitle   string        `json:"section_title"`
    SectionSponsor string        `json:"section_sponsor"`
    Segment        int           `json:"segment"`
    Section        int           `json:"section"`
    Unit           int           `json:"unit"`
    Part           int           `json:"part"`
    PartTitle      string        `json:"part_title"`
    AudioURL       AudioLocation `json:"audio_url"`
}

// TemplatePart is one render-ready lesson entry.
type TemplatePart struct {
    Unit     int    `json:"unit"`
    Part     int    `json:"part"`
    Title    string `json:"title"`
    AudioURL string `json:"audio_url"`
    PageURL  string `json:"page_url"`
}

// TemplateData is the binding context for template rendering. Parts is
// always non-empty; an empty schedule never reaches this type.
type TemplateData struct {
    SegmentName    string         `json:"segment_name"`
    SegmentTitle   string         `json:"segment_title"`
    SegmentSponsor string         `json:"segment_sponsor"`
    SectionName    string         `json:"section_name"`
    SectionTitle   string         `json:"section_title"`
    SectionSponsor string         `json:"section_sponsor"`
    Parts          []TemplatePart `json:"parts"`
}
