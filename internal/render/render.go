// internal/render/render.go
package render

import (
    "github.com/cbroglie/mustache"
    "github.com/tdewolff/minify/v2"
    "github.com/tdewolff/minify/v2/html"

    "github.com/tanach-study/email-automation/internal/model"
)

// Renderer expands mustache templates against template data. HTML output is
// additionally whitespace-minified; text output is rendered verbatim.
type Renderer struct {
    minifier *minify.M
}

func NewRenderer() *Renderer {
    m := minify.New()
    m.AddFunc("text/html", html.Minify)
    return &Renderer{minifier: m}
}

// RenderHTML renders and minifies the HTML body.
func (r *Renderer) RenderHTML(templateSource string, data *model.TemplateData) (string, error) {
    out, err := mustache.Render(templateSource, bindings(data))
    if err != nil {
        return "", err
    }
    return r.minifier.String("text/html", out)
}

// RenderText renders the plain-text body without minification.
func (r *Renderer) RenderText(templateSource string, data *model.TemplateData) (string, error) {
    return mustache.Render(templateSource, bindings(data))
}

// bindings flattens TemplateData into the snake_case names the template
// files use.
func bindings(data *model.TemplateData) map[string]interface{} {
    parts := make([]map[string]interface{}, 0, len(data.Parts))
    for _, p := range data.Parts {
        parts = append(parts, map[string]interface{}{
            "unit":       p.Unit,
            "part":       p.Part,
            "part_title": p.Title,
            "audio_url":  p.AudioURL,
            "page_url":   p.PageURL,
        })
    }

    return map[string]interface{}{
        "segment_name":    data.SegmentName,
        "segment_title":   data.SegmentTitle,
        "segment_sponsor": data.SegmentSponsor,
        "section_name":    data.SectionName,
        "section_title":   data.SectionTitle,
        "section_sponsor": data.SectionSponsor,
        "parts":           parts,
    }
}
