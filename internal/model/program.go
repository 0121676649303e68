// internal/model/program.go
package model

// ProgramInfo is the resolved registry entry for one study program.
type ProgramInfo struct {
    ID           string `json:"id"`
    Path         string `json:"path"`
    DisplayName  string `json:"display_name"`
    HTMLTemplate string `json:"html_template"`
    TextTemplate string `json:"text_template"`
}
