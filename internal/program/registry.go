// internal/program/registry.go
package program

import (
    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
)

// programs is the static registry of supported study programs. Unknown
// identifiers resolve to a typed error, never to empty strings.
var programs = map[string]model.ProgramInfo{
    "tanach": {
        ID:           "tanach",
        Path:         "tanach",
        DisplayName:  "Tanach Study",
        HTMLTemplate: "tanach.html.mustache",
        TextTemplate: "tanach.txt.mustache",
    },
    "nach": {
        ID:           "nach",
        Path:         "nach",
        DisplayName:  "Nach Study",
        HTMLTemplate: "tanach.html.mustache",
        TextTemplate: "tanach.txt.mustache",
    },
    "mishna": {
        ID:           "mishna",
        Path:         "mishna",
        DisplayName:  "Mishna Study",
        HTMLTemplate: "mishna.html.mustache",
        TextTemplate: "mishna.txt.mustache",
    },
    "parasha": {
        ID:           "parasha",
        Path:         "parasha",
        DisplayName:  "Parasha Study",
        HTMLTemplate: "parasha.html.mustache",
        TextTemplate: "parasha.txt.mustache",
    },
}

// Resolve looks up a program identifier.
func Resolve(id string) (model.ProgramInfo, error) {
    p, ok := programs[id]
    if !ok {
        return model.ProgramInfo{}, appErrors.NewUnknownProgram(id)
    }
    return p, nil
}

// IDs returns the known program identifiers, for CLI usage messages.
func IDs() []string {
    ids := make([]string, 0, len(programs))
    for id := range programs {
        ids = append(ids, id)
    }
    return ids
}
