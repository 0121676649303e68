// internal/templates/store.go
package templates

import (
    "os"
    "path/filepath"

    appErrors "github.com/tanach-study/email-automation/internal/errors"
    "github.com/tanach-study/email-automation/internal/model"
)

// Store loads the per-program HTML/text template pair from disk.
type Store struct {
    Dir string
}

func NewStore(dir string) *Store {
    return &Store{Dir: dir}
}

// Load returns the raw HTML and text template sources for a program.
func (s *Store) Load(p model.ProgramInfo) (htmlSource, textSource string, err error) {
    htmlPath := filepath.Join(s.Dir, p.HTMLTemplate)
    htmlBytes, err := os.ReadFile(htmlPath)
    if err != nil {
        return "", "", appErrors.NewTemplateNotFound(p.ID, htmlPath, err)
    }

    textPath := filepath.Join(s.Dir, p.TextTemplate)
    textBytes, err := os.ReadFile(textPath)
    if err != nil {
        return "", "", appErrors.NewTemplateNotFound(p.ID, textPath, err)
    }

    return string(htmlBytes), string(textBytes), nil
}
