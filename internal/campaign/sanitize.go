// internal/campaign/sanitize.go
package campaign

import (
    "strings"

    "golang.org/x/text/encoding/charmap"
)

// asciiOnly strips every rune above 0x7F. The sink mangles multibyte
// content, so non-ASCII characters (including Hebrew text) are dropped
// before transmission. The content loss is a known, accepted legacy
// constraint of the sink, not something to fix here silently.
func asciiOnly(s string) string {
    var b strings.Builder
    b.Grow(len(s))
    for _, r := range s {
        if r <= 0x7F {
            b.WriteRune(r)
        }
    }
    return b.String()
}

// toSinkCharset re-encodes sanitized text into the sink's legacy
// single-byte charset (ISO-8859-1). After the ASCII strip this never fails,
// but the step stays explicit so the two policies can diverge later.
func toSinkCharset(s string) (string, error) {
    return charmap.ISO8859_1.NewEncoder().String(s)
}

// SanitizeBody applies the full sanitize-then-transcode policy.
func SanitizeBody(s string) (string, error) {
    return toSinkCharset(asciiOnly(s))
}
