package wxhtml

import "strings"

// "&" is replaced in the same pass as everything else,
// so the entities produced for the other characters
// are never escaped a second time.
var _escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Escape escapes s for use inside a double-quoted attribute value.
func Escape(s string) string {
	return _escaper.Replace(s)
}
