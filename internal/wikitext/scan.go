// Package wikitext finds insertions in wiki page text.
//
// An insertion has the form
//
//	[:key:value;appendix;appendix]
//
// The value may be quoted with a run of identical quote characters
// (any of " ' / \), in which case it may contain ";" and "]":
//
//	[:pc:///
//	print("hi")
//	:::lang=Python///]
package wikitext

import (
	"strings"

	"braces.dev/errtrace"
)

const _quoteChars = `"'/\`

// Insertion is a single insertion found in a page.
type Insertion struct {
	// Key names the handler for this insertion.
	Key string

	// Value is the text after the key, without quotes.
	Value string

	// Appendices holds the trimmed ";"-separated items after the value.
	Appendices []string

	// Start and End are the byte offsets of the insertion in the page.
	// page[Start:End] is the full "[:...]" text.
	Start, End int
}

// Scan returns all well-formed insertions in page, in order.
// Malformed insertions are treated as plain text.
func Scan(page string) []Insertion {
	var (
		ins []Insertion
		pos int
	)
	for {
		idx := strings.Index(page[pos:], "[:")
		if idx < 0 {
			return ins
		}
		start := pos + idx

		in, ok := scanInsertion(page, start)
		if !ok {
			pos = start + 2
			continue
		}
		ins = append(ins, in)
		pos = in.End
	}
}

// scanInsertion parses an insertion starting at page[start:],
// which begins with "[:".
func scanInsertion(page string, start int) (Insertion, bool) {
	pos := start + 2

	keyEnd := pos
	for keyEnd < len(page) && isKeyChar(page[keyEnd]) {
		keyEnd++
	}
	if keyEnd == pos || keyEnd >= len(page) || page[keyEnd] != ':' {
		return Insertion{}, false
	}
	in := Insertion{Key: page[pos:keyEnd], Start: start}
	pos = keyEnd + 1

	for pos < len(page) && page[pos] == ' ' {
		pos++
	}
	if pos >= len(page) {
		return Insertion{}, false
	}

	if strings.IndexByte(_quoteChars, page[pos]) >= 0 {
		q := page[pos]
		n := 0
		for pos+n < len(page) && page[pos+n] == q {
			n++
		}
		quote := page[pos : pos+n]
		pos += n

		end := strings.Index(page[pos:], quote)
		if end < 0 {
			return Insertion{}, false
		}
		in.Value = page[pos : pos+end]
		pos += end + n
	} else {
		end := strings.IndexAny(page[pos:], ";]")
		if end < 0 {
			return Insertion{}, false
		}
		in.Value = strings.TrimSpace(page[pos : pos+end])
		pos += end
	}

	for pos < len(page) && page[pos] == ';' {
		pos++
		end := strings.IndexAny(page[pos:], ";]")
		if end < 0 {
			return Insertion{}, false
		}
		in.Appendices = append(in.Appendices, strings.TrimSpace(page[pos:pos+end]))
		pos += end
	}

	if pos >= len(page) || page[pos] != ']' {
		return Insertion{}, false
	}
	in.End = pos + 1
	return in, true
}

func isKeyChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// Replace calls fn for every insertion in page with the given key
// and replaces the insertion with its result.
// Other insertions are left untouched.
//
// Replace stops at the first error returned by fn.
func Replace(page, key string, fn func(Insertion) (string, error)) (string, error) {
	var (
		out  strings.Builder
		last int
	)
	for _, in := range Scan(page) {
		if in.Key != key {
			continue
		}

		repl, err := fn(in)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		out.WriteString(page[last:in.Start])
		out.WriteString(repl)
		last = in.End
	}
	out.WriteString(page[last:])
	return out.String(), nil
}
