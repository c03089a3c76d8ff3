package wxhtml

import (
	"errors"
	"io"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
)

// Tokenize splits an HTML fragment into a tag stream.
//
// Text keeps its original escaping:
// character and entity references become CharRef and EntityRef events
// instead of being decoded.
// Self-closing tags produce a StartTag followed by an EndTag.
func Tokenize(src string) ([]Event, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	var events []Event
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, errtrace.Wrap(err)
			}
			return events, nil

		case html.TextToken:
			events = appendText(events, string(z.Raw()))

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			events = append(events, Event{
				Kind:  StartTag,
				Name:  tok.Data,
				Attrs: tok.Attr,
			})
			if tt == html.SelfClosingTagToken {
				events = append(events, Event{Kind: EndTag, Name: tok.Data})
			}

		case html.EndTagToken:
			tok := z.Token()
			events = append(events, Event{Kind: EndTag, Name: tok.Data})

		case html.CommentToken:
			tok := z.Token()
			// The tokenizer reports "<?...>" as a bogus comment.
			if pi, ok := strings.CutPrefix(tok.Data, "?"); ok {
				events = append(events, Event{Kind: ProcessingInstruction, Data: pi})
			} else {
				events = append(events, Event{Kind: Comment, Data: tok.Data})
			}

		case html.DoctypeToken:
			tok := z.Token()
			events = append(events, Event{Kind: Declaration, Data: tok.Data})
		}
	}
}

// appendText splits raw text into Text, CharRef, and EntityRef events.
func appendText(events []Event, raw string) []Event {
	for len(raw) > 0 {
		idx := strings.IndexByte(raw, '&')
		if idx < 0 {
			return appendData(events, raw)
		}

		ev, n, ok := parseReference(raw[idx:])
		if !ok {
			// A bare '&' is plain text.
			events = appendData(events, raw[:idx+1])
			raw = raw[idx+1:]
			continue
		}

		events = appendData(events, raw[:idx])
		events = append(events, ev)
		raw = raw[idx+n:]
	}
	return events
}

// appendData adds text, merging it into a preceding Text event.
func appendData(events []Event, s string) []Event {
	if len(s) == 0 {
		return events
	}
	if n := len(events); n > 0 && events[n-1].Kind == Text {
		events[n-1].Data += s
		return events
	}
	return append(events, Event{Kind: Text, Data: s})
}

// parseReference parses "&#123;", "&#x7b;", or "&name;"
// at the start of s, reporting the number of bytes consumed.
func parseReference(s string) (_ Event, n int, ok bool) {
	kind := EntityRef
	i := 1 // skip '&'
	isNameByte := isAlnum
	if strings.HasPrefix(s[i:], "#") {
		kind = CharRef
		i++
		isNameByte = isDigit
		if i < len(s) && (s[i] == 'x' || s[i] == 'X') {
			i++
			isNameByte = isHexDigit
		}
	} else if i >= len(s) || !isAlpha(s[i]) {
		return Event{}, 0, false
	}

	start := i
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	if i == start || i >= len(s) || s[i] != ';' {
		return Event{}, 0, false
	}

	name := s[1:i]
	if kind == CharRef {
		name = s[2:i]
	}
	return Event{Kind: kind, Name: name}, i + 1, true
}

func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
