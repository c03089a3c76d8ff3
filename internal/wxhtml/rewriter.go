package wxhtml

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"golang.org/x/net/html"
)

var (
	// ErrUnbalancedSpan indicates a </span> with no open span.
	ErrUnbalancedSpan = errors.New("end of span without a matching start")

	// ErrUnclosedSpan indicates spans still open at the end of input.
	ErrUnclosedSpan = errors.New("span left open at end of input")
)

// Rewriter converts a tag stream with style spans
// into one that uses <font>, <b>, and <i> instead.
//
// A Rewriter handles a single conversion.
// The zero value is ready to use.
type Rewriter struct {
	out strings.Builder

	// One entry per open span:
	// the closing tags for that span, innermost first.
	stack [][]string
}

// Write feeds the next event into the rewriter.
func (r *Rewriter) Write(ev Event) error {
	switch ev.Kind {
	case StartTag:
		if isSpan(ev.Name) {
			r.openSpan(ev.Attrs)
			return nil
		}

		r.out.WriteByte('<')
		r.out.WriteString(ev.Name)
		for _, attr := range ev.Attrs {
			fmt.Fprintf(&r.out, ` %s="%s"`, attr.Key, Escape(attr.Val))
		}
		r.out.WriteByte('>')

	case EndTag:
		if isSpan(ev.Name) {
			return r.closeSpan()
		}

		r.out.WriteString("</")
		r.out.WriteString(ev.Name)
		r.out.WriteByte('>')

	case Text:
		r.out.WriteString(ev.Data)

	case CharRef:
		r.out.WriteString("&#")
		r.out.WriteString(ev.Name)
		r.out.WriteByte(';')

	case EntityRef:
		r.out.WriteByte('&')
		r.out.WriteString(ev.Name)
		r.out.WriteByte(';')

	case Comment, Declaration, ProcessingInstruction:
		// dropped

	default:
		return errtrace.Wrap(fmt.Errorf("unknown event kind %v", ev.Kind))
	}

	return nil
}

// Close reports an error if any span was left open.
func (r *Rewriter) Close() error {
	if n := len(r.stack); n > 0 {
		return errtrace.Wrap(fmt.Errorf("%w: %d open", ErrUnclosedSpan, n))
	}
	return nil
}

// String returns the output produced so far.
func (r *Rewriter) String() string {
	return r.out.String()
}

func (r *Rewriter) openSpan(attrs []html.Attribute) {
	var closers []string
	for _, attr := range attrs {
		if !strings.EqualFold(attr.Key, "style") {
			continue
		}

		for _, decl := range strings.Split(strings.ToLower(attr.Val), ";") {
			prop, val, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			prop, val = strings.TrimSpace(prop), strings.TrimSpace(val)

			switch prop {
			case "color":
				r.out.WriteString(`<font color="`)
				r.out.WriteString(Escape(val))
				r.out.WriteString(`">`)
				closers = append(closers, "</font>")
			case "font-weight":
				if val == "bold" {
					r.out.WriteString("<b>")
					closers = append(closers, "</b>")
				}
			case "font-style":
				if val == "italic" {
					r.out.WriteString("<i>")
					closers = append(closers, "</i>")
				}
			}
		}
	}

	slices.Reverse(closers)
	r.stack = append(r.stack, closers)
}

func (r *Rewriter) closeSpan() error {
	n := len(r.stack)
	if n == 0 {
		return errtrace.Wrap(ErrUnbalancedSpan)
	}

	closers := r.stack[n-1]
	r.stack = r.stack[:n-1]
	for _, c := range closers {
		r.out.WriteString(c)
	}
	return nil
}

func isSpan(name string) bool {
	return strings.EqualFold(name, "span")
}

// Convert rewrites a complete HTML fragment.
func Convert(src string) (string, error) {
	events, err := Tokenize(src)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var r Rewriter
	for _, ev := range events {
		if err := r.Write(ev); err != nil {
			return "", errtrace.Wrap(err)
		}
	}
	if err := r.Close(); err != nil {
		return "", errtrace.Wrap(err)
	}
	return r.String(), nil
}
