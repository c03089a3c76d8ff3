package wxhtml

import (
	"fmt"

	"golang.org/x/net/html"
)

// Kind is the type of an [Event].
type Kind int

// Kinds of events in a tag stream.
const (
	StartTag Kind = iota + 1
	EndTag
	Text
	CharRef
	EntityRef
	Comment
	Declaration
	ProcessingInstruction
)

func (k Kind) String() string {
	switch k {
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Text:
		return "Text"
	case CharRef:
		return "CharRef"
	case EntityRef:
		return "EntityRef"
	case Comment:
		return "Comment"
	case Declaration:
		return "Declaration"
	case ProcessingInstruction:
		return "ProcessingInstruction"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single item in a tag stream.
type Event struct {
	Kind Kind

	// Name is the tag name for StartTag and EndTag,
	// the code for CharRef (e.g. "39" or "x27"),
	// and the entity name for EntityRef (e.g. "amp").
	Name string

	// Attrs are the attributes of a StartTag in source order.
	// Values are unescaped.
	Attrs []html.Attribute

	// Data is the content of Text, Comment, Declaration,
	// and ProcessingInstruction events.
	Data string
}
