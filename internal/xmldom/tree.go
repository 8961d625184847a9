package xmldom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Element is one node of the parsed tree. Children preserve document
// order, which downstream extraction relies on: repeated elements encode
// chronological history in the source data.
type Element struct {
	name     string
	text     string
	children []*Element
}

// Name returns the element's local name.
func (e *Element) Name() string {
	return e.name
}

// Text returns the concatenated text content of the element subtree.
func (e *Element) Text() string {
	var sb strings.Builder
	e.collectText(&sb)
	return sb.String()
}

func (e *Element) collectText(sb *strings.Builder) {
	sb.WriteString(e.text)
	for _, child := range e.children {
		child.collectText(sb)
	}
}

// Children returns the direct child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// FindOne returns the first descendant of root with the given local name,
// in document order, or nil when none exists. The root itself is not a
// candidate. Names are matched case-insensitively by folding to lower case.
func FindOne(root *Element, name string) *Element {
	if root == nil {
		return nil
	}
	name = strings.ToLower(name)
	for _, child := range root.children {
		if child.name == name {
			return child
		}
		if match := FindOne(child, name); match != nil {
			return match
		}
	}
	return nil
}

// FindAll returns every descendant of root with the given local name, in
// document order. The result is empty, never nil-panicking, when nothing
// matches.
func FindAll(root *Element, name string) []*Element {
	if root == nil {
		return nil
	}
	name = strings.ToLower(name)
	var matches []*Element
	for _, child := range root.children {
		if child.name == name {
			matches = append(matches, child)
		}
		matches = append(matches, FindAll(child, name)...)
	}
	return matches
}

// Tree is a parsed XML document. It is read-only after Parse returns.
type Tree struct {
	root *Element
}

// Root returns the document element.
func (t *Tree) Root() *Element {
	return t.root
}

// FindOne searches the whole tree, including the document element itself.
func (t *Tree) FindOne(name string) *Element {
	if t.root != nil && t.root.name == strings.ToLower(name) {
		return t.root
	}
	return FindOne(t.root, name)
}

// FindAll searches the whole tree, including the document element itself.
func (t *Tree) FindAll(name string) []*Element {
	var matches []*Element
	if t.root != nil && t.root.name == strings.ToLower(name) {
		matches = append(matches, t.root)
	}
	return append(matches, FindAll(t.root, name)...)
}

// Parse builds a Tree from XML input. The decoder runs in non-strict mode
// because the historical exports are not always well-formed XML; entity
// and encoding quirks should not fail the whole file.
func Parse(r io.Reader) (*Tree, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	var stack []*Element
	var root *Element
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			// The historical exports spell element names in upper case
			// while newer ones use lower case. Names are folded so
			// lookups work against either vintage.
			elem := &Element{name: strings.ToLower(t.Name.Local)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text += string(t)
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}

	return &Tree{root: root}, nil
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
