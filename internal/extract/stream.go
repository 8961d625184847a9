package extract

import (
	"fmt"
	"iter"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/xmldom"
)

// Stream produces the top-level records of one parsed tree, lazily and in
// document order. A stream is finite and single-use: it consumes the tree
// once and cannot be restarted.
//
// For the member-roster schema the stream yields one record per mdb
// element; a roster without mdb elements yields nothing. For the
// printed-matter schema it yields exactly the one dokument record, or
// EmptyInputError when the element is absent.
type Stream struct {
	tree     *xmldom.Tree
	schema   domain.Schema
	consumed bool
}

// NewStream creates a record stream over a parsed tree.
func NewStream(tree *xmldom.Tree, schema domain.Schema) *Stream {
	return &Stream{tree: tree, schema: schema}
}

// Schema returns the schema the stream extracts.
func (s *Stream) Schema() domain.Schema {
	return s.schema
}

// Version reads the roster's schema-version element. It is mandatory for
// the member-roster schema; the printed-matter schema carries none and
// yields the empty string.
func (s *Stream) Version() (string, error) {
	if s.schema != domain.SchemaMDB {
		return "", nil
	}
	element := s.tree.FindOne("version")
	if element == nil {
		return "", &domain.RequiredElementMissingError{Record: "stammdaten", Element: "version"}
	}
	return element.Text(), nil
}

// Records returns the record sequence. Records are built on demand, one
// per yield. A malformed top-level element yields its error at that
// element's position instead of being skipped; the consumer decides
// whether to abort the file or continue with the next element.
func (s *Stream) Records() iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		if s.consumed {
			yield(nil, domain.ErrStreamConsumed)
			return
		}
		s.consumed = true

		switch s.schema {
		case domain.SchemaDrucksache:
			doc, err := BuildDrucksache(s.tree)
			if err != nil {
				yield(nil, err)
				return
			}
			yield(doc, nil)

		default:
			for position, element := range s.tree.FindAll("mdb") {
				member, err := BuildMember(element)
				if err != nil {
					if !yield(nil, fmt.Errorf("mdb element %d: %w", position, err)) {
						return
					}
					continue
				}
				if !yield(member, nil) {
					return
				}
			}
		}
	}
}
