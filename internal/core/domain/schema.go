package domain

import "errors"

// Schema identifies which of the two fixed Bundestag export schemas an
// input tree follows.
type Schema string

const (
	// SchemaMDB is the member-roster schema: a version element and
	// repeated mdb elements.
	SchemaMDB Schema = "mdb"

	// SchemaDrucksache is the printed-matter schema: a single dokument
	// element.
	SchemaDrucksache Schema = "drucksache"
)

// Collection returns the record-store collection records of this schema
// are written to.
func (s Schema) Collection() string {
	if s == SchemaDrucksache {
		return CollectionDrucksachen
	}
	return CollectionMDB
}

// ParseSchema maps user input to a Schema.
func ParseSchema(value string) (Schema, error) {
	switch value {
	case string(SchemaMDB), "stammdaten":
		return SchemaMDB, nil
	case string(SchemaDrucksache), "drucksachen":
		return SchemaDrucksache, nil
	default:
		return "", errors.New("unknown schema: " + value)
	}
}

// ErrStreamConsumed indicates a second pass over a single-use record
// stream. Streams consume their parsed tree once and are not restartable.
var ErrStreamConsumed = errors.New("record stream already consumed")
