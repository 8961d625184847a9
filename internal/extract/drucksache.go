package extract

import (
	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/xmldom"
)

// BuildDrucksache constructs the single printed-matter record of an input
// tree. A tree without a dokument element fails with EmptyInputError
// because exactly one document is mandatory for this schema.
func BuildDrucksache(tree *xmldom.Tree) (*domain.Drucksache, error) {
	element := tree.FindOne("dokument")
	if element == nil {
		return nil, &domain.EmptyInputError{Schema: "dokument"}
	}
	return buildDrucksache(element)
}

func buildDrucksache(element *xmldom.Element) (*domain.Drucksache, error) {
	const record = "dokument"
	var doc domain.Drucksache
	var err error

	if doc.Wahlperiode, err = requiredText(element, record, "wahlperiode"); err != nil {
		return nil, err
	}
	if doc.Dokumentart, err = requiredText(element, record, "dokumentart"); err != nil {
		return nil, err
	}
	doc.DrsTyp = optionalText(element, "drs_typ")
	if doc.Nr, err = requiredText(element, record, "nr"); err != nil {
		return nil, err
	}
	if doc.Datum, err = requiredDate(element, record, "datum"); err != nil {
		return nil, err
	}
	doc.Titel = optionalText(element, "titel")
	doc.Urheber = allTexts(element, "urheber")
	doc.Autoren = allTexts(element, "autor")
	if doc.Text, err = requiredText(element, record, "text"); err != nil {
		return nil, err
	}

	return &doc, nil
}
