package extract

import (
	"strings"

	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/xmldom"
)

// Field helpers encode the three multiplicities of the schema. Builders
// compose these per declared field instead of touching the DOM directly.

// requiredText reads an exactly-one text field scoped to root.
func requiredText(root *xmldom.Element, record, name string) (string, error) {
	element := xmldom.FindOne(root, name)
	if element == nil {
		return "", &domain.RequiredElementMissingError{Record: record, Element: name}
	}
	return element.Text(), nil
}

// optionalText reads a zero-or-one text field, defaulting to "".
func optionalText(root *xmldom.Element, name string) string {
	element := xmldom.FindOne(root, name)
	if element == nil {
		return ""
	}
	return element.Text()
}

// requiredDate reads an exactly-one date field and normalises its text.
// The element must exist; its text may still denote an absent date.
func requiredDate(root *xmldom.Element, record, name string) (domain.Date, error) {
	text, err := requiredText(root, record, name)
	if err != nil {
		return domain.Date{}, err
	}
	return NormalizeDate(name, text)
}

// requiredList reads an exactly-one comma-list field.
func requiredList(root *xmldom.Element, record, name string) ([]string, error) {
	text, err := requiredText(root, record, name)
	if err != nil {
		return nil, err
	}
	return splitList(text), nil
}

// splitList splits comma-separated text into trimmed entries, dropping
// empty ones. "verheiratet,1 Kind" becomes ["verheiratet", "1 Kind"].
func splitList(text string) []string {
	var entries []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

// allTexts reads a zero-or-many text field: every matching descendant's
// text, in document order.
func allTexts(root *xmldom.Element, name string) []string {
	elements := xmldom.FindAll(root, name)
	texts := make([]string, 0, len(elements))
	for _, element := range elements {
		texts = append(texts, element.Text())
	}
	return texts
}
