package extract

import (
	"github.com/meinbt/meinbt-cli/internal/core/domain"
	"github.com/meinbt/meinbt-cli/internal/xmldom"
)

// BuildMember constructs a Member from one mdb element. Any failure in a
// nested builder propagates up and aborts the member; partial records are
// never returned.
func BuildMember(element *xmldom.Element) (*domain.Member, error) {
	id, err := requiredText(element, "mdb", "id")
	if err != nil {
		return nil, err
	}

	names, err := buildNames(element)
	if err != nil {
		return nil, err
	}

	biography, err := buildBiography(element)
	if err != nil {
		return nil, err
	}

	terms, err := buildTerms(element)
	if err != nil {
		return nil, err
	}

	return &domain.Member{
		ID:                  id,
		Namen:               names,
		BiografischeAngaben: biography,
		Wahlperioden:        terms,
	}, nil
}

// buildNames reads the zero-or-one namen container and its zero-or-many
// name children, in document order.
func buildNames(member *xmldom.Element) ([]domain.Name, error) {
	container := xmldom.FindOne(member, "namen")
	if container == nil {
		return nil, nil
	}

	elements := xmldom.FindAll(container, "name")
	names := make([]domain.Name, 0, len(elements))
	for _, element := range elements {
		name, err := buildName(element)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func buildName(element *xmldom.Element) (domain.Name, error) {
	var name domain.Name
	var err error

	if name.Nachname, err = requiredText(element, "name", "nachname"); err != nil {
		return domain.Name{}, err
	}
	if name.Vorname, err = requiredText(element, "name", "vorname"); err != nil {
		return domain.Name{}, err
	}
	if name.Ortszusatz, err = requiredText(element, "name", "ortszusatz"); err != nil {
		return domain.Name{}, err
	}
	if name.Adel, err = requiredText(element, "name", "adel"); err != nil {
		return domain.Name{}, err
	}
	if name.Praefix, err = requiredText(element, "name", "praefix"); err != nil {
		return domain.Name{}, err
	}
	if name.AnredeTitel, err = requiredText(element, "name", "anrede_titel"); err != nil {
		return domain.Name{}, err
	}
	if name.AkadTitel, err = requiredText(element, "name", "akad_titel"); err != nil {
		return domain.Name{}, err
	}
	if name.HistorieVon, err = requiredDate(element, "name", "historie_von"); err != nil {
		return domain.Name{}, err
	}
	if name.HistorieBis, err = requiredDate(element, "name", "historie_bis"); err != nil {
		return domain.Name{}, err
	}

	return name, nil
}

// buildBiography reads the zero-or-one biografische_angaben container.
// An absent container yields the empty default record, never an error.
func buildBiography(member *xmldom.Element) (domain.Biography, error) {
	container := xmldom.FindOne(member, "biografische_angaben")
	if container == nil {
		return domain.Biography{}, nil
	}

	const record = "biografische_angaben"
	var bio domain.Biography
	var err error

	if bio.Geburtsdatum, err = requiredDate(container, record, "geburtsdatum"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Geburtsort, err = requiredText(container, record, "geburtsort"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Geburtsland, err = requiredText(container, record, "geburtsland"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Sterbedatum, err = requiredDate(container, record, "sterbedatum"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Geschlecht, err = requiredText(container, record, "geschlecht"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Familienstand, err = requiredList(container, record, "familienstand"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Religion, err = requiredText(container, record, "religion"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Beruf, err = requiredList(container, record, "beruf"); err != nil {
		return domain.Biography{}, err
	}
	if bio.ParteiKurz, err = requiredText(container, record, "partei_kurz"); err != nil {
		return domain.Biography{}, err
	}
	if bio.VitaKurz, err = requiredText(container, record, "vita_kurz"); err != nil {
		return domain.Biography{}, err
	}
	if bio.Veroeffentlichungspflichtiges, err = requiredText(container, record, "veroeffentlichungspflichtiges"); err != nil {
		return domain.Biography{}, err
	}

	return bio, nil
}

// buildTerms reads the zero-or-one wahlperioden container and its
// zero-or-many wahlperiode children.
func buildTerms(member *xmldom.Element) ([]domain.TermOfOffice, error) {
	container := xmldom.FindOne(member, "wahlperioden")
	if container == nil {
		return nil, nil
	}

	elements := xmldom.FindAll(container, "wahlperiode")
	terms := make([]domain.TermOfOffice, 0, len(elements))
	for _, element := range elements {
		term, err := buildTerm(element)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func buildTerm(element *xmldom.Element) (domain.TermOfOffice, error) {
	const record = "wahlperiode"
	var term domain.TermOfOffice
	var err error

	if term.WP, err = requiredText(element, record, "wp"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.MdbWPVon, err = requiredDate(element, record, "mdbwp_von"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.MdbWPBis, err = requiredDate(element, record, "mdbwp_bis"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.WkrNummer, err = requiredText(element, record, "wkr_nummer"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.WkrName, err = requiredText(element, record, "wkr_name"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.WkrLand, err = requiredText(element, record, "wkr_land"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.Liste, err = requiredText(element, record, "liste"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.Mandatsart, err = requiredText(element, record, "mandatsart"); err != nil {
		return domain.TermOfOffice{}, err
	}
	if term.Institutionen, err = buildInstitutions(element); err != nil {
		return domain.TermOfOffice{}, err
	}

	return term, nil
}

// buildInstitutions reads the zero-or-one institutionen container and its
// zero-or-many institution children.
func buildInstitutions(term *xmldom.Element) ([]domain.Institution, error) {
	container := xmldom.FindOne(term, "institutionen")
	if container == nil {
		return nil, nil
	}

	elements := xmldom.FindAll(container, "institution")
	institutions := make([]domain.Institution, 0, len(elements))
	for _, element := range elements {
		institution, err := buildInstitution(element)
		if err != nil {
			return nil, err
		}
		institutions = append(institutions, institution)
	}
	return institutions, nil
}

func buildInstitution(element *xmldom.Element) (domain.Institution, error) {
	const record = "institution"
	var institution domain.Institution
	var err error

	if institution.InsArtLang, err = requiredText(element, record, "insart_lang"); err != nil {
		return domain.Institution{}, err
	}
	if institution.InsLang, err = requiredText(element, record, "ins_lang"); err != nil {
		return domain.Institution{}, err
	}
	if institution.MdbInsVon, err = requiredDate(element, record, "mdbins_von"); err != nil {
		return domain.Institution{}, err
	}
	if institution.MdbInsBis, err = requiredDate(element, record, "mdbins_bis"); err != nil {
		return domain.Institution{}, err
	}
	if institution.FktLang, err = requiredText(element, record, "fkt_lang"); err != nil {
		return domain.Institution{}, err
	}
	if institution.FktInsVon, err = requiredDate(element, record, "fktins_von"); err != nil {
		return domain.Institution{}, err
	}
	if institution.FktInsBis, err = requiredDate(element, record, "fktins_bis"); err != nil {
		return domain.Institution{}, err
	}

	return institution, nil
}
