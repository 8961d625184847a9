package domain

// Collection names used by the record store. They match the collection
// names of the upstream data set.
const (
	// CollectionMDB holds member records extracted from the master-data
	// roster ("Stammdaten").
	CollectionMDB = "mdb"

	// CollectionDrucksachen holds printed-matter records.
	CollectionDrucksachen = "drucksachen"
)

// Member is the top-level biographical record of a Member of the German
// Bundestag ("MdB"). Nested entities are owned exclusively by the member
// and are immutable once extraction has constructed them.
type Member struct {
	// ID is the member identifier assigned by the Bundestag export.
	ID string `json:"id"`

	// Namen is the name history in document order; the order encodes
	// name changes over time.
	Namen []Name `json:"namen"`

	// BiografischeAngaben holds the biography. The zero value represents
	// a member without biographical data.
	BiografischeAngaben Biography `json:"biografische_angaben"`

	// Wahlperioden lists the electoral terms served, in document order.
	Wahlperioden []TermOfOffice `json:"wahlperioden"`
}

// Name is one entry of a member's name history.
type Name struct {
	// Nachname is the surname.
	Nachname string `json:"nachname"`

	// Vorname is the given name.
	Vorname string `json:"vorname"`

	// Ortszusatz is the locality suffix distinguishing members with
	// identical names.
	Ortszusatz string `json:"ortszusatz"`

	// Adel is the nobility particle.
	Adel string `json:"adel"`

	// Praefix is the name prefix.
	Praefix string `json:"praefix"`

	// AnredeTitel is the salutation title.
	AnredeTitel string `json:"anrede_titel"`

	// AkadTitel is the academic title.
	AkadTitel string `json:"akad_titel"`

	// HistorieVon is the validity-start date of this name entry.
	HistorieVon Date `json:"historie_von"`

	// HistorieBis is the validity-end date; absent for the current name.
	HistorieBis Date `json:"historie_bis"`
}

// Biography holds the biographical details of a member. At most one
// biography exists per member.
type Biography struct {
	// Geburtsdatum is the birth date.
	Geburtsdatum Date `json:"geburtsdatum"`

	// Geburtsort is the birth place.
	Geburtsort string `json:"geburtsort"`

	// Geburtsland is the birth country.
	Geburtsland string `json:"geburtsland"`

	// Sterbedatum is the death date; absent for living members.
	Sterbedatum Date `json:"sterbedatum"`

	// Geschlecht is the gender.
	Geschlecht string `json:"geschlecht"`

	// Familienstand is the marital status, comma-split into entries.
	Familienstand []string `json:"familienstand"`

	// Religion is the religious denomination.
	Religion string `json:"religion"`

	// Beruf lists the professions, comma-split into entries.
	Beruf []string `json:"beruf"`

	// ParteiKurz is the party abbreviation.
	ParteiKurz string `json:"partei_kurz"`

	// VitaKurz is the short biography text.
	VitaKurz string `json:"vita_kurz"`

	// Veroeffentlichungspflichtiges is the disclosure-obligation text.
	Veroeffentlichungspflichtiges string `json:"veroeffentlichungspflichtiges"`
}

// IsZero reports whether the biography is the empty default record.
func (b Biography) IsZero() bool {
	return !b.Geburtsdatum.Valid && b.Geburtsdatum.Raw == "" &&
		b.Geburtsort == "" && b.Geburtsland == "" &&
		!b.Sterbedatum.Valid && b.Sterbedatum.Raw == "" &&
		b.Geschlecht == "" && len(b.Familienstand) == 0 &&
		b.Religion == "" && len(b.Beruf) == 0 &&
		b.ParteiKurz == "" && b.VitaKurz == "" &&
		b.Veroeffentlichungspflichtiges == ""
}

// TermOfOffice is one electoral term ("Wahlperiode") served by a member.
type TermOfOffice struct {
	// WP is the electoral-term identifier.
	WP string `json:"wp"`

	// MdbWPVon is the membership-start date within the term.
	MdbWPVon Date `json:"mdbwp_von"`

	// MdbWPBis is the membership-end date within the term.
	MdbWPBis Date `json:"mdbwp_bis"`

	// WkrNummer is the constituency number.
	WkrNummer string `json:"wkr_nummer"`

	// WkrName is the constituency name.
	WkrName string `json:"wkr_name"`

	// WkrLand is the constituency state.
	WkrLand string `json:"wkr_land"`

	// Liste is the electoral-list type.
	Liste string `json:"liste"`

	// Mandatsart is the mandate type.
	Mandatsart string `json:"mandatsart"`

	// Institutionen lists roles held during the term, in document order.
	Institutionen []Institution `json:"institutionen"`
}

// Institution is an organisational role or function held during a term
// of office. It belongs to exactly one TermOfOffice.
type Institution struct {
	// InsArtLang is the institution type.
	InsArtLang string `json:"insart_lang"`

	// InsLang is the institution name.
	InsLang string `json:"ins_lang"`

	// MdbInsVon is the membership-start date.
	MdbInsVon Date `json:"mdbins_von"`

	// MdbInsBis is the membership-end date.
	MdbInsBis Date `json:"mdbins_bis"`

	// FktLang is the function name.
	FktLang string `json:"fkt_lang"`

	// FktInsVon is the function-start date.
	FktInsVon Date `json:"fktins_von"`

	// FktInsBis is the function-end date.
	FktInsBis Date `json:"fktins_bis"`
}
