package domain

// Drucksache is a parliamentary printed-matter record (bill, motion,
// report). Each input tree yields exactly one Drucksache.
type Drucksache struct {
	// Wahlperiode is the electoral term the document belongs to.
	Wahlperiode string `json:"wahlperiode"`

	// Dokumentart is the document type.
	Dokumentart string `json:"dokumentart"`

	// DrsTyp is the printed-matter sub-type; empty when the export
	// carries none.
	DrsTyp string `json:"drs_typ"`

	// Nr is the document number.
	Nr string `json:"nr"`

	// Datum is the publication date.
	Datum Date `json:"datum"`

	// Titel is the document title; empty when the export carries none.
	Titel string `json:"titel"`

	// Urheber lists the corporate authors in document order.
	Urheber []string `json:"urheber"`

	// Autoren lists the personal authors in document order.
	Autoren []string `json:"autoren"`

	// Text is the full document text.
	Text string `json:"text"`
}
