// Package extract turns parsed Bundestag XML trees into domain records.
//
// One builder exists per record shape (name, biography, institution, term
// of office, member, printed matter). Each builder declares the
// multiplicity of every field it reads: exactly-one fields fail the record
// when absent, zero-or-one fields fall back to a documented default, and
// zero-or-many fields yield an empty ordered slice. Date fields are routed
// through the DD.MM.YYYY normaliser. Extraction is synchronous, CPU-bound
// and free of side effects; all failures surface as typed domain errors.
package extract
