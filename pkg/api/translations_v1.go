// pkg/api/translations_v1.go
package api

// TranslationV1 is the stable JSON/JSONL schema for one reading frame.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TranslationV1 struct {
	ID         string `json:"id"`      // read id + "-" + label
	ReadID     string `json:"read_id"`
	Label      string `json:"label"`   // "frame0" ... "frame2rc"
	Frame      int    `json:"frame"`
	Strand     string `json:"strand"`  // "forward" | "revcomp"
	Length     int    `json:"length"`
	ReadLength int    `json:"read_length"`
	Seq        string `json:"seq"`
}
