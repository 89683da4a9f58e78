// pkg/api/server_v1.go
package api

// RecordV1 is one input sequence sent to the HTTP service.
type RecordV1 struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
	// ReadLength is the source read length of an amino-acid record that came
	// from /translate (TranslationV1.ReadLength); 0 when unknown.
	ReadLength int `json:"read_length,omitempty"`
}

// ScanRequestV1 is the body of POST /translate and POST /orfs.
// Omitted fields fall back to the server defaults (--type, --genetic-code,
// --min-orf-length, --allow-open-orfs given to `orfscan serve`). An explicit
// "min_orf_length": 0 or "allow_open_orfs": false overrides the default.
type ScanRequestV1 struct {
	Type          string     `json:"type,omitempty"`
	GeneticCode   int        `json:"genetic_code,omitempty"`
	MinORFLength  *int       `json:"min_orf_length,omitempty"`
	AllowOpenORFs *bool      `json:"allow_open_orfs,omitempty"`
	Records       []RecordV1 `json:"records"`
}

type TranslateResponseV1 struct {
	Translations []TranslationV1 `json:"translations"`
}

type ORFsResponseV1 struct {
	ORFs []ORFV1 `json:"orfs"`
}

// GeneticCodeV1 describes one available codon table.
type GeneticCodeV1 struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ErrorV1 is returned with every non-2xx response.
type ErrorV1 struct {
	Error    string `json:"error"`
	RecordID string `json:"record_id,omitempty"`
}
