// pkg/api/orfs_v1.go
package api

// ORFV1 is the stable JSON/JSONL schema for one located ORF.
// Label, Frame and Strand are empty for amino-acid input.
type ORFV1 struct {
	ID       string `json:"id"` // read id [+ "-" + label] + "-" + notation
	ReadID   string `json:"read_id"`
	Label    string `json:"label,omitempty"`
	Frame    *int   `json:"frame,omitempty"`
	Strand   string `json:"strand,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Length   int    `json:"length"`
	Left     string `json:"left"`  // "open" | "closed"
	Right    string `json:"right"` // "open" | "closed"
	Notation string `json:"notation"`
	Seq      string `json:"seq"`
}
