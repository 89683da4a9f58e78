package output

// Output formats understood by the writers.
const (
	FormatFASTA = "fasta"
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every format in help-text order.
var Formats = []string{FormatFASTA, FormatText, FormatJSON, FormatJSONL}

// Canonical header rows for text/TSV outputs.
// Keep these as the single source of truth; all writers should use them.
const (
	TranslationTSVHeader = "id\tread_id\tframe\tstrand\tlength\tseq"
	ORFTSVHeader         = "id\tread_id\tframe\tstrand\tstart\tend\tleft\tright\tlength\tseq"
)

// ValidFormat reports whether f names a known output format.
func ValidFormat(f string) bool {
	for _, k := range Formats {
		if f == k {
			return true
		}
	}
	return false
}
