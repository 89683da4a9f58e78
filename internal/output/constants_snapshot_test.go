package output

import "testing"

func TestTSVHeaders_Stable(t *testing.T) {
	const tr = "id\tread_id\tframe\tstrand\tlength\tseq"
	if TranslationTSVHeader != tr {
		t.Fatalf("TranslationTSVHeader changed:\n got:  %q\n want: %q", TranslationTSVHeader, tr)
	}
	const orf = "id\tread_id\tframe\tstrand\tstart\tend\tleft\tright\tlength\tseq"
	if ORFTSVHeader != orf {
		t.Fatalf("ORFTSVHeader changed:\n got:  %q\n want: %q", ORFTSVHeader, orf)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
	for _, f := range Formats {
		if !ValidFormat(f) {
			t.Fatalf("%q not valid", f)
		}
	}
	if ValidFormat("xml") {
		t.Fatal("xml should be rejected")
	}
}
