package codon

import (
	"errors"
	"testing"
)

func TestStandardTranslate(t *testing.T) {
	cases := []struct {
		codon string
		want  byte
	}{
		{"ATG", 'M'},
		{"TGG", 'W'},
		{"GTT", 'V'},
		{"TAA", '*'},
		{"TAG", '*'},
		{"TGA", '*'},
		{"GGG", 'G'},
		{"AUG", 'M'}, // RNA
		{"uaa", '*'}, // lower-case RNA
		{"atg", 'M'},
		{"NNN", 'X'},
		{"ARG", 'X'}, // ambiguity code
		{"A-G", 'X'},
		{"AT", 'X'}, // incomplete
		{"A", 'X'},
		{"", 'X'},
		{"ATGA", 'X'},
	}
	for _, c := range cases {
		if got := Standard.Translate([]byte(c.codon)); got != c.want {
			t.Errorf("Translate(%q) = %q, want %q", c.codon, got, c.want)
		}
	}
}

// Snapshot: translating all 64 codons in T,C,A,G order reproduces the table.
func TestStandardTable_Snapshot(t *testing.T) {
	want := "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"
	bases := "TCAG"
	got := make([]byte, 0, 64)
	for _, b1 := range []byte(bases) {
		for _, b2 := range []byte(bases) {
			for _, b3 := range []byte(bases) {
				got = append(got, Standard.Translate([]byte{b1, b2, b3}))
			}
		}
	}
	if string(got) != want {
		t.Fatalf("standard table changed:\n got  %s\n want %s", got, want)
	}
}

func TestLookup(t *testing.T) {
	vm, err := Lookup(2)
	if err != nil {
		t.Fatalf("Lookup(2): %v", err)
	}
	if got := vm.Translate([]byte("TGA")); got != 'W' {
		t.Errorf("vertebrate mito TGA = %q, want W", got)
	}
	if got := vm.Translate([]byte("AGA")); got != '*' {
		t.Errorf("vertebrate mito AGA = %q, want *", got)
	}
	if vm.Name != "Vertebrate Mitochondrial" {
		t.Errorf("name = %q", vm.Name)
	}

	if _, err := Lookup(7); !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("Lookup(7) err = %v, want ErrUnknownCode", err)
	}
}

func TestIDsSortedAndComplete(t *testing.T) {
	ids := IDs()
	if len(ids) != len(ncbieaa) {
		t.Fatalf("got %d ids, want %d", len(ids), len(ncbieaa))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}
	if ids[0] != StandardID {
		t.Fatalf("first id = %d, want %d", ids[0], StandardID)
	}
	for _, id := range ids {
		tb, _ := Lookup(id)
		if tb.Name == "" {
			t.Errorf("table %d has no name", id)
		}
	}
}
