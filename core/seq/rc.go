// core/seq/rc.go
package seq

var dnaComplement, rnaComplement [256]byte

func init() {
	for i := range dnaComplement {
		dnaComplement[i] = byte(i)
		rnaComplement[i] = byte(i)
	}
	pair := func(tbl *[256]byte, a, b byte) {
		tbl[a], tbl[b] = b, a
		tbl[a+'a'-'A'], tbl[b+'a'-'A'] = b+'a'-'A', a+'a'-'A'
	}
	for _, tbl := range []*[256]byte{&dnaComplement, &rnaComplement} {
		pair(tbl, 'C', 'G')
		pair(tbl, 'R', 'Y') // A/G <-> C/T
		pair(tbl, 'K', 'M')
		pair(tbl, 'B', 'V')
		pair(tbl, 'D', 'H')
		// S, W and N are their own complements.
	}
	pair(&dnaComplement, 'A', 'T')
	pair(&rnaComplement, 'A', 'U')
}

// ReverseComplement returns the reverse complement of s under a.
// Symbols with no pairing are kept as they are, so the function is an
// involution on any input. AminoAcid uses the DNA table.
func ReverseComplement(a Alphabet, s []byte) []byte {
	tbl := &dnaComplement
	if a == RNA {
		tbl = &rnaComplement
	}
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = tbl[s[n-1-i]]
	}
	return out
}
