// Package seq holds the sequence alphabets, strands and the reverse
// complement. It knows nothing about codons or ORFs.
package seq
