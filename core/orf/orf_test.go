package orf

import (
	"testing"
)

func TestLocate(t *testing.T) {
	cases := []struct {
		name    string
		aa      string
		left    Boundary
		opts    Options
		want    string // notation, "" when nothing qualifies
		wantLen int
	}{
		{"no stop closed left", "VTMNX", Closed, Options{}, "[0:5)", 5},
		{"stop open left", "LQ*M", Open, Options{}, "(0:2]", 2},
		{"rc stop", "HSL*X", Open, Options{}, "(0:3]", 3},
		{"both closed", "SASPLCQMYTDTFPAPALA*KQN*QLFFX", Closed, Options{}, "[0:19]", 19},
		{"below min, closed", "SASPLCQMYTDTFPAPALA*KQN*QLFFX", Closed, Options{MinLength: 20}, "", 0},
		{"below min, closed, allowOpen", "SASPLCQMYTDTFPAPALA*KQN*QLFFX", Closed, Options{MinLength: 20, AllowOpen: true}, "", 0},
		{"both open long enough", "QPHRCVKCTQILFRLQRWHENKINNYFLX", Open, Options{MinLength: 20}, "(0:29)", 29},
		{"both open short, no allow", "IHCN", Open, Options{MinLength: 20}, "", 0},
		{"both open short, allow", "IHCN", Open, Options{MinLength: 20, AllowOpen: true}, "(0:4)", 4},
		{"one closed short, allow", "IHC*", Open, Options{MinLength: 20, AllowOpen: true}, "", 0},
		{"exact min", "ABCDE*", Closed, Options{MinLength: 5}, "[0:5]", 5},
		{"leading stop", "*MKV", Closed, Options{}, "", 0},
		{"leading stop, open left", "*M", Open, Options{MinLength: 0, AllowOpen: true}, "", 0},
		{"empty", "", Open, Options{AllowOpen: true}, "", 0},
		{"second stop ignored", "MK*LL*", Closed, Options{}, "[0:2]", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			iv, ok := Locate([]byte(c.aa), c.left, c.opts)
			if c.want == "" {
				if ok {
					t.Fatalf("expected nothing, got %s", iv.Notation())
				}
				return
			}
			if !ok {
				t.Fatalf("expected %s, got nothing", c.want)
			}
			if iv.Notation() != c.want || iv.Len() != c.wantLen {
				t.Fatalf("got %s len %d, want %s len %d", iv.Notation(), iv.Len(), c.want, c.wantLen)
			}
			if iv.Start < 0 || iv.Start > iv.End || iv.End > len(c.aa) {
				t.Fatalf("interval out of range: %+v", iv)
			}
		})
	}
}

func TestCandidate_RightBoundaryProperties(t *testing.T) {
	for _, aa := range []string{"", "M", "MK*", "*", "XXXX", "AB*CD*", "LQ*M"} {
		iv := Candidate([]byte(aa), Open)
		stop := -1
		for i := range aa {
			if aa[i] == '*' {
				stop = i
				break
			}
		}
		if stop >= 0 {
			if iv.Right != Closed || iv.End != stop {
				t.Errorf("%q: want closed end %d, got %s", aa, stop, iv.Notation())
			}
		} else if iv.Right != Open || iv.End != len(aa) {
			t.Errorf("%q: want open end %d, got %s", aa, len(aa), iv.Notation())
		}
	}
}

func TestNotation(t *testing.T) {
	cases := map[string]Interval{
		"[0:5)":   {0, 5, Closed, Open},
		"(0:2]":   {0, 2, Open, Closed},
		"(3:29)":  {3, 29, Open, Open},
		"[10:12]": {10, 12, Closed, Closed},
	}
	for want, iv := range cases {
		if got := iv.Notation(); got != want {
			t.Errorf("Notation(%+v) = %s, want %s", iv, got, want)
		}
	}
	if Open.String() != "open" || Closed.String() != "closed" {
		t.Fatal("boundary names changed")
	}
}
