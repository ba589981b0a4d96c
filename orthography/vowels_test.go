package orthography

import (
	"errors"
	"testing"
)

func TestDevanagariVowels_Shape(t *testing.T) {
	if got, want := DevanagariVowels.Rows(), 2; got != want {
		t.Fatalf("rows=%d, want %d", got, want)
	}
	if got, want := DevanagariVowels.RowLen(0), 9; got != want {
		t.Fatalf("row 0 len=%d, want %d", got, want)
	}
	if got, want := DevanagariVowels.RowLen(1), 7; got != want {
		t.Fatalf("row 1 len=%d, want %d", got, want)
	}

	p, ok := DevanagariVowels.Lookup(0, 0)
	if !ok || p.Independent != "अ" || p.Matra != string(Virama) {
		t.Fatalf("inherent vowel pair=%+v ok=%v, want अ/virama", p, ok)
	}
	p, ok = DevanagariVowels.Lookup(1, 5)
	if !ok || p.Independent != "ऐॅ" || p.Matra != "ॅ" {
		t.Fatalf("candra ai pair=%+v ok=%v", p, ok)
	}
}

func TestVowelTable_LookupOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {0, 9}, {1, 7}, {2, 0}}
	for _, c := range cases {
		if _, ok := DevanagariVowels.Lookup(c[0], c[1]); ok {
			t.Fatalf("Lookup(%d, %d) ok, want miss", c[0], c[1])
		}
	}
	if got := DevanagariVowels.RowLen(5); got != 0 {
		t.Fatalf("RowLen(5)=%d, want 0", got)
	}
}

func TestVowelTable_Find(t *testing.T) {
	row, idx, ok := DevanagariVowels.Find("ओ")
	if !ok || row != 1 || idx != 3 {
		t.Fatalf("Find(ओ)=%d,%d,%v, want 1,3,true", row, idx, ok)
	}
	if _, _, ok := DevanagariVowels.Find("क"); ok {
		t.Fatalf("Find(क) ok, want miss")
	}
}

func TestNewVowelTable_Rejects(t *testing.T) {
	cases := []struct {
		name string
		rows [][]VowelPair
		want error
	}{
		{name: "no rows", rows: nil, want: ErrEmptyVowelTable},
		{name: "missing matra", rows: [][]VowelPair{{{Independent: "इ"}}}, want: ErrEmptyGlyph},
		{name: "missing independent", rows: [][]VowelPair{{{Matra: "ि"}}}, want: ErrEmptyGlyph},
		{
			name: "duplicate independent",
			rows: [][]VowelPair{{{Independent: "इ", Matra: "ि"}}, {{Independent: "इ", Matra: "ी"}}},
			want: ErrDuplicateVowel,
		},
		{
			name: "duplicate matra",
			rows: [][]VowelPair{{{Independent: "इ", Matra: "ि"}, {Independent: "ई", Matra: "ि"}}},
			want: ErrDuplicateVowel,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewVowelTable(tc.rows...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestMustVowelTable_PanicsOnMalformed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustVowelTable([]VowelPair{{Independent: "इ"}})
}
