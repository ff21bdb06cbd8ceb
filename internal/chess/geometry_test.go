package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", Sq(0, 0), false},
		{"h1", Sq(7, 7), false},
		{"e4", Sq(4, 4), false},
		{"d5", Sq(3, 3), false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"a", NoSquare, true},
		{"e44", NoSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestLinePredicates(t *testing.T) {
	a1, a8, h8, c3, d5 := MustParseSquare("a1"), MustParseSquare("a8"), MustParseSquare("h8"), MustParseSquare("c3"), MustParseSquare("d5")

	if !SameFile(a1, a8) || SameFile(a1, h8) {
		t.Error("SameFile wrong")
	}
	if !SameRank(a8, h8) || SameRank(a1, h8) {
		t.Error("SameRank wrong")
	}
	if !SameDiagonal(a1, h8) || SameDiagonal(c3, d5) {
		t.Error("SameDiagonal wrong")
	}
	if got := Distance(a1, h8); got != 7 {
		t.Errorf("Distance(a1, h8) = %d; want 7", got)
	}
	if got := Distance(c3, d5); got != 2 {
		t.Errorf("Distance(c3, d5) = %d; want 2", got)
	}
	if got := DiagonalDistance(a1, c3); got != 2 {
		t.Errorf("DiagonalDistance(a1, c3) = %d; want 2", got)
	}
	if got := DiagonalDistance(c3, d5); got != -1 {
		t.Errorf("DiagonalDistance(c3, d5) = %d; want -1", got)
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{"file", "a1", "a4", []string{"a2", "a3"}},
		{"rank reversed", "h8", "e8", []string{"g8", "f8"}},
		{"diagonal", "c1", "f4", []string{"d2", "e3"}},
		{"adjacent", "e4", "e5", nil},
		{"knight jump", "g1", "f3", nil},
		{"same square", "d4", "d4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, sq := range Between(MustParseSquare(tt.from), MustParseSquare(tt.to)) {
				got = append(got, sq.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Between(%s, %s) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}

func TestPathClear(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "a2", true},  // adjacent
		{"a1", "a3", false}, // pawn on a2
		{"a3", "a6", true},  // empty file
		{"c1", "e3", false}, // d2 pawn
		{"b1", "c3", false}, // no shared line
		{"a3", "h3", true},
	}

	for _, tt := range tests {
		t.Run(tt.from+tt.to, func(t *testing.T) {
			if got := b.PathClear(MustParseSquare(tt.from), MustParseSquare(tt.to)); got != tt.want {
				t.Errorf("PathClear(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
