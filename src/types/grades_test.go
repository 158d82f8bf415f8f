package types

import (
	"errors"
	"testing"
)

func TestScoreLookup(t *testing.T) {
	r := GradeRecord{Partial1: 1, Partial2: 2, Partial3: 3, FinalScore: 2.1}
	cases := []struct {
		field ScoreField
		want  float64
	}{
		{FieldPartial1, 1},
		{FieldPartial2, 2},
		{FieldPartial3, 3},
		{FieldFinalScore, 2.1},
	}
	for _, c := range cases {
		got, err := r.Score(c.field)
		if err != nil {
			t.Fatalf("Score(%s): %v", c.field, err)
		}
		if got != c.want {
			t.Fatalf("Score(%s) = %v want %v", c.field, got, c.want)
		}
	}
	if _, err := r.Score("Nota_Final"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestShortName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Ana", "Gomez", "Ana G."},
		{"  Luis ", " Perez Diaz", "Luis P."},
		{"Oscar", "Ñuñez", "Oscar Ñ."},
		{"Solo", "", "Solo"},
	}
	for _, c := range cases {
		got := GradeRecord{Names: c.first, LastNames: c.last}.ShortName()
		if got != c.want {
			t.Fatalf("ShortName(%q,%q) = %q want %q", c.first, c.last, got, c.want)
		}
	}
}

func TestStatusCountTotal(t *testing.T) {
	sc := StatusCount{StatusApproved: 7, StatusNotApproved: 3}
	if sc.Total() != 10 {
		t.Fatalf("total %d want 10", sc.Total())
	}
	if !KnownStatus(StatusNotApproved) || KnownStatus("Pending") {
		t.Fatalf("KnownStatus mismatch")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(7, 10); got != 70 {
		t.Fatalf("Percent(7,10)=%v", got)
	}
	if got := Percent(0, 3); got != 0 {
		t.Fatalf("Percent(0,3)=%v", got)
	}
}
