package entities

import (
	"errors"
	"testing"
)

func TestParseAmountValue(t *testing.T) {
	if _, err := ParseAmountValue(nil); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("expected ErrAmountRequired, got %v", err)
	}
	if _, err := ParseAmountValue("   "); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("expected ErrAmountRequired for blank string, got %v", err)
	}
	if _, err := ParseAmountValue("abc"); !errors.Is(err, ErrAmountNotNumeric) {
		t.Fatalf("expected ErrAmountNotNumeric, got %v", err)
	}
	if _, err := ParseAmountValue(map[string]any{}); !errors.Is(err, ErrAmountNotNumeric) {
		t.Fatalf("expected ErrAmountNotNumeric for object, got %v", err)
	}

	got, err := ParseAmountValue(19.9)
	if err != nil || got != 19.9 {
		t.Fatalf("expected 19.9, got %v err=%v", got, err)
	}
	got, err = ParseAmountValue("19.9")
	if err != nil || got != 19.9 {
		t.Fatalf("expected 19.9 from string, got %v err=%v", got, err)
	}
	got, err = ParseAmountValue(1500)
	if err != nil || got != 1500 {
		t.Fatalf("expected 1500 from int, got %v err=%v", got, err)
	}
}

func TestNormalizeAmountCents(t *testing.T) {
	cases := []struct {
		value float64
		want  int64
	}{
		// Up to the threshold the value is decimal reais, truncated.
		{19.9, 1990},
		{0.04, 4},
		{1.999, 199},
		{1000, 100000},
		{999.999, 99999},
		// Above the threshold the value already is centavos.
		{1500, 1500},
		{1990.4, 1990},
		{1990.5, 1991},
	}
	for _, tc := range cases {
		if got := NormalizeAmountCents(tc.value); got != tc.want {
			t.Fatalf("NormalizeAmountCents(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestCentsFromDecimal(t *testing.T) {
	cases := []struct {
		value float64
		want  int64
	}{
		// 19.9*100 is 1989.99... in float64; rounding must repair it.
		{19.9, 1990},
		{0.29, 29},
		{1000.01, 100001},
		{0, 0},
	}
	for _, tc := range cases {
		if got := CentsFromDecimal(tc.value); got != tc.want {
			t.Fatalf("CentsFromDecimal(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestFormatAmountBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1990, "19,90"},
		{4, "0,04"},
		{100000, "1000,00"},
		{101, "1,01"},
	}
	for _, tc := range cases {
		if got := FormatAmountBRL(tc.cents); got != tc.want {
			t.Fatalf("FormatAmountBRL(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestAmountDecimal(t *testing.T) {
	if got := AmountDecimal(1990); got != 19.9 {
		t.Fatalf("AmountDecimal(1990) = %v, want 19.9", got)
	}
}
