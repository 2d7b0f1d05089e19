package wallet

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "50", want: "50.00"},
		{input: "20.5", want: "20.50"},
		{input: "0.001", want: "0.00"},
		{input: "1e2", want: "100.00"},
		{input: "0", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "12abc", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: " 5", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "Inf", wantErr: true},
		{input: "1e300", want: "1" + strings.Repeat("0", 300) + ".00"},
		{input: "1e400", wantErr: true},
		{input: "-1e400", wantErr: true},
		{input: "1e-400", wantErr: true},
		{input: "1e100000", wantErr: true},
		{input: "1e2147483647", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		value    Money
		currency string
		want     string
	}{
		{value: M(1234.5), currency: "", want: "1234.50"},
		{value: M(1234.5), currency: "USD", want: "$1,234.50"},
		{value: M(0.005), currency: "USD", want: "$0.01"},
		{value: M(7), currency: "NOPE", want: "7.00"},
	}
	for _, tc := range testCases {
		if got := tc.value.Format(tc.currency); got != tc.want {
			t.Errorf("%s.Format(%q) = %q, want %q", tc.value.Exact(), tc.currency, got, tc.want)
		}
	}
}

func TestKnownCurrency(t *testing.T) {
	if !KnownCurrency("EUR") {
		t.Error("KnownCurrency(EUR) = false")
	}
	if KnownCurrency("NOPE") {
		t.Error("KnownCurrency(NOPE) = true")
	}
}
