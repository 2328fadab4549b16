package model

import (
	"errors"
	"testing"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"2", 2, false},
		{"0", 0, false},
		{"+5", 5, false},
		{"2147483647", 2147483647, false},
		{" 2", 0, true},
		{"12 ", 0, true},
		{"3000000000", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"-3", 0, true},
		{"1.5", 0, true},
		{"99999999999999999999999", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseQuantity(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("ParseQuantity(%q) err = %v, want ErrInvalidQuantity", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseQuantity(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestQuantityOrDefault(t *testing.T) {
	if got := QuantityOrDefault("abc"); got != DefaultQuantity {
		t.Errorf("QuantityOrDefault(abc) = %d, want %d", got, DefaultQuantity)
	}
	if got := QuantityOrDefault("7"); got != 7 {
		t.Errorf("QuantityOrDefault(7) = %d, want 7", got)
	}
}
