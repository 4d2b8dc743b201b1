package orders

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "lower bound", input: "10", want: 10},
		{name: "upper bound", input: "50000", want: 50000},
		{name: "surrounding spaces", input: " 500 ", want: 500},
		{name: "below range", input: "9", wantErr: ErrQuantityOutOfRange},
		{name: "above range", input: "50001", wantErr: ErrQuantityOutOfRange},
		{name: "negative", input: "-100", wantErr: ErrQuantityOutOfRange},
		{name: "zero", input: "0", wantErr: ErrQuantityOutOfRange},
		{name: "decimal", input: "100.5", wantErr: ErrQuantityNotNumber},
		{name: "words", input: "сто", wantErr: ErrQuantityNotNumber},
		{name: "empty", input: "", wantErr: ErrQuantityNotNumber},
		{name: "thousands separator", input: "1 000", wantErr: ErrQuantityNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuantity(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseQuantity(%q) err = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuantity(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseQuantityRange(t *testing.T) {
	for q := MinQuantity - 20; q <= MaxQuantity+20; q += 7 {
		_, err := ParseQuantity(strconv.Itoa(q))
		accepted := err == nil
		if want := q >= MinQuantity && q <= MaxQuantity; accepted != want {
			t.Errorf("ParseQuantity(%d) accepted=%v, want %v", q, accepted, want)
		}
	}
}

func TestIsOrderID(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"12345", true},
		{"0", true},
		{"", false},
		{"12a45", false},
		{"-1", false},
		{"12 34", false},
		{"١٢٣", false},
	}

	for _, tt := range tests {
		if got := IsOrderID(tt.input); got != tt.want {
			t.Errorf("IsOrderID(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseOrderIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{name: "single", input: "12345", want: []string{"12345"}},
		{name: "several with spaces", input: "12345, 12346 ,12347", want: []string{"12345", "12346", "12347"}},
		{name: "non-digit element", input: "12345,12346,abc", wantErr: ErrInvalidOrderID},
		{name: "empty element", input: "1,,2", wantErr: ErrInvalidOrderID},
		{name: "trailing comma", input: "1,2,", wantErr: ErrInvalidOrderID},
		{name: "empty input", input: "", wantErr: ErrInvalidOrderID},
		{name: "exactly 100", input: repeatIDs(100), want: strings.Split(repeatIDs(100), ",")},
		{name: "101 ids", input: repeatIDs(101), wantErr: ErrTooManyOrders},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderIDs(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseOrderIDs err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrderIDs unexpected error: %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ParseOrderIDs = %v, want %v", got, tt.want)
			}
		})
	}
}

func repeatIDs(n int) string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(1000 + i)
	}
	return strings.Join(ids, ",")
}
