package core

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain integer", in: "600", want: "600"},
		{name: "dot decimal", in: "1234.56", want: "1234.56"},
		{name: "decimal comma", in: "0,05", want: "0.05"},
		{name: "small rate comma", in: "0,0065", want: "0.0065"},
		{name: "brazilian thousands", in: "1.234,56", want: "1234.56"},
		{name: "us thousands", in: "1,234.56", want: "1234.56"},
		{name: "currency prefix", in: "R$ 150,00", want: "150"},
		{name: "surrounding spaces", in: "  42.5  ", want: "42.5"},
		{name: "empty", in: "", want: "0"},
		{name: "garbage coerces to zero", in: "abc", want: "0"},
		{name: "partial garbage coerces to zero", in: "12abc", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.in)
			if got.String() != tt.want {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		missing bool
	}{
		{name: "iso", in: "2024-01-10", want: NewDate(2024, 1, 10)},
		{name: "brazilian", in: "10/01/2024", want: NewDate(2024, 1, 10)},
		{name: "iso datetime", in: "2024-03-05 13:22:01", want: NewDate(2024, 3, 5)},
		{name: "empty is missing", in: "", missing: true},
		{name: "garbage is missing", in: "not a date", missing: true},
		{name: "whitespace is missing", in: "   ", missing: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.in)
			if tt.missing {
				if !got.IsEmpty() {
					t.Fatalf("ParseDate(%q) = %v, want missing date", tt.in, got)
				}
				return
			}
			if !got.Equal(tt.want.Time) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateBetween(t *testing.T) {
	start := NewDate(2024, 1, 1)
	end := NewDate(2024, 1, 31)

	if !NewDate(2024, 1, 1).Between(start, end) {
		t.Fatal("start bound should be inclusive")
	}
	if !NewDate(2024, 1, 31).Between(start, end) {
		t.Fatal("end bound should be inclusive")
	}
	if NewDate(2024, 2, 1).Between(start, end) {
		t.Fatal("date after range should be excluded")
	}
	if (Date{}).Between(start, end) {
		t.Fatal("missing date should never be in range")
	}
}

func TestFilterSpecDatePredicate(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want bool
	}{
		{name: "valid range", spec: FilterSpec{DateStart: NewDate(2024, 1, 1), DateEnd: NewDate(2024, 1, 31)}, want: true},
		{name: "single day", spec: FilterSpec{DateStart: NewDate(2024, 1, 5), DateEnd: NewDate(2024, 1, 5)}, want: true},
		{name: "inverted range disables pass", spec: FilterSpec{DateStart: NewDate(2024, 2, 1), DateEnd: NewDate(2024, 1, 1)}, want: false},
		{name: "missing start disables pass", spec: FilterSpec{DateEnd: NewDate(2024, 1, 31)}, want: false},
		{name: "missing end disables pass", spec: FilterSpec{DateStart: NewDate(2024, 1, 1)}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.FiltersDate(); got != tt.want {
				t.Fatalf("FiltersDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSpecSelectors(t *testing.T) {
	all := FilterSpec{Client: FilterAll, ProjectCode: FilterAll}
	if all.FiltersClient() || all.FiltersProject() {
		t.Fatal("ALL selectors must be pass-through")
	}
	empty := FilterSpec{}
	if empty.FiltersClient() || empty.FiltersProject() {
		t.Fatal("empty selectors must be pass-through")
	}
	narrowed := FilterSpec{Client: "Acme", ProjectCode: "P1"}
	if !narrowed.FiltersClient() || !narrowed.FiltersProject() {
		t.Fatal("concrete selectors must narrow")
	}
}
