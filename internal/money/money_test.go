package money

import (
	"math"
	"testing"
	"time"
)

func TestCentsFromFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{4.75, 475},
		{3.5, 350},
		{0, 0},
		{-2.5, -250},
		{19.99, 1999},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := CentsFromFloat(c.in); got != c.want {
			t.Errorf("CentsFromFloat(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCentsFromString(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"4.50", 450},
		{"€4.50", 450},
		{" $12.34 ", 1234},
		{"£9", 900},
		{"1,234.56", 123456},
		{"", 0},
		{"abc", 0},
		{"€", 0},
	}
	for _, c := range cases {
		if got := CentsFromString(c.in); got != c.want {
			t.Errorf("CentsFromString(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0,00 €"},
		{475, "4,75 €"},
		{1999, "19,99 €"},
		{123456, "1.234,56 €"},
		{100000000, "1.000.000,00 €"},
		{-50, "-0,50 €"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDayKey(t *testing.T) {
	instant := time.Date(2024, 3, 9, 15, 4, 5, 0, time.Local)
	if got := DayKey(instant); got != "2024-03-09" {
		t.Errorf("DayKey = %q, want 2024-03-09", got)
	}
	if got := DayKey(time.Time{}); !ValidDayKey(got) {
		t.Errorf("DayKey(zero) = %q, want today's key", got)
	}
}

func TestValidDayKey(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31"}
	invalid := []string{"", "2024-1-1", "20240101", "2024/01/01", "2024-01-01T00:00:00"}
	for _, s := range valid {
		if !ValidDayKey(s) {
			t.Errorf("ValidDayKey(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidDayKey(s) {
			t.Errorf("ValidDayKey(%q) = true, want false", s)
		}
	}
}
