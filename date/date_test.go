package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2022, time.February, 30)
	if want := New(2022, time.March, 2); got != want {
		t.Errorf("New(2022, 2, 30) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Date
	}{
		{"2022-06-23", New(2022, time.June, 23)},
		{"2022-6-3", New(2022, time.June, 3)},
		{"2022/06/23", New(2022, time.June, 23)},
		{"2022.06.23", New(2022, time.June, 23)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "20220623", "2022-06/23", "2022-13-01", "2022-06-23-01", "june 23"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) expected an error", input)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := New(2022, time.June, 3).String(), "2022-06-03"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestJSON(t *testing.T) {
	d := New(2022, time.June, 23)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if got, want := string(data), `"2022-06-23"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("Unmarshal() = %v, want %v", back, d)
	}
}

func TestBefore(t *testing.T) {
	d := New(2022, time.June, 23)
	if !d.Before(New(2022, time.June, 24)) {
		t.Errorf("%v.Before(next day) = false, want true", d)
	}
	if d.Before(d) {
		t.Errorf("%v.Before(itself) = true, want false", d)
	}
}
