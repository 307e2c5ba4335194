package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "worker_1", "some.user-name", "A1b2C3"}
	invalid := []string{"ab", "has space", "bad!char", ""}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 9 * time.Hour, true},
		{"17:30", 17*time.Hour + 30*time.Minute, true},
		{"23:59", 23*time.Hour + 59*time.Minute, true},
		{"24:00", 0, false},
		{"9:00am", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := IsValidClock(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("IsValidClock(%q) = (%v, %v), want (%v, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		input time.Duration
		want  string
	}{
		{0, "00:00"},
		{9 * time.Hour, "09:00"},
		{17*time.Hour + 30*time.Minute, "17:30"},
		{23*time.Hour + 59*time.Minute, "23:59"},
	}
	for _, c := range cases {
		got := FormatClock(c.input)
		if got != c.want {
			t.Errorf("FormatClock(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "08:15", "12:00", "23:45"} {
		d, ok := IsValidClock(clock)
		if !ok {
			t.Fatalf("IsValidClock(%q) = false, want true", clock)
		}
		if got := FormatClock(d); got != clock {
			t.Errorf("FormatClock(IsValidClock(%q)) = %q", clock, got)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15", "15/01/2024", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"TA", "TD", "TC"}
	if !IsInSlice("TD", slice) {
		t.Error(`IsInSlice("TD") = false, want true`)
	}
	if IsInSlice("OP", slice) {
		t.Error(`IsInSlice("OP") = true, want false`)
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid format"},
		{Field: "username", Message: "too short"},
	}
	want := "email: invalid format; username: too short"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if m["email"] != "invalid format" || m["username"] != "too short" {
		t.Errorf("ToMap() = %v", m)
	}
}