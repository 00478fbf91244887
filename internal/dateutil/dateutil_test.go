package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// fixedTime pins formatting tests to 2025-03-07.
var fixedTime = time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		// Single tokens
		{name: "YYYY converts to full year", format: "YYYY", want: "2006"},
		{name: "YY converts to short year", format: "YY", want: "06"},
		{name: "MMMM converts to full month name", format: "MMMM", want: "January"},
		{name: "MMM converts to short month name", format: "MMM", want: "Jan"},
		{name: "MM converts to padded month", format: "MM", want: "01"},
		{name: "M converts to bare month", format: "M", want: "1"},
		{name: "DD converts to padded day", format: "DD", want: "02"},
		{name: "D converts to bare day", format: "D", want: "2"},
		// Combined formats
		{name: "iso order", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "european order", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long form", format: "MMMM D, YYYY", want: "January 2, 2006"},
		// Literals
		{name: "unknown characters pass through", format: "YYYY.MM.DD!", want: "2006.01.02!"},
		{name: "bracketed text is literal", format: "[Updated] YYYY", want: "Updated 2006"},
		{name: "brackets protect token letters", format: "[DD] DD", want: "DD 02"},
		{name: "empty brackets vanish", format: "[]YYYY", want: "2006"},
		// Errors
		{name: "empty format", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[Updated YYYY", wantErr: ErrInvalidDateFormat},
		{name: "over the length cap", format: strings.Repeat("Y", MaxDateFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "literal date passes through", value: "2024-12-31", want: "2024-12-31"},
		{name: "empty value passes through", value: "", want: ""},
		{name: "free text passes through", value: "Draft, do not date", want: "Draft, do not date"},
		{name: "auto uses the default format", value: "auto", want: "2025-03-07"},
		{name: "auto is case-insensitive", value: "AUTO", want: "2025-03-07"},
		{name: "auto with custom format", value: "auto:DD/MM/YYYY", want: "07/03/2025"},
		{name: "auto with iso preset", value: "auto:iso", want: "2025-03-07"},
		{name: "auto with european preset", value: "auto:european", want: "07/03/2025"},
		{name: "auto with us preset", value: "auto:us", want: "03/07/2025"},
		{name: "auto with long preset", value: "auto:long", want: "March 7, 2025"},
		{name: "preset lookup is case-insensitive", value: "auto:ISO", want: "2025-03-07"},
		{name: "auto with bracket literal", value: "auto:[on] YYYY-MM-DD", want: "on 2025-03-07"},
		{name: "auto with empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "auto with garbage suffix", value: "autopilot", wantErr: ErrInvalidDateFormat},
		{name: "auto with unclosed bracket", value: "auto:[oops", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
