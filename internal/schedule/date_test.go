package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		offset  int // seconds east of UTC kept from the value
		wantErr bool
	}{
		{
			name:  "UTC with Z",
			value: "2025-05-12T22:30:00Z",
			want:  time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
		},
		{
			name:  "Fractional seconds",
			value: "2025-05-12T22:30:00.000Z",
			want:  time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
		},
		{
			name:   "Negative offset kept",
			value:  "2025-05-12T19:30:00-03:00",
			want:   time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
			offset: -3 * 60 * 60,
		},
		{
			name:   "Offset without colon",
			value:  "2025-05-12T19:30:00-0300",
			want:   time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
			offset: -3 * 60 * 60,
		},
		{
			name:  "Minute precision UTC",
			value: "2025-05-12T22:30Z",
			want:  time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
		},
		{
			name:   "Minute precision with offset",
			value:  "2025-05-12T19:30-03:00",
			want:   time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
			offset: -3 * 60 * 60,
		},
		{
			name:  "Space separator",
			value: "2025-05-12 22:30:00+00:00",
			want:  time.Date(2025, time.May, 12, 22, 30, 0, 0, time.UTC),
		},
		{
			name:    "No zone designator",
			value:   "2025-05-12T22:30:00",
			wantErr: true,
		},
		{
			name:    "Empty",
			value:   "",
			wantErr: true,
		},
		{
			name:    "Not a date",
			value:   "amanhã",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStart(tt.value)

			if tt.wantErr {
				var dateErr *DateParseError
				if !errors.As(err, &dateErr) {
					t.Fatalf("ParseStart(%q) error = %v, want *DateParseError", tt.value, err)
				}
				if dateErr.Value != tt.value {
					t.Errorf("DateParseError.Value = %q, want %q", dateErr.Value, tt.value)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseStart(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseStart(%q) = %v, want %v", tt.value, got, tt.want)
			}
			if _, offset := got.Zone(); offset != tt.offset {
				t.Errorf("ParseStart(%q) offset = %d, want %d", tt.value, offset, tt.offset)
			}
		})
	}
}
