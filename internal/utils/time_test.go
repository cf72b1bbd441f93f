package utils

import (
	"testing"
	"time"
)

func TestBelongsToDay(t *testing.T) {
	utc := time.UTC

	tests := []struct {
		name   string
		millis int64
		day    string
		want   bool
	}{
		{
			name:   "middle of the day",
			millis: time.Date(2025, 3, 14, 12, 30, 0, 0, utc).UnixMilli(),
			day:    "2025-03-14",
			want:   true,
		},
		{
			name:   "exactly at midnight belongs to the new day",
			millis: time.Date(2025, 3, 14, 0, 0, 0, 0, utc).UnixMilli(),
			day:    "2025-03-14",
			want:   true,
		},
		{
			name:   "one millisecond before midnight belongs to the old day",
			millis: time.Date(2025, 3, 14, 0, 0, 0, 0, utc).UnixMilli() - 1,
			day:    "2025-03-13",
			want:   true,
		},
		{
			name:   "different day",
			millis: time.Date(2025, 3, 14, 12, 0, 0, 0, utc).UnixMilli(),
			day:    "2025-03-15",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BelongsToDay(tt.millis, tt.day, utc); got != tt.want {
				t.Errorf("BelongsToDay(%d, %q) = %v, want %v", tt.millis, tt.day, got, tt.want)
			}
		})
	}
}

func TestBelongsToDayIsTimezoneSensitive(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 23:00 UTC on March 14 is already March 15 in Tokyo.
	millis := time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC).UnixMilli()

	if !BelongsToDay(millis, "2025-03-14", time.UTC) {
		t.Error("entry should belong to 2025-03-14 in UTC")
	}
	if !BelongsToDay(millis, "2025-03-15", tokyo) {
		t.Error("entry should belong to 2025-03-15 in Tokyo")
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone America/New_York", timezone: "America/New_York", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestValidateDay(t *testing.T) {
	if err := ValidateDay("2025-03-14"); err != nil {
		t.Errorf("ValidateDay() unexpected error: %v", err)
	}
	if err := ValidateDay("03/14/2025"); err == nil {
		t.Error("ValidateDay() accepted a non-ISO day string")
	}
}

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) < idSuffixLen+1 {
		t.Errorf("NewID() = %q, shorter than minimum length", id)
	}
	for _, r := range id {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')) {
			t.Errorf("NewID() = %q, contains non-base36 character %q", id, r)
		}
	}

	seen := make(map[string]bool)
	for range 1000 {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestNewIDTimestampPrefix(t *testing.T) {
	millis := int64(1700000000000)
	id := newIDAt(millis)
	// Base-36 encoding of the millisecond timestamp leads the identifier.
	if got := id[:len(id)-idSuffixLen]; got != "loyw3v28" {
		t.Errorf("newIDAt(%d) prefix = %q, want %q", millis, got, "loyw3v28")
	}
}
