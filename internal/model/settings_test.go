package model

import (
	"testing"
	"time"
)

func TestParsePostingTimes(t *testing.T) {
	slots, err := ParsePostingTimes("09:00, 14:30,19:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Slot{{9, 0}, {14, 30}, {19, 5}}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: got %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestParsePostingTimes_SortsByClockTime(t *testing.T) {
	slots, err := ParsePostingTimes("19:00,09:00,14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if cur.Hour < prev.Hour || (cur.Hour == prev.Hour && cur.Minute < prev.Minute) {
			t.Fatalf("slots not sorted: %+v", slots)
		}
	}
}

func TestParsePostingTimes_Malformed(t *testing.T) {
	for _, csv := range []string{"nine am", "25:00", "12:75", ""} {
		if _, err := ParsePostingTimes(csv); err == nil {
			t.Errorf("expected error for %q, got nil", csv)
		}
	}
}

func TestSlotAt(t *testing.T) {
	day := time.Date(2025, 6, 15, 22, 41, 12, 0, time.UTC)
	got := Slot{Hour: 9, Minute: 30}.At(day)
	want := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHasCredentials(t *testing.T) {
	s := &Settings{}
	if s.HasCredentials() {
		t.Error("empty settings should have no credentials")
	}
	s.InstagramAccessToken = "tok"
	if s.HasCredentials() {
		t.Error("token alone is not enough")
	}
	s.InstagramAccountID = "acct"
	if !s.HasCredentials() {
		t.Error("token + account id should count as credentials")
	}
}
