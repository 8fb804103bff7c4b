package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SettingsID is the fixed id of the singleton settings row.
const SettingsID = "default"

// DefaultPostingTimes is used when the singleton is lazily created.
const DefaultPostingTimes = "09:00,14:00,19:00"

type Settings struct {
	ID                   string    `json:"id"`
	InstagramAccessToken string    `json:"instagram_access_token"`
	InstagramAccountID   string    `json:"instagram_account_id"`
	PostingTimes         string    `json:"posting_times"`
	Enabled              bool      `json:"enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// HasCredentials reports whether the platform credentials are configured.
func (s *Settings) HasCredentials() bool {
	return s.InstagramAccessToken != "" && s.InstagramAccountID != ""
}

// Slot is a daily posting time in the settings timezone.
type Slot struct {
	Hour   int
	Minute int
}

// At anchors the slot on the calendar day of t.
func (s Slot) At(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), s.Hour, s.Minute, 0, 0, t.Location())
}

// ParsePostingTimes parses the comma-separated "HH:MM" list into ordered
// daily slots. Entries are sorted by clock time; a malformed entry is an error.
func ParsePostingTimes(csv string) ([]Slot, error) {
	parts := strings.Split(csv, ",")
	slots := make([]Slot, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var h, m int
		if _, err := fmt.Sscanf(part, "%d:%d", &h, &m); err != nil {
			return nil, fmt.Errorf("malformed posting time %q: %w", part, err)
		}
		if h < 0 || h > 23 || m < 0 || m > 59 {
			return nil, fmt.Errorf("posting time %q out of range", part)
		}
		slots = append(slots, Slot{Hour: h, Minute: m})
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("posting times list %q contains no usable entry", csv)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Hour != slots[j].Hour {
			return slots[i].Hour < slots[j].Hour
		}
		return slots[i].Minute < slots[j].Minute
	})
	return slots, nil
}
