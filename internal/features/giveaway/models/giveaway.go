package models

import (
	"encoding/json"
	"math"
	"time"
)

// NotApplicable is the upstream sentinel for "no value" in worth and end_date.
const NotApplicable = "N/A"

// FeaturedCount is the size of the featured tier.
const FeaturedCount = 3

// Giveaway is one upstream giveaway record as delivered by the feed.
type Giveaway struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Worth           string `json:"worth"`
	Thumbnail       string `json:"thumbnail"`
	Image           string `json:"image"`
	Description     string `json:"description"`
	Instructions    string `json:"instructions"`
	OpenGiveawayURL string `json:"open_giveaway_url"`
	PublishedDate   string `json:"published_date"`
	Type            string `json:"type"`
	Platforms       string `json:"platforms"`
	EndDate         string `json:"end_date"`
	Users           int    `json:"users"`
	Status          string `json:"status,omitempty"`
	GamerPowerURL   string `json:"gamerpower_url,omitempty"`
	OpenGiveaway    string `json:"open_giveaway,omitempty"`
}

// IsFreeForever reports whether the raw worth carries the sentinel.
func (g Giveaway) IsFreeForever() bool {
	return g.Worth == NotApplicable
}

// NeverExpires reports whether the raw end date carries the sentinel.
func (g Giveaway) NeverExpires() bool {
	return g.EndDate == NotApplicable
}

// Expiry is an expiration instant in unix milliseconds. +Inf means never.
type Expiry float64

// Never is the expiry of giveaways without an end date.
var Never = Expiry(math.Inf(1))

// ExpiryAt converts t to an Expiry.
func ExpiryAt(t time.Time) Expiry {
	return Expiry(t.UnixMilli())
}

// IsNever reports whether the expiry is unbounded.
func (e Expiry) IsNever() bool {
	return math.IsInf(float64(e), 1)
}

// Time returns the instant in UTC, or the zero time for Never.
func (e Expiry) Time() time.Time {
	if e.IsNever() {
		return time.Time{}
	}
	return time.UnixMilli(int64(e)).UTC()
}

// Before orders expiries; Never sorts after every finite instant.
func (e Expiry) Before(other Expiry) bool {
	return e < other
}

// MarshalJSON encodes Never as null, since JSON has no infinity.
func (e Expiry) MarshalJSON() ([]byte, error) {
	if e.IsNever() {
		return []byte("null"), nil
	}
	return json.Marshal(int64(e))
}

// UnmarshalJSON decodes null as Never.
func (e *Expiry) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = Never
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*e = Expiry(ms)
	return nil
}

// NormalizedGiveaway is a Giveaway with comparable worth and expiry values.
type NormalizedGiveaway struct {
	Giveaway
	WorthValue float64 `json:"worth_value"`
	Expiry     Expiry  `json:"expiry"`
}

// Collections are the three display tiers.
type Collections struct {
	Featured    []NormalizedGiveaway `json:"featured"`
	Regular     []NormalizedGiveaway `json:"regular"`
	FreeForever []NormalizedGiveaway `json:"free_forever"`
}

// Len returns the number of records across all tiers.
func (c Collections) Len() int {
	return len(c.Featured) + len(c.Regular) + len(c.FreeForever)
}
