package models

import "time"

// FeedBlock is one "featured deals" row on the home page.
type FeedBlock struct {
	ID          string        `json:"id"`
	Theme       string        `json:"theme"`
	Description string        `json:"description,omitempty"`
	Category    CabinCategory `json:"category"`
	Cards       []CruiseCard  `json:"cards"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
