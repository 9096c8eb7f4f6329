package model

import "time"

// DictionaryEntry is one term of the reference glossary.
type DictionaryEntry struct {
	ID         string    `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
}
