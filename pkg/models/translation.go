package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Translation is a cached translation of a term label
type Translation struct {
	ID         string    `json:"id"`
	SourceHash string    `json:"source_hash"`
	Source     string    `json:"source"`
	Language   string    `json:"language"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// HashSource returns the cache key of a source text
func HashSource(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
