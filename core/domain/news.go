// ABOUTME: NewsItem domain model represents a single news entry published by a funding body
// ABOUTME: Accepts both the backend field names and the scraper snapshot field names

package domain

import (
	"encoding/json"
	"time"
)

// NewsItem represents a news entry from an external producer
type NewsItem struct {
	// Category is the source grouping tag (e.g. "Fondi Interprofessionali")
	Category string `json:"category"`

	// Entity is the name of the publishing organization
	Entity string `json:"entity"`

	// Title is the headline
	Title string `json:"title"`

	// Description is an optional summary
	Description string `json:"description,omitempty"`

	// Link is the absolute URL of the article
	Link string `json:"link"`

	// SourceURL is the listing page the item was collected from
	SourceURL string `json:"sourceUrl"`

	// PublishedAt is when the item was published
	PublishedAt time.Time `json:"publishedAt"`
}

// newsItemWire mirrors the snapshot layout written by the scraper
type newsItemWire struct {
	Category       string    `json:"category"`
	Entity         string    `json:"entity"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Link           string    `json:"link"`
	SourceURL      string    `json:"sourceUrl"`
	SourceURLSnake string    `json:"source_url"`
	PublishedAt    *flexTime `json:"publishedAt"`
	PublishedSnake *flexTime `json:"published_at"`
}

// UnmarshalJSON accepts camelCase and snake_case field names
func (n *NewsItem) UnmarshalJSON(data []byte) error {
	var w newsItemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*n = NewsItem{
		Category:  w.Category,
		Entity:    w.Entity,
		Title:     w.Title,
		Link:      w.Link,
		SourceURL: w.SourceURL,
	}
	if w.Description != nil {
		n.Description = *w.Description
	}
	if n.SourceURL == "" {
		n.SourceURL = w.SourceURLSnake
	}
	switch {
	case w.PublishedAt != nil:
		n.PublishedAt = w.PublishedAt.Time
	case w.PublishedSnake != nil:
		n.PublishedAt = w.PublishedSnake.Time
	}

	return nil
}

// IsValid checks if the news item has the fields a page needs to render it
func (n *NewsItem) IsValid() bool {
	return n.Title != "" && n.Link != ""
}
