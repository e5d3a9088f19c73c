// ABOUTME: Response DTOs for the listing endpoints
// ABOUTME: Every listing is wrapped in the same envelope shape so clients can tell empty from pending

package responses

import "time"

// NewsItemResponse is one news record
type NewsItemResponse struct {
	Category    string     `json:"category" doc:"Category label"`
	Entity      string     `json:"entity" doc:"Publishing entity"`
	Title       string     `json:"title" doc:"Headline"`
	Description string     `json:"description,omitempty" doc:"Summary text"`
	Link        string     `json:"link" doc:"Absolute URL of the news article"`
	SourceURL   string     `json:"sourceUrl,omitempty" doc:"Page the record was collected from"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" doc:"Publication time when known"`
}

// OpenCallResponse is one open call record
type OpenCallResponse struct {
	Fondo        string     `json:"fondo" doc:"Funding body"`
	Titolo       string     `json:"titolo" doc:"Call title"`
	Scadenza     string     `json:"scadenza" doc:"Deadline as published"`
	ScadenzaDate *time.Time `json:"scadenzaDate,omitempty" doc:"Deadline parsed as a date when possible"`
	Stato        string     `json:"stato" doc:"Status label"`
	Link         string     `json:"link" doc:"Absolute URL of the call"`
}

// NewsListing is the news envelope
type NewsListing struct {
	Data      []NewsItemResponse `json:"data" doc:"Records; null while pending"`
	Failed    bool               `json:"failed" doc:"A tier reported an error"`
	Exhausted bool               `json:"exhausted" doc:"Resolution finished"`
	Source    string             `json:"source,omitempty" doc:"Tier that served the data" enum:"remote,snapshot,empty"`
}

// OpenCallListing is the open-calls envelope
type OpenCallListing struct {
	Data      []OpenCallResponse `json:"data" doc:"Records; null while pending"`
	Failed    bool               `json:"failed" doc:"A tier reported an error"`
	Exhausted bool               `json:"exhausted" doc:"Resolution finished"`
	Source    string             `json:"source,omitempty" doc:"Tier that served the data" enum:"remote,snapshot,empty"`
}

// HomeResponse is the home page view
type HomeResponse struct {
	News          NewsListing     `json:"news"`
	OpenCalls     OpenCallListing `json:"openCalls"`
	LoginRedirect string          `json:"loginRedirect,omitempty" doc:"Set when the visitor must log in"`
}
