// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps envelope semantics intact: pending data stays null, settled data is never null

package mappers

import (
	"time"

	"opportunities-portal-api/api/dto/requests"
	"opportunities-portal-api/api/dto/responses"
	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/page"
)

// ToNewsListing converts a news envelope
func ToNewsListing(env domain.Envelope[domain.NewsItem]) responses.NewsListing {
	out := responses.NewsListing{
		Failed:    env.Failed,
		Exhausted: env.Exhausted,
		Source:    env.Source,
	}
	if env.Data == nil {
		return out
	}
	out.Data = make([]responses.NewsItemResponse, 0, len(env.Data))
	for _, item := range env.Data {
		out.Data = append(out.Data, ToNewsItemResponse(item))
	}
	return out
}

// ToNewsItemResponse converts one news record
func ToNewsItemResponse(item domain.NewsItem) responses.NewsItemResponse {
	return responses.NewsItemResponse{
		Category:    item.Category,
		Entity:      item.Entity,
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		SourceURL:   item.SourceURL,
		PublishedAt: timePtr(item.PublishedAt),
	}
}

// ToOpenCallListing converts an open-calls envelope
func ToOpenCallListing(env domain.Envelope[domain.OpenCall]) responses.OpenCallListing {
	out := responses.OpenCallListing{
		Failed:    env.Failed,
		Exhausted: env.Exhausted,
		Source:    env.Source,
	}
	if env.Data == nil {
		return out
	}
	out.Data = make([]responses.OpenCallResponse, 0, len(env.Data))
	for _, call := range env.Data {
		out.Data = append(out.Data, responses.OpenCallResponse{
			Fondo:        call.Fondo,
			Titolo:       call.Titolo,
			Scadenza:     call.Scadenza.Raw,
			ScadenzaDate: call.Scadenza.Date,
			Stato:        call.Stato,
			Link:         call.Link,
		})
	}
	return out
}

// ToHomeResponse converts a settled page view
func ToHomeResponse(view page.View, loginRedirect string) responses.HomeResponse {
	return responses.HomeResponse{
		News:          ToNewsListing(view.News),
		OpenCalls:     ToOpenCallListing(view.OpenCalls),
		LoginRedirect: loginRedirect,
	}
}

// ToNewsItem converts a share request's record into the domain type
func ToNewsItem(req requests.NewsItemRequest) domain.NewsItem {
	return domain.NewsItem{
		Category:    req.Category,
		Entity:      req.Entity,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		SourceURL:   req.SourceURL,
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
