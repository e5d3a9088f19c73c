// ABOUTME: Share link builder turns a news item into outbound platform and mail-compose URLs
// ABOUTME: Output is a pure function of target and item; every fragment is encoded on its own

package share

import (
	"fmt"

	"opportunities-portal-api/core/domain"
	coreerrors "opportunities-portal-api/core/errors"
)

const (
	linkedInBase = "https://www.linkedin.com/sharing/share-offsite/?url="
	twitterBase  = "https://twitter.com/intent/tweet?text="
	facebookBase = "https://www.facebook.com/sharer/sharer.php?u="
)

// BuildURL returns the share URL of item for target
func BuildURL(target domain.ShareTarget, item domain.NewsItem) (string, error) {
	if item.Link == "" {
		return "", &coreerrors.ValidationError{Field: "link", Message: "link is required to share an item"}
	}

	switch target {
	case domain.ShareLinkedIn:
		return linkedInBase + EncodeURIComponent(item.Link), nil
	case domain.ShareTwitter:
		text := item.Title + " - " + item.Entity
		return twitterBase + EncodeURIComponent(text) + "&url=" + EncodeURIComponent(item.Link), nil
	case domain.ShareFacebook:
		return facebookBase + EncodeURIComponent(item.Link), nil
	case domain.ShareEmail:
		return mailto(item), nil
	}

	return "", &coreerrors.ValidationError{Field: "target", Message: fmt.Sprintf("unsupported share target %q", target)}
}

// BuildLink returns the share link of item for target, with how to open it
func BuildLink(target domain.ShareTarget, item domain.NewsItem) (domain.ShareLink, error) {
	u, err := BuildURL(target, item)
	if err != nil {
		return domain.ShareLink{}, err
	}

	link := domain.ShareLink{
		Target:      target,
		URL:         u,
		Disposition: target.Disposition(),
	}
	if link.Disposition == domain.DispositionPopup {
		link.WindowFeatures = domain.PopupFeatures
	}
	return link, nil
}

// mailto builds the mail-compose URL; an empty description drops its paragraph
func mailto(item domain.NewsItem) string {
	subject := "Opportunità: " + item.Title

	body := "Ti segnalo questa opportunità: " + item.Title + "\n\n"
	if item.Description != "" {
		body += item.Description + "\n\n"
	}
	body += "Leggi di più: " + item.Link

	return "mailto:?subject=" + EncodeURIComponent(subject) + "&body=" + EncodeURIComponent(body)
}
