// ABOUTME: Login location builder for the OAuth portal sign-in flow
// ABOUTME: Falls back to the home location whenever the portal is not configured

package session

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// HomeLocation is returned when no login location can be computed
const HomeLocation = "/"

// CallbackPath is where the portal sends the user back after sign-in
const CallbackPath = "/api/oauth/callback"

// LoginURL returns {portalURL}/app-auth with appId, redirectUri, state and type=signIn.
// redirectUri is origin+CallbackPath and state is its padded standard base64.
// If any input is empty, or portalURL is not an absolute URL, it returns HomeLocation.
func LoginURL(origin, portalURL, appID string) string {
	if origin == "" || portalURL == "" || appID == "" {
		return HomeLocation
	}

	u, err := url.Parse(strings.TrimRight(portalURL, "/") + "/app-auth")
	if err != nil || u.Scheme == "" || u.Host == "" {
		return HomeLocation
	}

	redirectURI := strings.TrimRight(origin, "/") + CallbackPath

	q := url.Values{}
	q.Set("appId", appID)
	q.Set("redirectUri", redirectURI)
	q.Set("state", base64.StdEncoding.EncodeToString([]byte(redirectURI)))
	q.Set("type", "signIn")
	u.RawQuery = q.Encode()

	return u.String()
}

// RedirectURIFromState decodes the state parameter of a login location
func RedirectURIFromState(state string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
