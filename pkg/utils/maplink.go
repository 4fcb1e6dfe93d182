package utils

import (
	"net/url"
	"strings"
)

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// MapSearchURL builds a Google Maps search link for a place in a city.
func MapSearchURL(place, city string) string {
	return mapSearchBase + url.QueryEscape(strings.TrimSpace(place+" "+city))
}

// ResolveMapLink keeps link when it is an http(s) URL and otherwise falls
// back to a search link.
func ResolveMapLink(link, place, city string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	return MapSearchURL(place, city)
}
