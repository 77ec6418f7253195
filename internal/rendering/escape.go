package rendering

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// EscapeMarkup escapes the markup-significant characters & < > " in text.
// A single pass over the input means an existing "&amp;" becomes "&amp;amp;",
// the same result as replacing & before the other characters.
func EscapeMarkup(text string) string {
	if text == "" {
		return ""
	}
	if !strings.ContainsAny(text, `&<>"`) {
		return text
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// NormalizeURL prepends https:// to a link that has neither an http:// nor an https:// prefix.
// Empty input stays empty so no link is rendered.
func NormalizeURL(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// SiteLabel returns the registrable domain of a link for use as link text,
// e.g. "blog.jane.dev/about" -> "jane.dev". Falls back to the host, then the raw value.
func SiteLabel(value string) string {
	if value == "" {
		return ""
	}
	u, err := url.Parse(NormalizeURL(value))
	if err != nil || u.Hostname() == "" {
		return value
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return host
}
