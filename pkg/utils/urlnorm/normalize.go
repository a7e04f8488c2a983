// ABOUTME: URL normalization produces the stable identity key used for feed deduplication
// ABOUTME: Lowercases hosts, trims trailing slashes, strips tracking params, sorts the rest

package urlnorm

import (
	"net/url"
	"strings"
)

// trackingParams are query parameters that never change which resource a
// URL identifies. Matched case-insensitively, alongside the utm_ prefix
// family. Only exact keys appear here, so params like "referrer" survive.
var trackingParams = map[string]struct{}{
	"fbclid":  {},
	"gclid":   {},
	"ref":     {},
	"ref_src": {},
	"_ga":     {},
	"_gid":    {},
	"mc_cid":  {},
	"mc_eid":  {},
	"msclkid": {},
	"igshid":  {},
}

// Normalize canonicalizes a URL into the identity key used for duplicate
// detection. It never fails: input that does not parse as a URL is
// returned unchanged. The key is for comparison only; callers keep
// presenting the URL they were originally given.
//
// Host case, trailing slashes, tracking parameters, and query-parameter
// order are erased. Path case, fragment, port, and embedded credentials
// are preserved verbatim.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	u.Host = strings.ToLower(u.Host)

	if u.Path != "/" && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	u.RawQuery = normalizeQuery(u.RawQuery)

	return u.String()
}

// normalizeQuery drops tracking parameters and re-serializes the rest in
// alphabetical key order so equivalent URLs compare equal.
func normalizeQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return rawQuery
	}

	for key := range values {
		if isTrackingParam(key) {
			delete(values, key)
		}
	}

	// Values.Encode already emits keys in sorted order.
	return values.Encode()
}

func isTrackingParam(key string) bool {
	lower := strings.ToLower(key)
	if strings.HasPrefix(lower, "utm_") {
		return true
	}
	_, ok := trackingParams[lower]
	return ok
}
