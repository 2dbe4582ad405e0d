package urlparse

import (
	"strings"
)

// Result holds the raw pathname and the decoded query mapping of a URL.
type Result struct {
	Pathname string            `json:"pathname"`
	Query    map[string]string `json:"query"`
}

// Parse splits rawURL at the first '?'. The pathname is kept verbatim, never
// percent-decoded, so a '+' in the path survives; only query keys and values
// go through DecodeURIComponent.
func Parse(rawURL string) Result {
	result := Result{Query: make(map[string]string)}
	qmark := strings.IndexByte(rawURL, '?')
	if qmark < 0 {
		result.Pathname = rawURL
		return result
	}
	result.Pathname = rawURL[:qmark]
	splitPairs(rawURL[qmark+1:], result.Query)
	return result
}

// ParseQuery decodes a query string, tolerating one leading '?'.
func ParseQuery(query string) map[string]string {
	if strings.HasPrefix(query, "?") {
		query = query[1:]
	}
	m := make(map[string]string)
	splitPairs(query, m)
	return m
}

// splitPairs splits on '&', then each segment on its first '='. Segments
// without '=' or with an empty key are dropped. Duplicate keys keep the last
// value written.
func splitPairs(query string, into map[string]string) {
	for _, seg := range strings.Split(query, "&") {
		eq := strings.IndexByte(seg, '=')
		if eq <= 0 {
			continue
		}
		key := DecodeURIComponent(seg[:eq])
		into[key] = DecodeURIComponent(seg[eq+1:])
	}
}
