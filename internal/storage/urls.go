// Package storage maps stored object keys to public URLs. Sources that keep
// flyer images in object storage record only the key; everything downstream
// wants an absolute URL.
package storage

import "strings"

// URLResolver builds public object URLs for a hosted storage backend.
type URLResolver struct {
	baseURL string
}

func NewURLResolver(baseURL string) URLResolver {
	return URLResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// PublicURL resolves key within bucket. Keys that are already absolute URLs
// pass through untouched; empty keys resolve to "".
func (r URLResolver) PublicURL(bucket, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	if r.baseURL == "" {
		return ""
	}
	return r.baseURL + "/storage/v1/object/public/" + bucket + "/" + strings.TrimLeft(key, "/")
}
