package menu

import (
	"net/url"
	"strings"
)

// ImageResolver turns stored image references into URLs. With an empty
// BaseURL relative references are returned unchanged.
type ImageResolver struct {
	BaseURL string
}

// Resolve returns nil for an empty reference. Absolute URLs pass through.
func (r ImageResolver) Resolve(ref string) *string {
	if ref == "" {
		return nil
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return &ref
	}
	if r.BaseURL == "" {
		return &ref
	}
	out := strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(ref, "/")
	return &out
}
