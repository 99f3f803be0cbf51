package stores

import (
	"net/url"
)

// keySegment makes a caller-supplied value safe to use as one path segment of a file key.
func keySegment(value string) string {
	switch value {
	case "", ".", "..":
		return "_" + url.PathEscape(value)
	}
	return url.PathEscape(value)
}
