package http

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	headerRequestID          = "x-request-id"
	headerContentType        = "content-type"
	headerContentDisposition = "content-disposition"
	headerServer             = "x-server"
	headerClean              = "x-clean"
	headerCommit             = "x-commit"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// server returns the x-server header, or fallback when the header is absent or blank.
func server(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.Header.Get(headerServer)); v != "" {
		return v
	}
	return fallback
}

// clean parses the x-clean header. An absent header means false.
func clean(r *http.Request) (bool, error) {
	v := strings.TrimSpace(r.Header.Get(headerClean))
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func commit(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerCommit))
}
