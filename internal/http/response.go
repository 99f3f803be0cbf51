package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"log-summary/internal/shared/svcerrors"
)

func writeJSON(w http.ResponseWriter, status int, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return svcerrors.NewInternalErrorUndefined(err)
	}
	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	return nil
}

// writeFile writes body with a 200. A non-empty fileName marks it as a download.
func writeFile(w http.ResponseWriter, contentType, fileName string, body []byte) {
	w.Header().Set(headerContentType, contentType)
	if fileName != "" {
		w.Header().Set(headerContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
