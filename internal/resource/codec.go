package resource

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var (
	codec = jsoniter.ConfigCompatibleWithStandardLibrary

	// numberCodec keeps request numbers as json.Number so integer and
	// numeric rules can tell "5" from 5.5 without float rounding.
	numberCodec = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		UseNumber:              true,
	}.Froze()
)

const maxMemory = 32 << 20

// DecodeFields merges the query string and the request body into one field
// map. Body values win. Top-level strings are trimmed. A body that is not a
// JSON object contributes nothing.
func DecodeFields(r *http.Request) Fields {
	fields := Fields{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			fields[key] = values[len(values)-1]
		}
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil && err != http.ErrNotMultipart {
			zap.L().Debug("unable to parse form body", zap.String("path", r.URL.Path), zap.Error(err))
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[len(values)-1]
			}
		}
	default:
		if r.Body == nil {
			break
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			zap.L().Debug("unable to read request body", zap.String("path", r.URL.Path), zap.Error(err))
			break
		}
		if len(bytes.TrimSpace(body)) == 0 {
			break
		}
		var payload map[string]interface{}
		if err := numberCodec.Unmarshal(body, &payload); err != nil {
			zap.L().Debug("ignoring malformed json body", zap.String("path", r.URL.Path), zap.Error(err))
			break
		}
		for key, value := range payload {
			fields[key] = value
		}
	}

	for key, value := range fields {
		if s, ok := value.(string); ok {
			fields[key] = strings.TrimSpace(s)
		}
	}
	return fields
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := codec.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("unable to write response", zap.Error(err))
	}
}
