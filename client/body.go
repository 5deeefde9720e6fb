package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/IBM/schematics-go-sdk/operation"
)

// encodeBody serializes the descriptor payload. It returns the bytes and the
// Content-Type they require, or nil and "" when the request has no payload.
func encodeBody(req *operation.Request) ([]byte, string, error) {
	switch {
	case req.Form != nil:
		return encodeMultipart(req.Form)
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", fmt.Errorf("encoding request body: %w", err)
		}
		return data, "application/json", nil
	default:
		return nil, "", nil
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func encodeMultipart(parts []operation.FormPart) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, part := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(part.Name), quoteEscaper.Replace(part.Filename)))
		h.Set("Content-Type", part.ContentType)
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating form part %s: %w", part.Name, err)
		}
		if _, err := pw.Write(part.Data); err != nil {
			return nil, "", fmt.Errorf("writing form part %s: %w", part.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
