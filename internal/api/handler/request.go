package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
)

type formDecodable interface {
	DecodeForm(url.Values)
}

// decodeBody accepts both JSON and url-encoded bodies on POST routes. An
// empty body decodes to the zero request; a malformed one is an error the
// caller turns into a 400.
func decodeBody(r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		fd, ok := dst.(formDecodable)
		if !ok {
			return errors.New("request type does not accept form bodies")
		}
		fd.DecodeForm(r.PostForm)
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
