package client

import (
	"fmt"

	"github.com/go-faster/jx"
)

// APIError is a non-2xx response from the backend. Message carries the
// backend's "detail" text when the error body contains one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// errorDetail extracts the "detail" field from a backend error body. Bodies
// that are not JSON objects, or objects without a string detail, yield "".
func errorDetail(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var detail string
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "detail" {
			return d.Skip()
		}
		if d.Next() != jx.String {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return err
		}
		detail = v
		return nil
	})
	if err != nil {
		return ""
	}
	return detail
}
