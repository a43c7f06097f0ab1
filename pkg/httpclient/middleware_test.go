package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T) *http.Request {
	req, err := http.NewRequest(http.MethodGet, "http://backend.test/api/cart/sess", nil)
	require.NoError(t, err)
	return req
}

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}
}

func TestWrap_Order(t *testing.T) {
	var calls []string
	tag := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				calls = append(calls, name)
				return next.RoundTrip(req)
			})
		}
	}
	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls = append(calls, "base")
		return okResponse(), nil
	})

	rt := Wrap(base, tag("outer"), tag("inner"))
	_, err := rt.RoundTrip(newRequest(t))

	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "base"}, calls)
}

func TestWrap_NilDefaultsToDefaultTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	rt := Wrap(nil)
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	var got string
	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		got = req.Header.Get("X-Request-ID")
		return okResponse(), nil
	})

	req := newRequest(t)
	_, err := Wrap(base, RequestID()).RoundTrip(req)

	require.NoError(t, err)
	_, parseErr := uuid.Parse(got)
	assert.NoError(t, parseErr)
	// The caller's request is left untouched.
	assert.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestRequestID_KeepsExisting(t *testing.T) {
	var got string
	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		got = req.Header.Get("X-Request-ID")
		return okResponse(), nil
	})

	req := newRequest(t)
	req.Header.Set("X-Request-ID", "fixed-id")
	_, err := Wrap(base, RequestID()).RoundTrip(req)

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", got)
}

func TestLogRequests_PassesThrough(t *testing.T) {
	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return okResponse(), nil
	})

	resp, err := Wrap(base, LogRequests()).RoundTrip(newRequest(t))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
