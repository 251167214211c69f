package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textscrub/textscrub/censor"
	"github.com/textscrub/textscrub/vocab"
)

// panicClassifier blows up on every call, for exercising the recovery
// middleware.
type panicClassifier struct{}

func (panicClassifier) Censor(string) string { panic("classifier exploded") }

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body == "" {
		rdr = bytes.NewReader(nil)
	} else {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleCensor(t *testing.T) {
	s := New(Config{})

	tcs := []struct {
		name         string
		body         string
		expectStatus int
		expectText   string
	}{
		{
			name:         "vulgar text masked",
			body:         `{"text":"fuck world"}`,
			expectStatus: http.StatusOK,
			expectText:   "f*** world",
		},
		{
			name:         "clean text unchanged",
			body:         `{"text":"hello world"}`,
			expectStatus: http.StatusOK,
			expectText:   "hello world",
		},
		{
			name:         "ip kind",
			body:         `{"text":"ip 1.2.3.4","kinds":["ip"]}`,
			expectStatus: http.StatusOK,
			expectText:   "ip *******",
		},
		{
			name:         "custom kind with pattern",
			body:         `{"text":"the code","kinds":["custom"],"pattern":"code"}`,
			expectStatus: http.StatusOK,
			expectText:   "the ****",
		},
		{
			name:         "custom kind without pattern",
			body:         `{"text":"x","kinds":["custom"]}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "invalid pattern",
			body:         `{"text":"x","kinds":["custom"],"pattern":"["}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "unknown kind",
			body:         `{"text":"x","kinds":["phone"]}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{"text":`,
			expectStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/v1/censor", tc.body)
			require.Equal(t, tc.expectStatus, rec.Code, rec.Body.String())

			if tc.expectStatus == http.StatusOK {
				var res censor.Result
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, tc.expectText, res.Censored)
				assert.Equal(t, res.Original != res.Censored, res.Changed)
				return
			}
			var envelope errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.NotEmpty(t, envelope.Error)
			assert.NotEmpty(t, envelope.Message)
			assert.NotEmpty(t, envelope.RequestID)
		})
	}
}

func TestHandleCensorDefaults(t *testing.T) {
	s := New(Config{
		Defaults: censor.Request{Kinds: []censor.Kind{censor.IP}},
	})

	t.Run("bare payload picks up configured kinds", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/v1/censor", `{"text":"ip 1.2.3.4"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var res censor.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "ip *******", res.Censored)
	})

	t.Run("explicit kinds replace the defaults", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/v1/censor", `{"text":"1.2.3.4 a@b.co","kinds":["email"]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var res censor.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "1.2.3.4 ******", res.Censored)
	})
}

func TestHandleWords(t *testing.T) {
	s := New(Config{})

	t.Run("registers words", func(t *testing.T) {
		body := `{"words":[{"word":"slithytove","severity":"mean|mild"}]}`
		rec := doRequest(t, s, http.MethodPost, "/v1/words", body)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		sev, ok := vocab.Default().Lookup("slithytove")
		assert.True(t, ok)
		assert.True(t, sev.Is(vocab.Mean))
	})

	t.Run("omitted severity still masks", func(t *testing.T) {
		body := `{"words":[{"word":"snollygoster"}]}`
		rec := doRequest(t, s, http.MethodPost, "/v1/words", body)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = doRequest(t, s, http.MethodPost, "/v1/censor", `{"text":"a snollygoster retort"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var res censor.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "a s*********** retort", res.Censored)
		assert.True(t, res.Changed)
	})

	t.Run("empty word rejects the batch", func(t *testing.T) {
		body := `{"words":[{"word":"borogove","severity":"mild"},{"word":"","severity":"mild"}]}`
		rec := doRequest(t, s, http.MethodPost, "/v1/words", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Contains(t, envelope.Message, "index=1")

		_, ok := vocab.Default().Lookup("borogove")
		assert.False(t, ok)
	})

	t.Run("unknown severity is a bad request", func(t *testing.T) {
		body := `{"words":[{"word":"rathish","severity":"grumpy"}]}`
		rec := doRequest(t, s, http.MethodPost, "/v1/words", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/v1/words", `{"words":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	s := New(Config{})
	rec := doRequest(t, s, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
	assert.Greater(t, body["words"], float64(0))
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(Config{})

	// Drive one request through the middleware so the counters exist.
	doRequest(t, s, http.MethodGet, "/v1/health", "")

	rec := doRequest(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "textscrub_http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	s := New(Config{})

	t.Run("caller id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.Header.Set("X-Request-Id", "caller-chosen")
		rec := httptest.NewRecorder()
		s.Routes().ServeHTTP(rec, req)
		assert.Equal(t, "caller-chosen", rec.Header().Get("X-Request-Id"))
	})

	t.Run("id generated when absent", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/v1/health", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})
}

func TestRecoverPanics(t *testing.T) {
	s := New(Config{Censorer: censor.New(panicClassifier{})})
	rec := doRequest(t, s, http.MethodPost, "/v1/censor", `{"text":"boom"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, envelope.Message, "classifier exploded")
}

func TestUnknownRoute(t *testing.T) {
	s := New(Config{})

	t.Run("unknown path is a json 404", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
	})

	t.Run("wrong method is a 405", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/v1/censor", "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestListenAndServeShutdown(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:0", Logger: hclog.NewNullLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	// Give the listener a moment to come up before asking it to stop.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
