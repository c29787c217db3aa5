// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	const listing = `{"domains":[{"id":1,"name":"example.com","price":1500}],"total":1}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     []byte
		compressRequest bool
		wantStatus      int
		wantBody        string
		wantGzipped     bool
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       listing,
			wantGzipped:    true,
		},
		{
			name:       "plain response without accept-encoding",
			wantStatus: http.StatusOK,
			wantBody:   listing,
		},
		{
			name:           "gzip among several encodings",
			acceptEncoding: "deflate, gzip, br",
			wantStatus:     http.StatusOK,
			wantBody:       listing,
			wantGzipped:    true,
		},
		{
			name:           "gzip with quality values",
			acceptEncoding: "gzip;q=1.0, identity;q=0.5",
			wantStatus:     http.StatusOK,
			wantBody:       listing,
			wantGzipped:    true,
		},
		{
			name:            "decompress request body",
			contentEncoding: "gzip",
			requestBody:     []byte(`{"name":"example.com"}`),
			compressRequest: true,
			wantStatus:      http.StatusOK,
			wantBody:        `{"name":"example.com"}`,
		},
		{
			name:            "decompress request and compress response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			requestBody:     []byte(`{"name":"example.com"}`),
			compressRequest: true,
			wantStatus:      http.StatusOK,
			wantBody:        `{"name":"example.com"}`,
			wantGzipped:     true,
		},
		{
			name:            "content-encoding with several values",
			contentEncoding: "gzip, deflate",
			requestBody:     []byte(`{"title":"Tech"}`),
			compressRequest: true,
			wantStatus:      http.StatusOK,
			wantBody:        `{"title":"Tech"}`,
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			requestBody:     []byte("not gzipped data"),
			wantStatus:      http.StatusBadRequest,
			wantBody:        `{"error":"invalid gzip data"}`,
		},
		{
			name:           "large response",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       strings.Repeat(listing, 200),
			wantGzipped:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Content-Encoding"))

				body := []byte(tt.wantBody)
				if tt.requestBody != nil {
					var err error
					body, err = io.ReadAll(r.Body)
					require.NoError(t, err)
				}
				w.WriteHeader(tt.wantStatus)
				_, _ = w.Write(body)
			})

			var body io.Reader
			if tt.requestBody != nil {
				if tt.compressRequest {
					body = gzipped(t, tt.requestBody)
				} else {
					body = bytes.NewReader(tt.requestBody)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/domains", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			if tt.wantStatus == http.StatusBadRequest {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat(`{"name":"example.com","status":"available"}`, 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/domains", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Less(t, rr.Body.Len(), len(data)/10)
}

func TestGZip_PoolReuse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	})
	handler := withGZip(next)

	for i := 0; i < 5; i++ {
		payload := []byte(strings.Repeat("x", i+1))

		req := httptest.NewRequest(http.MethodPost, "/api/categories", gzipped(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		assert.Equal(t, string(payload), gunzip(t, rr.Body), "request %d", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("concurrent response"))
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/api/domains", nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			zr, err := gzip.NewReader(rr.Body)
			if assert.NoError(t, err) {
				data, _ := io.ReadAll(zr)
				assert.Equal(t, "concurrent response", string(data))
			}
		}()
	}
	wg.Wait()
}

func TestGZip_SkipsBodilessResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "redirect", status: http.StatusFound},
		{name: "not modified", status: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status == http.StatusFound {
					w.Header().Set("Location", "https://app.example.com/auth")
				}
				w.WriteHeader(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback", nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Zero(t, rr.Body.Len())
		})
	}
}

func TestGZip_CreatedKeepsStatus(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "9")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":12}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/domains", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, `{"id":12}`, gunzip(t, rr.Body))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closed = true },
	}

	require.NoError(t, wrapped.Close())
	assert.True(t, closed)

	require.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}
