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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func gzipDecompress(t *testing.T, data []byte) string {
	t.Helper()
	gr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gr.Close()
	out, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if len(body) > 0 {
			_, _ = w.Write(append([]byte("Processed: "), body...))
			return
		}
		_, _ = w.Write([]byte("Hello, World!"))
	})
}

func TestGZip_CompressesResponseWhenAccepted(t *testing.T) {
	h := withGZip(echoHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate, gzip, br")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Hello, World!", gzipDecompress(t, rr.Body.Bytes()))
}

func TestGZip_NoCompressionWithoutAcceptHeader(t *testing.T) {
	h := withGZip(echoHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Hello, World!", rr.Body.String())
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	h := withGZip(echoHandler(t))

	compressed := gzipCompress(t, []byte("Request data"))
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(compressed))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Processed: Request data", rr.Body.String())
}

func TestGZip_RoundTrip(t *testing.T) {
	h := withGZip(echoHandler(t))

	compressed := gzipCompress(t, []byte("Request data"))
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(compressed))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Processed: Request data", gzipDecompress(t, rr.Body.Bytes()))
}

func TestGZip_InvalidGzipBody(t *testing.T) {
	h := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called for an invalid gzip body")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
