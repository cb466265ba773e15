// Package testutils provides shared test infrastructure.
package testutils

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
)

// ImageFile defines a test file served by StartImageServer.
type ImageFile struct {
	Name        string
	Data        []byte
	ContentType string
	Disposition string
}

// GenerateTestData generates deterministic test data of the given size.
func GenerateTestData(t *testing.T, size int) []byte {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}

// StartImageServer starts an HTTP server serving the given files under
// /<Name> with their configured headers. Unknown paths return 404.
func StartImageServer(t *testing.T, files []ImageFile) *httptest.Server {
	t.Helper()

	fileMap := make(map[string]ImageFile)
	for _, f := range files {
		fileMap["/"+f.Name] = f
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, ok := fileMap[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}

		if f.ContentType != "" {
			w.Header().Set("Content-Type", f.ContentType)
		}
		if f.Disposition != "" {
			w.Header().Set("Content-Disposition", f.Disposition)
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
		w.Write(f.Data)
	}))
	t.Cleanup(server.Close)
	return server
}

// StartCountingServer starts a server that records how many requests it
// received. Used to assert that rejected inputs never reach the network.
func StartCountingServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg"))
	}))
	t.Cleanup(server.Close)
	return server, &hits
}
