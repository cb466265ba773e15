package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/imgfetch/imgfetch/internal/httpclient"
	"github.com/imgfetch/imgfetch/internal/naming"
	"github.com/imgfetch/imgfetch/internal/progress"
	"github.com/imgfetch/imgfetch/internal/store"
)

// Kind tags a fetch failure with its cause.
type Kind int

const (
	// KindInvalidURL rejects a URL without an http:// or https:// scheme.
	// No network access happens for this kind.
	KindInvalidURL Kind = iota + 1

	// KindHTTP covers responses outside the 2xx range.
	KindHTTP

	// KindConnection covers transport failures reaching the host.
	KindConnection

	// KindTimeout covers requests exceeding the configured time bound.
	KindTimeout

	// KindRequest covers any other transport-level failure.
	KindRequest

	// KindWrite covers local write failures, permission or otherwise.
	KindWrite

	// KindUnexpected covers anything uncategorized, caught at the outermost
	// boundary.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid URL"
	case KindHTTP:
		return "HTTP error"
	case KindConnection:
		return "connection error"
	case KindTimeout:
		return "timeout error"
	case KindRequest:
		return "request error"
	case KindWrite:
		return "write error"
	default:
		return "unexpected error"
	}
}

// Error is a fetch failure tagged with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result describes a completed fetch.
type Result struct {
	// Filename is the resolved, collision-free filename.
	Filename string

	// Path is the absolute path of the saved file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// Options configures a fetch.
type Options struct {
	// Client is the HTTP client to use. Defaults to a client with
	// DefaultOptions (30s timeout, no retries).
	Client *httpclient.Client

	// Reporter receives stage and warning messages. May be nil.
	Reporter *progress.Reporter

	// ChunkSize is the read size for streaming the body. Default: 8192.
	ChunkSize int

	// now overrides the clock used for fallback filenames in tests.
	now func() time.Time
}

// Fetch downloads rawURL into st under a derived, collision-free filename.
//
// The URL must carry an http:// or https:// scheme; anything else is rejected
// before any network access. A URL path or response content type that does
// not look like an image only produces a warning.
func Fetch(ctx context.Context, rawURL string, st *store.Store, opts Options) (*Result, error) {
	// Apply defaults
	if opts.Client == nil {
		opts.Client = httpclient.NewClient(httpclient.DefaultOptions())
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 8192
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	rep := opts.Reporter

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, &Error{
			Kind: KindInvalidURL,
			Err:  errors.New("URL must start with http:// or https://"),
		}
	}

	if !naming.IsImagePath(rawURL) {
		rep.Warnf("Warning: URL doesn't appear to point to an image file")
		rep.Infof("Proceeding anyway...")
	}

	rep.Infof("Connecting to: %s", rawURL)

	resp, err := opts.Client.Get(ctx, rawURL)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if !strings.HasPrefix(resp.ContentType, "image/") {
		rep.Warnf("Warning: server response doesn't appear to be an image")
		rep.Infof("Content-Type: %s", resp.ContentType)
	}

	name := naming.Resolve(naming.Metadata{
		URL:                rawURL,
		ContentType:        resp.ContentType,
		ContentDisposition: resp.ContentDisposition,
	}, opts.now())

	name, err = naming.Unique(ctx, name, st.Exists)
	if err != nil {
		return nil, &Error{Kind: KindWrite, Err: err}
	}

	rep.Infof("Downloading: %s", name)

	size, err := writeBody(ctx, st, name, resp.ContentType, resp.Body, opts.ChunkSize)
	if err != nil {
		return nil, err
	}

	return &Result{
		Filename: name,
		Path:     st.Abs(name),
		Size:     size,
	}, nil
}

// writeBody streams body into the store in fixed-size chunks. The store
// writer stages to a temporary file; on any failure the write is abandoned
// before close so no partial file lands under name.
func writeBody(ctx context.Context, st *store.Store, name, contentType string, body io.Reader, chunkSize int) (int64, error) {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := st.NewWriter(wctx, name, contentType)
	if err != nil {
		return 0, &Error{Kind: KindWrite, Err: err}
	}

	buf := make([]byte, chunkSize)
	var written int64

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			nw, writeErr := w.Write(buf[:n])
			if writeErr != nil {
				cancel()
				w.Close()
				return 0, &Error{Kind: KindWrite, Err: writeErr}
			}
			written += int64(nw)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			cancel()
			w.Close()
			return 0, classify(readErr)
		}
	}

	if err := w.Close(); err != nil {
		return 0, &Error{Kind: KindWrite, Err: err}
	}

	return written, nil
}

// classify maps client errors onto the fetch failure taxonomy.
func classify(err error) error {
	var statusErr *httpclient.StatusError
	switch {
	case errors.As(err, &statusErr):
		return &Error{Kind: KindHTTP, Err: err}
	case errors.Is(err, httpclient.ErrTimeout):
		return &Error{Kind: KindTimeout, Err: err}
	case errors.Is(err, httpclient.ErrConnection):
		return &Error{Kind: KindConnection, Err: err}
	default:
		return &Error{Kind: KindRequest, Err: err}
	}
}
