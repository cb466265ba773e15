// Package httpclient provides the HTTP client used to fetch remote content.
//
// This package handles:
//   - A single streaming GET per fetch, bounded by a request timeout
//   - Exposure of the response headers consulted for naming
//   - Classification of transport failures into connection and timeout errors
//
// There are no retries: every failure is terminal and reported once.
//
// # Usage
//
//	client := httpclient.NewClient(httpclient.DefaultOptions())
//
//	resp, err := client.Get(ctx, url)
//	if err != nil {
//	    // errors.Is(err, httpclient.ErrTimeout)
//	    // errors.Is(err, httpclient.ErrConnection)
//	    // errors.As(err, &httpclient.StatusError{...})
//	}
//	defer resp.Body.Close()
package httpclient
