// Package fetcher orchestrates a single fetch: validate the URL, issue one
// streaming GET, resolve a collision-free filename, and write the body to the
// store.
//
// The pipeline never prints verdicts; it returns a structured [Result] on
// success and a tagged [*Error] on failure so callers other than a terminal
// can consume outcomes. Stage and warning messages go through an optional
// progress.Reporter.
//
// # Usage
//
//	result, err := fetcher.Fetch(ctx, url, st, fetcher.Options{
//	    Reporter: reporter,
//	})
//	if err != nil {
//	    var ferr *fetcher.Error
//	    if errors.As(err, &ferr) {
//	        // branch on ferr.Kind
//	    }
//	}
//
// # Failure taxonomy
//
// Every failure is terminal; there are no retries. A failure before the GET
// is KindInvalidURL and causes no network access. Transport failures map to
// KindConnection, KindTimeout, or KindRequest; non-2xx responses to KindHTTP;
// local write failures to KindWrite. A write failure mid-stream abandons the
// staged file, so no partial file lands under the resolved name.
package fetcher
