// Package naming derives collision-free local filenames for fetched content.
//
// Content arriving over HTTP has no guaranteed name of its own. This package
// produces a plausible, extension-bearing filename from response metadata, in
// priority order:
//
//  1. Content-Disposition filename parameter, used verbatim
//  2. Last URL path segment, when it carries an extension
//  3. Synthesized image_<timestamp>.jpg fallback
//
// A resolved name whose extension is not a recognized image extension gets a
// suffix inferred from the Content-Type, or .jpg when inference fails. This
// can produce a double extension (name.ext.jpg); that matches the documented
// behavior and is left as-is.
//
// # Uniqueness
//
// [Unique] probes candidate names against an existence check and appends a
// numeric suffix (photo_1.jpg, photo_2.jpg, ...) until a free name is found.
// The probe is bounded; past the bound a randomized suffix is used instead.
package naming
