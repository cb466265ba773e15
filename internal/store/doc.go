// Package store persists fetched content to a local directory.
//
// The directory is opened as a gocloud.dev blob bucket via the fileblob
// driver, which stages every write in a temporary file and renames it into
// place on Close. A fetch that fails mid-stream therefore never leaves a
// partial file under the resolved name.
//
// # Usage
//
//	st, err := store.Open("Fetched_Images")
//	defer st.Close()
//
//	taken, err := st.Exists(ctx, "photo.jpg")
//
//	w, err := st.NewWriter(ctx, "photo.jpg", "image/jpeg")
//	// stream body into w, then w.Close() to land the file
//
// Opening an existing directory is not an error; directory creation is
// idempotent.
package store
