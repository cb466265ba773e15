package naming

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// imageExts is the set of extensions recognized as image files.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
}

// extByMIME maps common image content types to a preferred extension.
// mime.ExtensionsByType is consulted for anything not listed here.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/bmp":  ".bmp",
	"image/webp": ".webp",
	"image/tiff": ".tiff",
}

// Metadata carries the response attributes consulted during resolution.
type Metadata struct {
	URL                string
	ContentType        string
	ContentDisposition string
}

// Resolve derives a local filename from response metadata.
//
// The Content-Disposition filename wins when present, then the last URL path
// segment when it carries an extension, then a timestamped fallback using the
// supplied clock. Names without a recognized image extension get a suffix
// inferred from the content type, or .jpg when inference fails.
func Resolve(meta Metadata, now time.Time) string {
	name := fromDisposition(meta.ContentDisposition)
	if name == "" {
		name = fromURL(meta.URL)
	}
	if name == "" {
		// Extensionless on purpose: the post-processing step below picks the
		// extension from the content type, or .jpg when inference fails.
		name = "image_" + now.Format("20060102_150405")
	}

	if !imageExts[strings.ToLower(path.Ext(name))] {
		name += extensionFor(meta.ContentType)
	}
	return name
}

// fromDisposition extracts the filename parameter from a Content-Disposition
// header, with quoting characters stripped.
func fromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return strings.Trim(params["filename"], `"'`)
}

// fromURL takes the last segment of the percent-decoded URL path, but only
// when it looks like a filename with an extension.
func fromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." || !strings.Contains(base, ".") {
		return ""
	}
	return base
}

// extensionFor infers a file extension from a content type.
func extensionFor(contentType string) string {
	ct := contentType
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.ToLower(strings.TrimSpace(ct))

	if ext, ok := extByMIME[ct]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(ct); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".jpg"
}

// IsImagePath reports whether the URL path ends in a recognized image
// extension. Used only as a soft pre-flight check; a mismatch is a warning,
// never a rejection.
func IsImagePath(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return imageExts[strings.ToLower(path.Ext(u.Path))]
}

// ExistsFunc reports whether a file with the given name is already taken.
type ExistsFunc func(ctx context.Context, name string) (bool, error)

// maxNumericProbes bounds the numeric suffix search before falling back to a
// randomized suffix.
const maxNumericProbes = 10000

// Unique returns a name not currently taken, derived from name.
//
// Taken names get a numeric suffix inserted before the extension, strictly
// increasing (photo_1.jpg, photo_2.jpg, ...). Once the numeric probe budget
// is exhausted a randomized suffix is used instead.
func Unique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	taken, err := exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", name, err)
	}
	if !taken {
		return name, nil
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 1; i <= maxNumericProbes; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	candidate := fmt.Sprintf("%s_%s%s", base, uuid.NewString()[:8], ext)
	taken, err = exists(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", candidate, err)
	}
	if taken {
		return "", fmt.Errorf("naming: no free name derived from %s", name)
	}
	return candidate, nil
}
