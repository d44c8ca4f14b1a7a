// Package images resolves raw image URLs into the stored variants attached to
// products. Transformation itself happens inside the image CDN; this package
// only derives the delivery URLs and the external handle.
package images

import (
	"fmt"
	"net/url"
	"strings"
)

// Processed is the set of variants stored for one product image.
type Processed struct {
	OriginalURL string `json:"originalUrl"`
	StandardURL string `json:"standardUrl"`
	PublicID    string `json:"publicId"`
}

// Processor turns a raw image URL into the stored variants. Implementations
// must be safe for concurrent use.
type Processor interface {
	Process(rawURL, folder string) (Processed, error)
}

// Cloudinary derives variants from Cloudinary delivery URLs. The standard
// display-resolution variant is produced by a named transformation inserted
// into the URL path; no network call is involved.
type Cloudinary struct {
	// Transformation is the named transformation for the display-resolution
	// variant, e.g. "t_product_standard".
	Transformation string
}

// NewCloudinary creates a Cloudinary processor with the default product
// transformation.
func NewCloudinary() *Cloudinary {
	return &Cloudinary{Transformation: "t_product_standard"}
}

// Process derives the standard URL and public ID from a Cloudinary delivery
// URL. URLs that are not Cloudinary delivery URLs pass through unchanged with
// no public ID, so externally hosted images can still be attached. The folder
// argument is informational: Cloudinary URLs already carry their folder in the
// public ID path.
func (c *Cloudinary) Process(rawURL, folder string) (Processed, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Processed{}, fmt.Errorf("invalid image URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Processed{}, fmt.Errorf("invalid image URL %q: scheme must be http or https", rawURL)
	}

	const uploadSegment = "/upload/"
	idx := strings.Index(u.Path, uploadSegment)
	if idx < 0 {
		return Processed{
			OriginalURL: rawURL,
			StandardURL: rawURL,
		}, nil
	}

	rest := u.Path[idx+len(uploadSegment):]

	standard := *u
	standard.Path = u.Path[:idx+len(uploadSegment)] + c.Transformation + "/" + rest

	return Processed{
		OriginalURL: rawURL,
		StandardURL: standard.String(),
		PublicID:    publicIDFrom(rest),
	}, nil
}

// publicIDFrom strips the version segment and the file extension from the
// path that follows /upload/, leaving the Cloudinary public ID.
func publicIDFrom(rest string) string {
	segments := strings.Split(rest, "/")
	if len(segments) > 1 && isVersionSegment(segments[0]) {
		segments = segments[1:]
	}
	id := strings.Join(segments, "/")
	if dot := strings.LastIndex(id, "."); dot > strings.LastIndex(id, "/") {
		id = id[:dot]
	}
	return id
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
