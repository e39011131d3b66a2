package webserver

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed assets/viewer.js assets/viewer.css
var embeddedAssets embed.FS

// Logical asset names referenced by the page.
const (
	scriptAsset = "viewer.js"
	styleAsset  = "viewer.css"
)

// fingerprintLength is the number of hex digits of the content hash kept
// in fingerprinted file names.
const fingerprintLength = 12

type asset struct {
	body      []byte
	etag      string
	immutable bool
}

// assetSet serves the embedded assets under their logical names and under
// fingerprinted names such as viewer.3f2a9c0d1b4e.js. Pages link the
// fingerprinted names, which never change content and are cached for good.
type assetSet struct {
	baseURL      string
	files        map[string]asset
	fingerprints map[string]string
}

// loadAssets fingerprints the embedded assets. A non-empty baseURL makes
// pages link an external host, which serves the logical names itself.
func loadAssets(baseURL string) (*assetSet, error) {
	set := &assetSet{
		baseURL:      strings.TrimRight(baseURL, "/"),
		files:        map[string]asset{},
		fingerprints: map[string]string{},
	}
	for _, name := range []string{scriptAsset, styleAsset} {
		body, err := embeddedAssets.ReadFile("assets/" + name)
		if err != nil {
			return nil, fmt.Errorf("webserver: read asset %s: %w", name, err)
		}
		sum := sha256.Sum256(body)
		hash := hex.EncodeToString(sum[:])[:fingerprintLength]
		ext := path.Ext(name)
		fingerprinted := strings.TrimSuffix(name, ext) + "." + hash + ext
		etag := `"` + hash + `"`

		set.files[name] = asset{body: body, etag: etag}
		set.files[fingerprinted] = asset{body: body, etag: etag, immutable: true}
		set.fingerprints[name] = fingerprinted
	}
	return set, nil
}

// URL returns the address pages use for a logical asset name.
func (s *assetSet) URL(logicalName string) (string, error) {
	fingerprinted, ok := s.fingerprints[logicalName]
	if !ok {
		return "", fmt.Errorf("webserver: asset not found: %s", logicalName)
	}
	if s.baseURL != "" {
		return s.baseURL + "/" + logicalName, nil
	}
	return "/assets/" + fingerprinted, nil
}

// ServeHTTP serves GET /assets/{name}.
func (s *assetSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	file, ok := s.files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if file.immutable {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.Header().Set("ETag", file.etag)
	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(file.body))
}
