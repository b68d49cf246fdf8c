// Package icon resolves desktop-entry Icon keys to files on disk, following
// the freedesktop icon theme layout closely enough for a launcher list.
package icon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/atomicstack/popup-launcher/internal/catalog"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

const (
	FallbackName = "application-x-executable"
	DefaultTheme = "hicolor"
	DefaultSize  = 32
)

var extensions = []string{".svg", ".png", ".xpm"}

type Resolver struct {
	theme   string
	size    int
	bases   []string
	pixmaps []string
	exists  func(string) bool
	cache   *cache.Cache
}

// NewResolver builds a resolver for the given theme and nominal size.
// getenv is used for the XDG base directories.
func NewResolver(theme string, size int, getenv func(string) string) *Resolver {
	if getenv == nil {
		getenv = os.Getenv
	}
	if theme == "" {
		theme = DefaultTheme
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Resolver{
		theme:   theme,
		size:    size,
		bases:   BaseDirs(getenv),
		pixmaps: []string{"/usr/share/pixmaps"},
		exists:  fileExists,
		cache:   cache.New(cache.NoExpiration, 0),
	}
}

// BaseDirs lists icon theme roots in lookup order.
func BaseDirs(getenv func(string) string) []string {
	var out []string
	home := getenv("HOME")
	if home != "" {
		out = append(out, filepath.Join(home, ".icons"))
	}
	if dataHome := getenv("XDG_DATA_HOME"); dataHome != "" {
		out = append(out, filepath.Join(dataHome, "icons"))
	} else if home != "" {
		out = append(out, filepath.Join(home, ".local", "share", "icons"))
	}
	dirs := getenv("XDG_DATA_DIRS")
	if dirs == "" {
		dirs = "/usr/local/share:/usr/share"
	}
	for _, d := range filepath.SplitList(dirs) {
		if d != "" {
			out = append(out, filepath.Join(d, "icons"))
		}
	}
	return dedup(out)
}

// Resolve returns the icon for name, or the generic executable icon when
// nothing matches. The result is cached for the life of the resolver.
func (r *Resolver) Resolve(name string) catalog.IconRef {
	name = strings.TrimSpace(name)
	if cached, ok := r.cache.Get(name); ok {
		return cached.(catalog.IconRef)
	}
	ref, ok := r.lookup(name)
	if !ok {
		events.Catalog.IconFallback(name)
		ref = r.fallback()
	}
	r.cache.Set(name, ref, cache.NoExpiration)
	return ref
}

func (r *Resolver) fallback() catalog.IconRef {
	if cached, ok := r.cache.Get(FallbackName); ok {
		return cached.(catalog.IconRef)
	}
	ref, _ := r.lookup(FallbackName)
	r.cache.Set(FallbackName, ref, cache.NoExpiration)
	return ref
}

func (r *Resolver) lookup(name string) (catalog.IconRef, bool) {
	if name == "" {
		return catalog.IconRef{}, false
	}
	if filepath.IsAbs(name) {
		if r.exists(name) {
			return refFor(name), true
		}
		return catalog.IconRef{}, false
	}
	for _, path := range r.candidates(name) {
		if r.exists(path) {
			return refFor(path), true
		}
	}
	return catalog.IconRef{}, false
}

// candidates lists paths in priority order: configured theme, then hicolor,
// scalable before fixed size, then pixmaps.
func (r *Resolver) candidates(name string) []string {
	themes := dedup([]string{r.theme, DefaultTheme})
	subdirs := []string{
		filepath.Join("scalable", "apps"),
		filepath.Join(fmt.Sprintf("%dx%d", r.size, r.size), "apps"),
	}
	var out []string
	for _, theme := range themes {
		for _, base := range r.bases {
			for _, sub := range subdirs {
				for _, ext := range extensions {
					out = append(out, filepath.Join(base, theme, sub, name+ext))
				}
			}
		}
	}
	for _, dir := range r.pixmaps {
		if hasIconExt(name) {
			out = append(out, filepath.Join(dir, name))
		}
		for _, ext := range extensions {
			out = append(out, filepath.Join(dir, name+ext))
		}
	}
	return out
}

func refFor(path string) catalog.IconRef {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return catalog.VectorPath(path)
	}
	return catalog.RasterPath(path)
}

func hasIconExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
