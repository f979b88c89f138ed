package lut

import(
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/abworrall/photoedit/pkg/raster"
)

// An AtlasSource knows how to find the atlas image for a filter.
type AtlasSource interface {
	Atlas(f Filter) (image.Image, error)
}

// DirSource reads atlas images (png or jpeg) out of a filesystem.
type DirSource struct {
	FS fs.FS
}

func (ds DirSource)Atlas(f Filter) (image.Image, error) {
	reader, err := ds.FS.Open(f.File)
	if err != nil {
		return nil, fmt.Errorf("open+r atlas '%s': %v", f.File, err)
	}
	defer reader.Close()

	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode atlas '%s': %v", f.File, err)
	}
	return img, nil
}

// GeneratedSource bakes the built-in presets on demand.
type GeneratedSource struct{}

func (GeneratedSource)Atlas(f Filter) (image.Image, error) {
	return GenerateAtlas(f.ID)
}

// Registry owns the filter catalog and a cache of loaded cubes. Make
// one per application, and pass it around.
type Registry struct {
	Verbosity int

	src      AtlasSource
	filters  []Filter

	mu       sync.Mutex
	cubes    map[string]*Cube
}

func NewRegistry(src AtlasSource, filters []Filter) *Registry {
	return &Registry{
		src:     src,
		filters: filters,
		cubes:   map[string]*Cube{},
	}
}

func (r *Registry)Filters() []Filter {
	out := make([]Filter, len(r.filters))
	copy(out, r.filters)
	return out
}

func (r *Registry)Filter(id string) (Filter, bool) {
	for _, f := range r.filters {
		if f.ID == id {
			return f, true
		}
	}
	return Filter{}, false
}

// Cube loads (and caches) the cube for a filter. Failures are not
// cached, so a later call will retry.
func (r *Registry)Cube(id string) (*Cube, error) {
	f, exists := r.Filter(id)
	if !exists {
		return nil, fmt.Errorf("no LUT filter '%s'", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, exists := r.cubes[id]; exists {
		return c, nil
	}

	img, err := r.src.Atlas(f)
	if err != nil {
		return nil, fmt.Errorf("lut '%s': %v", id, err)
	}
	c, err := NewCube(id, img)
	if err != nil {
		return nil, err
	}

	if r.Verbosity > 0 {
		log.Printf("Loaded %s\n", c)
	}
	r.cubes[id] = c
	return c, nil
}

// Apply grades b with the named filter. The identity filter gives
// back b itself. If the cube can't be had, the failure is logged and
// b comes back ungraded.
func (r *Registry)Apply(b *raster.Buffer, id string, intensity float64) *raster.Buffer {
	if id == IdentityID {
		return b
	}

	c, err := r.Cube(id)
	if err != nil {
		log.Printf("LUT filter skipped: %v\n", err)
		return b
	}
	return Apply(b, c, intensity)
}

// Preload pulls every cube into the cache.
func (r *Registry)Preload() error {
	for _, f := range r.filters {
		if f.ID == IdentityID {
			continue
		}
		if _, err := r.Cube(f.ID); err != nil {
			return err
		}
	}
	return nil
}

// Release empties the cache.
func (r *Registry)Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cubes = map[string]*Cube{}
}

func (r *Registry)Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cubes)
}
