package photoedit

import(
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/abworrall/photoedit/pkg/beautify"
	"github.com/abworrall/photoedit/pkg/emath"
	"github.com/abworrall/photoedit/pkg/lut"
	"github.com/abworrall/photoedit/pkg/raster"
)

// An Editor is one editing session on one image. Every destructive
// edit snapshots the current image into History first.
type Editor struct {
	Config
	Luts      *lut.Registry
	History   *History

	mu        sync.Mutex
	original *raster.Buffer
	current  *raster.Buffer
	edits     int
}

func NewEditor(cfg Config, luts *lut.Registry, img *raster.Buffer) *Editor {
	return &Editor{
		Config:   cfg,
		Luts:     luts,
		History:  NewHistory(cfg.HistoryDepth),
		original: img,
		current:  img,
	}
}

// NewLutRegistry builds the registry the config asks for: atlases from
// LutDir if set, else generated presets.
func NewLutRegistry(cfg Config) (*lut.Registry, error) {
	filters := lut.DefaultCatalog()
	if cfg.LutCatalog != "" {
		var err error
		if filters, err = lut.LoadCatalog(cfg.LutCatalog); err != nil {
			return nil, err
		}
	}

	var src lut.AtlasSource = lut.GeneratedSource{}
	if cfg.LutDir != "" {
		src = lut.DirSource{FS:os.DirFS(cfg.LutDir)}
	}

	reg := lut.NewRegistry(src, filters)
	reg.Verbosity = cfg.Verbosity
	return reg, nil
}

func (e *Editor)String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fmt.Sprintf("Editor[%s, %d edits, %s]", e.current, e.edits, e.History)
}

func (e *Editor)Current() *raster.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// apply runs a transform on the current image. Transforms that hand
// back their input (e.g. the identity filter) don't make history.
func (e *Editor)apply(name string, f func(*raster.Buffer) *raster.Buffer) *raster.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := f(e.current)
	if out == e.current {
		return out
	}

	e.History.Push(e.current)
	e.current = out
	e.edits++

	if e.Verbosity > 0 {
		log.Printf("edit %d: %s -> %s\n", e.edits, name, out)
	}
	return out
}

func (e *Editor)ApplyAdjustments(a Adjustments) *raster.Buffer {
	a = a.Clamped()
	return e.apply(fmt.Sprintf("adjust%+v", a), func(b *raster.Buffer) *raster.Buffer {
		return raster.ApplyColorMatrix(b, a.Matrix())
	})
}

func (e *Editor)ApplyLutFilter(id string, intensity float64) *raster.Buffer {
	return e.apply("lut:"+id, func(b *raster.Buffer) *raster.Buffer {
		return e.Luts.Apply(b, id, intensity)
	})
}

func (e *Editor)ApplyBeautify(effect beautify.Effect, intensity float64) *raster.Buffer {
	if e.Verbosity > 1 {
		e.dumpDiagnostics(effect, intensity)
	}
	return e.apply(effect.String(), func(b *raster.Buffer) *raster.Buffer {
		return ApplyBeautify(b, effect, intensity)
	})
}

func (e *Editor)Rotate(degrees float64) *raster.Buffer {
	return e.apply(fmt.Sprintf("rotate%.0f", degrees), func(b *raster.Buffer) *raster.Buffer {
		return raster.Rotate(b, degrees)
	})
}

func (e *Editor)Flip(axis raster.Axis) *raster.Buffer {
	return e.apply("flip-"+axis.String(), func(b *raster.Buffer) *raster.Buffer {
		return raster.Flip(b, axis)
	})
}

func (e *Editor)Crop(x, y, w, h int) *raster.Buffer {
	return e.apply(fmt.Sprintf("crop(%d,%d,%d,%d)", x, y, w, h), func(b *raster.Buffer) *raster.Buffer {
		return raster.Crop(b, x, y, w, h)
	})
}

// Commit makes a finished preview the current image.
func (e *Editor)Commit(pv Preview) *raster.Buffer {
	return e.apply(pv.String(), func(*raster.Buffer) *raster.Buffer { return pv.Image })
}

// Reset goes back to the image the session started with; it can be undone.
func (e *Editor)Reset() *raster.Buffer {
	return e.apply("reset", func(*raster.Buffer) *raster.Buffer { return e.original.Clone() })
}

func (e *Editor)Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev, ok := e.History.Undo(e.current)
	if ok {
		e.current = prev
	}
	return ok
}

func (e *Editor)Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, ok := e.History.Redo(e.current)
	if ok {
		e.current = next
	}
	return ok
}

func (e *Editor)CanUndo() bool { return e.History.CanUndo() }
func (e *Editor)CanRedo() bool { return e.History.CanRedo() }

// ApplyRecipe runs all the edits in the recipe, each one undoable.
func (e *Editor)ApplyRecipe(r Recipe) {
	if !r.Crop.IsZero() {
		e.Crop(r.Crop.X, r.Crop.Y, r.Crop.W, r.Crop.H)
	}
	if raster.QuarterTurns(r.Rotate) != 0 {
		e.Rotate(r.Rotate)
	}
	if r.Flip != "" {
		axis, err := raster.ParseAxis(r.Flip)
		if err != nil {
			log.Printf("recipe: %v\n", err)
		} else {
			e.Flip(axis)
		}
	}
	if !r.Adjust.IsNeutral() {
		e.ApplyAdjustments(r.Adjust)
	}
	if r.Filter != "" {
		e.ApplyLutFilter(r.Filter, r.FilterIntensity)
	}
	for _, step := range r.Effects {
		effect, err := beautify.ParseEffect(step.Effect)
		if err != nil {
			log.Printf("recipe: %v\n", err)
			continue
		}
		intensity := step.Intensity
		if intensity == 0 {
			intensity = effect.DefaultIntensity()
		}
		e.ApplyBeautify(effect, intensity)
	}
}

// RecipeFunc bundles the recipe's edits up as one pure transform, for
// rendering previews.
func (e *Editor)RecipeFunc(r Recipe) PreviewFunc {
	return func(b *raster.Buffer) *raster.Buffer {
		scratch := NewEditor(e.Config, e.Luts, b)
		scratch.Verbosity = 0
		scratch.History = NewHistory(1)
		scratch.ApplyRecipe(r)
		return scratch.Current()
	}
}

// NewPreviewer starts a preview pool sized and paced by the config.
// Finished previews can be handed to Commit.
func (e *Editor)NewPreviewer(ctx context.Context) *Previewer {
	p := NewPreviewer(ctx, e.PreviewWorkers, e.PreviewDelay)
	p.Verbosity = e.Verbosity
	if e.Verbosity > 0 {
		log.Printf("%s\n", p)
	}
	return p
}

// RequestPreview renders the recipe against the current image.
func (e *Editor)RequestPreview(p *Previewer, r Recipe) uint64 {
	return p.Request(e.Current(), e.RecipeFunc(r))
}

// dumpDiagnostics writes grayscale PNGs of the per-pixel luminance
// and, for vignettes, the attenuation mask.
func (e *Editor)dumpDiagnostics(effect beautify.Effect, intensity float64) {
	cur := e.Current()

	lum := emath.NewFloatGrid(cur.Width, cur.Height)
	for y:=0; y<cur.Height; y++ {
		for x:=0; x<cur.Width; x++ {
			lum.Set(x, y, float64(cur.Get(x, y).Luma()))
		}
	}
	log.Printf("luminance %s, median %.0f\n", lum.Stats(), lum.Percentile(0.5))
	if err := lum.ToImg("luminance", "diag-luminance.png"); err != nil {
		log.Printf("diagnostics: %v\n", err)
	}

	if effect == beautify.Vignette {
		mask := beautify.VignetteMask(cur.Width, cur.Height, intensity, beautify.DefaultVignetteRadius)
		if err := mask.ToImg(fmt.Sprintf("vignette @%.2f", intensity), "diag-vignette.png"); err != nil {
			log.Printf("diagnostics: %v\n", err)
		}
	}
}
