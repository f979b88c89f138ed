package main

import(
	"context"
	"flag"
	"log"
	"strings"

	"github.com/abworrall/photoedit/pkg/beautify"
	"github.com/abworrall/photoedit/pkg/collage"
	"github.com/abworrall/photoedit/pkg/lut"
	"github.com/abworrall/photoedit/pkg/photoedit"
	"github.com/abworrall/photoedit/pkg/raster"
)

var(
	fVerbosity int
	fOutput string
	fBrightness int
	fContrast float64
	fSaturation float64
	fFilter string
	fFilterIntensity float64
	fEffects string
	fRotate float64
	fFlip string
	fCrop string
	fLutDir string
	fLutCatalog string
	fQuality int
	fCollage string
	fWidth int
	fHeight int
	fSpacing int
	fBackground string
	fListFilters bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fOutput, "o", "edited.jpg", "output file (.jpg, .png, .tif, .bmp, .hdr)")

	flag.IntVar(&fBrightness, "brightness", 0, "brightness delta [-100,100]")
	flag.Float64Var(&fContrast, "contrast", 1.0, "contrast factor [0.5,2.0]")
	flag.Float64Var(&fSaturation, "saturation", 1.0, "saturation factor [0,2.0]")

	flag.StringVar(&fFilter, "filter", "", "LUT filter to apply (see -listfilters)")
	flag.Float64Var(&fFilterIntensity, "filterintensity", 1.0, "LUT filter strength [0,1]; default is the filter's own")
	flag.StringVar(&fEffects, "effects", "", "comma separated beautify effects, from "+beautify.ListEffects()+", optionally name=intensity")

	flag.Float64Var(&fRotate, "rotate", 0, "rotate clockwise, in degrees (snapped to quarter turns)")
	flag.StringVar(&fFlip, "flip", "", "flip the image: h or v")
	flag.StringVar(&fCrop, "crop", "", "crop to x,y,w,h")

	flag.StringVar(&fLutDir, "luts", "", "dir of LUT atlas images; if not set, built-in presets are used")
	flag.StringVar(&fLutCatalog, "catalog", "", "YAML file listing the LUT filters")
	flag.IntVar(&fQuality, "quality", 95, "JPEG quality")
	flag.BoolVar(&fListFilters, "listfilters", false, "list the LUT filters, and exit")

	flag.StringVar(&fCollage, "collage", "", "make a collage of all the inputs, with this template: "+collage.ListTemplates())
	flag.IntVar(&fWidth, "width", collage.FinalSize, "collage width")
	flag.IntVar(&fHeight, "height", collage.FinalSize, "collage height")
	flag.IntVar(&fSpacing, "spacing", collage.DefaultSpacing*2, "collage spacing, in pixels")
	flag.StringVar(&fBackground, "bg", "#ffffff", "collage background color")
	flag.Parse()

	log.Printf("photoedit starting\n")
}

// Flags only override the config file when they were given
func applyFlags(cfg *photoedit.Config) map[string]bool {
	given := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		given[f.Name] = true
		switch f.Name {
		case "v":          cfg.Verbosity = fVerbosity
		case "brightness": cfg.Recipe.Adjust.Brightness = fBrightness
		case "contrast":   cfg.Recipe.Adjust.Contrast = fContrast
		case "saturation": cfg.Recipe.Adjust.Saturation = fSaturation
		case "filter":     cfg.Recipe.Filter = fFilter
		case "filterintensity": cfg.Recipe.FilterIntensity = fFilterIntensity
		case "effects":    cfg.Recipe.Effects = parseEffects(fEffects)
		case "rotate":     cfg.Recipe.Rotate = fRotate
		case "flip":       cfg.Recipe.Flip = fFlip
		case "crop":       cfg.Recipe.Crop = parseCrop(fCrop)
		case "luts":       cfg.LutDir = fLutDir
		case "catalog":    cfg.LutCatalog = fLutCatalog
		case "quality":    cfg.JPEGQuality = fQuality
		case "collage":    cfg.Collage.Template = fCollage
		case "width":      cfg.Collage.Width = fWidth
		case "height":     cfg.Collage.Height = fHeight
		case "spacing":    cfg.Collage.Spacing = fSpacing
		case "bg":         cfg.Collage.Background = fBackground
		}
	})
	return given
}

func parseEffects(s string) []photoedit.EffectStep {
	steps := []photoedit.EffectStep{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		step := photoedit.EffectStep{Effect:item}
		if name, val, found := strings.Cut(item, "="); found {
			step.Effect = name
			step.Intensity = parseFloat(val)
		}
		if _, err := beautify.ParseEffect(step.Effect); err != nil {
			log.Fatal(err)
		}
		steps = append(steps, step)
	}
	return steps
}

func main() {
	ws := photoedit.NewWorkspace()
	if err := ws.LoadFilesAndDirs(context.Background(), flag.Args()...); err != nil {
		log.Fatal(err)
	}
	given := applyFlags(&ws.Config)

	luts, err := photoedit.NewLutRegistry(ws.Config)
	if err != nil {
		log.Fatal(err)
	}

	// A filter picked on the command line gets its own default strength
	if given["filter"] && !given["filterintensity"] {
		if f, exists := luts.Filter(ws.Recipe.Filter); exists {
			ws.Recipe.FilterIntensity = f.DefaultIntensity
		}
	}

	if fListFilters {
		for _, f := range luts.Filters() {
			log.Printf("  %s\n", f)
		}
		return
	}

	if ws.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", ws.Config.AsYaml())
	}

	if len(ws.Photos) == 0 {
		log.Fatal("no input images")
	}

	var out *raster.Buffer
	if ws.Collage.Template != "" {
		out = makeCollage(ws, luts)
	} else {
		out = edit(ws.Config, luts, ws.Photos[0])
	}

	if err := photoedit.Save(out, fOutput, ws.JPEGQuality); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%s)\n", fOutput, out)
}

func edit(cfg photoedit.Config, luts *lut.Registry, p photoedit.Photo) *raster.Buffer {
	e := photoedit.NewEditor(cfg, luts, p.Buffer)
	e.ApplyRecipe(cfg.Recipe)

	if cfg.Verbosity > 0 {
		log.Printf("%s: %s\n", p, e)
	}
	return e.Current()
}

// Each input is edited with the recipe, and shrunk, before being laid out
func makeCollage(ws photoedit.Workspace, luts *lut.Registry) *raster.Buffer {
	images := []*raster.Buffer{}
	for _, p := range ws.Photos {
		images = append(images, collage.Fit(edit(ws.Config, luts, p), collage.MaxInputSide))
	}

	c := ws.Collage
	return photoedit.ComposeCollage(images, c.Template, c.Width, c.Height, c.Spacing, ws.GetBackground())
}
