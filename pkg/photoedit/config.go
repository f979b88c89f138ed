package photoedit

import(
	"fmt"
	"io/ioutil"
	"log"
	"time"
	"gopkg.in/yaml.v2"

	"github.com/abworrall/photoedit/pkg/beautify"
	"github.com/abworrall/photoedit/pkg/collage"
	"github.com/abworrall/photoedit/pkg/ecolor"
)

// Adjustments are the three tonal sliders.
type Adjustments struct {
	Brightness int      // [-100,100]
	Contrast   float64  // [0.5,2.0]
	Saturation float64  // [0,2.0]
}

func NeutralAdjustments() Adjustments {
	return Adjustments{Brightness:0, Contrast:1.0, Saturation:1.0}
}

func (a Adjustments)IsNeutral() bool { return a == NeutralAdjustments() }

// An EffectStep is one beautify effect in a recipe.
type EffectStep struct {
	Effect    string
	Intensity float64
}

type CropBox struct {
	X, Y, W, H int
}

func (c CropBox)IsZero() bool { return c == CropBox{} }

// A Recipe is a list of edits to apply, in a fixed order: geometry
// (crop, rotate, flip), then adjustments, then the LUT filter, then
// the effects.
type Recipe struct {
	Crop            CropBox
	Rotate          float64
	Flip            string       // "", "h" or "v"
	Adjust          Adjustments
	Filter          string
	FilterIntensity float64
	Effects         []EffectStep
}

type CollageConfig struct {
	Template   string
	Width      int
	Height     int
	Spacing    int
	Background string // "#rrggbb"
}

type Config struct {
	Verbosity          int

	HistoryDepth       int
	PreviewDelay       time.Duration
	PreviewWorkers     int

	LutDir             string  // if empty, the built-in presets get generated
	LutCatalog         string  // YAML list of filters; empty means the default catalog
	JPEGQuality        int

	Recipe             Recipe
	Collage            CollageConfig
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func NewConfig() Config {
	return Config{
		HistoryDepth:   DefaultHistoryDepth,
		PreviewDelay:   DefaultPreviewDelay,
		PreviewWorkers: 2,
		JPEGQuality:    95,
		Recipe: Recipe{
			Adjust:          NeutralAdjustments(),
			FilterIntensity: 1.0,
		},
		Collage: CollageConfig{
			Width:      collage.FinalSize,
			Height:     collage.FinalSize,
			Spacing:    collage.DefaultSpacing * 2,
			Background: "#ffffff",
		},
	}
}

func loadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

func (c Config)GetEffects() []beautify.Effect {
	out := []beautify.Effect{}
	for _, step := range c.Recipe.Effects {
		e, err := beautify.ParseEffect(step.Effect)
		if err != nil {
			log.Fatalf("%v", err)
		}
		out = append(out, e)
	}
	return out
}

func (c Config)GetBackground() ecolor.ARGB {
	if c.Collage.Background == "" {
		return ecolor.White
	}
	col, err := ecolor.ParseHex(c.Collage.Background)
	if err != nil {
		log.Fatalf("collage background: %v", err)
	}
	return col
}
