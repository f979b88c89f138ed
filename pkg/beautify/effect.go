package beautify

import(
	"fmt"
	"strings"

	"github.com/abworrall/photoedit/pkg/raster"
)

// An Effect is one of the one-tap beautify operations.
type Effect int

const(
	AutoEnhance Effect = iota
	Sharpen
	Vignette
)

type effectInfo struct {
	Name             string
	Label            string
	DefaultIntensity float64
}

var(
	effects = map[Effect]effectInfo{
		AutoEnhance: {"autoenhance", "Auto enhance", 0.8},
		Sharpen:     {"sharpen",     "Sharpen",      0.6},
		Vignette:    {"vignette",    "Vignette",     0.7},
	}

	Effects = []Effect{AutoEnhance, Sharpen, Vignette}
)

func (e Effect)String() string {
	if info, exists := effects[e]; exists {
		return info.Name
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

func (e Effect)Label() string             { return effects[e].Label }
func (e Effect)DefaultIntensity() float64 { return effects[e].DefaultIntensity }

func ListEffects() string {
	names := []string{}
	for _, e := range Effects {
		names = append(names, e.String())
	}
	return fmt.Sprintf("%v", names)
}

func ParseEffect(name string) (Effect, error) {
	for _, e := range Effects {
		if e.String() == strings.ToLower(name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("no beautify effect named '%s'", name)
}

// Apply runs the effect; intensity is clamped to [0,1].
func (e Effect)Apply(b *raster.Buffer, intensity float64) *raster.Buffer {
	switch e {
	case AutoEnhance: return ApplyAutoEnhance(b, intensity)
	case Sharpen:     return ApplySharpen(b, intensity)
	case Vignette:    return ApplyVignette(b, intensity, DefaultVignetteRadius)
	default:
		panic(fmt.Sprintf("beautify: unhandled %s", e))
	}
}
