package lut

import(
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// IdentityID is the logical "no filter" filter; it never touches a cube.
const IdentityID = "identity"

// A Filter is a catalog entry for a named look.
type Filter struct {
	ID               string
	Name             string
	File             string   // atlas image, relative to the LUT dir
	Category         string
	DefaultIntensity float64  // [0,1]
}

func (f Filter)String() string {
	return fmt.Sprintf("Filter[%s %q (%s) @%.2f]", f.ID, f.Name, f.Category, f.DefaultIntensity)
}

func DefaultCatalog() []Filter {
	return []Filter{
		{ID: "identity",  Name: "Original",  File: "identity.png",  Category: "basic",        DefaultIntensity: 1.00},
		{ID: "grayscale", Name: "Mono",      File: "grayscale.png", Category: "basic",        DefaultIntensity: 0.80},
		{ID: "warm",      Name: "Sunny",     File: "warm.png",      Category: "color",        DefaultIntensity: 0.75},
		{ID: "cool",      Name: "Frost",     File: "cool.png",      Category: "color",        DefaultIntensity: 0.75},
		{ID: "vintage",   Name: "Nostalgia", File: "vintage.png",   Category: "artistic",     DefaultIntensity: 0.70},
		{ID: "vivid",     Name: "Vivid",     File: "vivid.png",     Category: "artistic",     DefaultIntensity: 0.80},
		{ID: "romantic",  Name: "Romance",   File: "romantic.png",  Category: "artistic",     DefaultIntensity: 0.75},
		{ID: "cinematic", Name: "Cinema",    File: "cinematic.png", Category: "professional", DefaultIntensity: 0.85},
	}
}

type catalogFile struct {
	Filters []Filter
}

func newCatalogFromYaml(b []byte) ([]Filter, error) {
	c := catalogFile{}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	for i, f := range c.Filters {
		if f.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if f.File == "" && f.ID != IdentityID {
			c.Filters[i].File = f.ID + ".png"
		}
	}
	return c.Filters, nil
}

// LoadCatalog reads a list of filters from a YAML file.
func LoadCatalog(filename string) ([]Filter, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("catalog read %s: %v", filename, err)
	}

	filters, err := newCatalogFromYaml(contents)
	if err != nil {
		return nil, fmt.Errorf("catalog parse %s: %v", filename, err)
	}
	return filters, nil
}

func CatalogAsYaml(filters []Filter) (string, error) {
	b, err := yaml.Marshal(catalogFile{Filters:filters})
	return string(b), err
}
