package main

// lutgen writes the built-in LUT presets out as atlas PNGs, plus a
// catalog YAML, so they can be edited and then loaded with -luts.

import(
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/abworrall/photoedit/pkg/lut"
	"github.com/abworrall/photoedit/pkg/photoedit"
)

var(
	fDir string
)

func init() {
	flag.StringVar(&fDir, "dir", "luts", "where to write the atlases")
	flag.Parse()
}

func main() {
	if err := os.MkdirAll(fDir, 0755); err != nil {
		log.Fatal(err)
	}

	names := []string{}
	for name := range lut.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		atlas, err := lut.GenerateAtlas(name)
		if err != nil {
			log.Fatal(err)
		}
		filename := filepath.Join(fDir, name+".png")
		if err := photoedit.Save(atlas, filename, 100); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s\n", filename)
	}

	yml, err := lut.CatalogAsYaml(lut.DefaultCatalog())
	if err != nil {
		log.Fatal(err)
	}
	catalog := filepath.Join(fDir, "catalog.yaml")
	if err := ioutil.WriteFile(catalog, []byte(yml), 0644); err != nil {
		log.Fatal(fmt.Errorf("write '%s': %v", catalog, err))
	}
	log.Printf("wrote %s\n", catalog)
}
