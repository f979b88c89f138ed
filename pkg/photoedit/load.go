package photoedit

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/abworrall/photoedit/pkg/raster"
)

// A Photo is an image loaded from disk.
type Photo struct {
	Filename string
	*raster.Buffer
}

func (p Photo)String() string {
	return fmt.Sprintf("Photo[%s %s]", filepath.Base(p.Filename), p.Buffer)
}

// A Workspace is the set of inputs named on the command line: photos,
// plus (optionally) a YAML file with the base configuration.
type Workspace struct {
	Config
	Photos []Photo
}

func NewWorkspace() Workspace {
	return Workspace{Config:NewConfig()}
}

var imageExts = map[string]bool{".jpg":true, ".jpeg":true, ".png":true, ".tif":true, ".tiff":true, ".bmp":true, ".webp":true}

// LoadFilesAndDirs walks the args (recursing into dirs), loads any
// config it finds straight away, and then decodes the photos
// concurrently. Photos keep the order they were found in.
func (ws *Workspace)LoadFilesAndDirs(ctx context.Context, args ...string) error {
	filenames := []string{}
	if err := ws.walk(args, &filenames); err != nil {
		return err
	}

	photos := make([]Photo, len(filenames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, filename := range filenames {
		i, filename := i, filename
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("loadfile %s: %v", filename, err)
			}
			b, err := LoadImage(filename, ws.Verbosity)
			if err != nil {
				return fmt.Errorf("loadfile %s: %v", filename, err)
			}
			photos[i] = Photo{Filename:filename, Buffer:b}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ws.Photos = append(ws.Photos, photos...)
	return nil
}

func (ws *Workspace)walk(args []string, filenames *[]string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			// Is a dir, recurse into contents
			contents, err := ioutil.ReadDir(arg)
			if err != nil {
				return fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if err := ws.walk([]string{filepath.Join(arg, content.Name())}, filenames); err != nil {
					return fmt.Errorf("load %s: %v", arg, err)
				}
			}

		case strings.ToLower(filepath.Ext(arg)) == ".yaml":
			cfg, err := loadConfig(arg)
			if err != nil {
				return fmt.Errorf("Loading %s as config YAML failed: %v", arg, err)
			}
			ws.Config = cfg
			log.Printf("Loaded base configuration from %s\n", arg)

		case imageExts[strings.ToLower(filepath.Ext(arg))]:
			*filenames = append(*filenames, arg)
		}
	}

	return nil
}

// LoadImage decodes a single image file, by extension. JPEGs get
// their EXIF orientation applied.
func LoadImage(filename string, verbosity int) (*raster.Buffer, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	var img image.Image
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg": img, err = jpeg.Decode(reader)
	case ".png":          img, err = png.Decode(reader)
	case ".tif", ".tiff": img, err = tiff.Decode(reader)
	case ".bmp":          img, err = bmp.Decode(reader)
	case ".webp":         img, err = webp.Decode(reader)
	default:
		return nil, fmt.Errorf("'%s': unknown image type '%s'", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s decoding '%s': %v", ext, filename, err)
	}

	b := raster.FromImage(img)

	if ext == ".jpg" || ext == ".jpeg" {
		if _, err := reader.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewind '%s': %v", filename, err)
		}
		orientation, err := exifOrientation(reader)
		if err != nil {
			if verbosity > 0 {
				log.Printf("no EXIF orientation for %s: %v\n", filename, err)
			}
		} else {
			b = Orient(b, orientation)
		}
	}

	return b, nil
}

func exifOrientation(r io.Reader) (int, error) {
	ex, err := exif.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("exif parsing: %v", err)
	}

	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return 0, fmt.Errorf("exif Orientation: %v", err)
	}
	val, err := tag.Int(0)
	if err != nil {
		return 0, fmt.Errorf("exif Orientation: %v", err)
	}
	return val, nil
}

// Orient turns an image the right way up, given its EXIF orientation (1-8).
func Orient(b *raster.Buffer, orientation int) *raster.Buffer {
	switch orientation {
	case 2: return raster.Flip(b, raster.Horizontal)
	case 3: return raster.Rotate(b, 180)
	case 4: return raster.Flip(b, raster.Vertical)
	case 5: return raster.Flip(raster.Rotate(b, 90), raster.Horizontal)
	case 6: return raster.Rotate(b, 90)
	case 7: return raster.Flip(raster.Rotate(b, 270), raster.Horizontal)
	case 8: return raster.Rotate(b, 270)
	default:
		return b
	}
}
