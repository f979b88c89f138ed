package collage

import(
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A NormalizedRect has all its coords in [0,1], as fractions of the
// output size.
type NormalizedRect struct {
	Left, Top, Right, Bottom float64
}

func (r NormalizedRect)String() string {
	return fmt.Sprintf("(%.3f,%.3f)-(%.3f,%.3f)", r.Left, r.Top, r.Right, r.Bottom)
}

func (r NormalizedRect)valid() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(r.Left) && in(r.Top) && in(r.Right) && in(r.Bottom) && r.Left <= r.Right && r.Top <= r.Bottom
}

// A Template is a named layout, one frame per image. Frames may
// touch or overlap; nobody checks.
type Template struct {
	ID         string
	Name       string
	ImageCount int
	Frames     []NormalizedRect
}

func NewTemplate(id, name string, count int, frames []NormalizedRect) (Template, error) {
	if len(frames) != count {
		return Template{}, fmt.Errorf("template '%s': %d frames for %d images", id, len(frames), count)
	}
	for i, f := range frames {
		if !f.valid() {
			return Template{}, fmt.Errorf("template '%s': frame %d %s outside [0,1]", id, i, f)
		}
	}
	return Template{ID:id, Name:name, ImageCount:count, Frames:frames}, nil
}

func mustTemplate(id, name string, count int, frames ...NormalizedRect) Template {
	t, err := NewTemplate(id, name, count, frames)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Template)String() string {
	return fmt.Sprintf("Template[%s %q, %d images]", t.ID, t.Name, t.ImageCount)
}

var(
	catalog = map[int][]Template{
		2: {
			mustTemplate("2-left-right", "Side by side", 2,
				NormalizedRect{0, 0, 0.5, 1},
				NormalizedRect{0.5, 0, 1, 1}),
			mustTemplate("2-top-bottom", "Stacked", 2,
				NormalizedRect{0, 0, 1, 0.5},
				NormalizedRect{0, 0.5, 1, 1}),
		},
		3: {
			mustTemplate("3-left1-right2", "One left, two right", 3,
				NormalizedRect{0, 0, 0.5, 1},
				NormalizedRect{0.5, 0, 1, 0.5},
				NormalizedRect{0.5, 0.5, 1, 1}),
			mustTemplate("3-right1-left2", "Two left, one right", 3,
				NormalizedRect{0, 0, 0.5, 0.5},
				NormalizedRect{0, 0.5, 0.5, 1},
				NormalizedRect{0.5, 0, 1, 1}),
			mustTemplate("3-top1-bottom2", "One top, two below", 3,
				NormalizedRect{0, 0, 1, 0.5},
				NormalizedRect{0, 0.5, 0.5, 1},
				NormalizedRect{0.5, 0.5, 1, 1}),
		},
		4: {
			mustTemplate("4-grid", "2x2 grid", 4,
				NormalizedRect{0, 0, 0.5, 0.5},
				NormalizedRect{0.5, 0, 1, 0.5},
				NormalizedRect{0, 0.5, 0.5, 1},
				NormalizedRect{0.5, 0.5, 1, 1}),
			mustTemplate("4-top1-bottom3", "One top, three below", 4,
				NormalizedRect{0, 0, 1, 0.5},
				NormalizedRect{0, 0.5, 0.333, 1},
				NormalizedRect{0.333, 0.5, 0.666, 1},
				NormalizedRect{0.666, 0.5, 1, 1}),
		},
	}
)

// TemplatesFor lists the layouts for a number of images. Counts with
// no hand-made layouts get the grid.
func TemplatesFor(count int) []Template {
	if ts, exists := catalog[count]; exists {
		out := make([]Template, len(ts))
		copy(out, ts)
		return out
	}
	return []Template{GridTemplate(count)}
}

// GridTemplate lays out n uniform cells, ceil(sqrt(n)) columns wide,
// filled row by row.
func GridTemplate(n int) Template {
	if n < 1 {
		return Template{ID:"grid-0", Name:"Grid"}
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))
	cellW, cellH := 1.0 / float64(cols), 1.0 / float64(rows)

	frames := make([]NormalizedRect, n)
	for i:=0; i<n; i++ {
		row, col := i / cols, i % cols
		left, top := float64(col) * cellW, float64(row) * cellH
		frames[i] = NormalizedRect{left, top, math.Min(left + cellW, 1), math.Min(top + cellH, 1)}
	}

	return Template{ID:fmt.Sprintf("grid-%d", n), Name:"Grid", ImageCount:n, Frames:frames}
}

// Lookup finds a template by id; "grid-N" ids build the N-image grid.
func Lookup(id string) (Template, error) {
	for _, ts := range catalog {
		for _, t := range ts {
			if t.ID == id {
				return t, nil
			}
		}
	}

	if strings.HasPrefix(id, "grid-") {
		if n, err := strconv.Atoi(strings.TrimPrefix(id, "grid-")); err == nil && n > 0 {
			return GridTemplate(n), nil
		}
	}

	return Template{}, fmt.Errorf("no collage template '%s'", id)
}

func ListTemplates() string {
	ids := []string{}
	for _, n := range []int{2, 3, 4} {
		for _, t := range catalog[n] {
			ids = append(ids, t.ID)
		}
	}
	return fmt.Sprintf("%v + grid-N", ids)
}
