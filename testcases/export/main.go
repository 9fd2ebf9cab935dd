// Command export renders the test corpus to grayscale coverage images and
// writes the case definitions, with expected and measured areas, to JSON.
// Run from the genera module root directory.
package main

import (
	"encoding/json"
	"flag"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/genera/raster"
	"seehuhn.de/go/genera/testcases"
)

func main() {
	dir := flag.String("dir", "testdata", "output directory")
	flag.Parse()

	if err := run(*dir); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	imgDir := filepath.Join(dir, "corpus")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			img, area := render(tc)
			jtc.MeasuredArea = area
			if err := writePNG(filepath.Join(imgDir, jtc.Name+".png"), img); err != nil {
				return err
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(filepath.Join(dir, "testcases.json"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	slog.Info("exported test cases", "count", len(out.TestCases), "dir", dir)
	return f.Close()
}

// render rasterises a test case and returns the coverage image together
// with the total covered area.
func render(tc testcases.TestCase) (*image.Gray, float64) {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	r := raster.NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}

	area := 0.0
	emit := func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
			area += float64(c)
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			r.FillEvenOdd(tc.Path, emit)
		} else {
			r.FillNonZero(tc.Path, emit)
		}
	case testcases.Stroke:
		r.Width = op.Width
		r.Cap = op.Cap
		r.Join = op.Join
		r.MiterLimit = op.MiterLimit
		r.Stroke(tc.Path, emit)
	}
	return img, area
}

type jsonTestCase struct {
	Name         string        `json:"name"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Path         []jsonSegment `json:"path"`
	Op           string        `json:"op"`
	FillRule     string        `json:"fill_rule,omitempty"`
	LineWidth    float64       `json:"line_width,omitempty"`
	LineCap      string        `json:"line_cap,omitempty"`
	LineJoin     string        `json:"line_join,omitempty"`
	MiterLimit   float64       `json:"miter_limit,omitempty"`
	Area         float64       `json:"area,omitempty"`
	Tol          float64       `json:"tol,omitempty"`
	MeasuredArea float64       `json:"measured_area"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path),
		Area:   tc.Area,
		Tol:    tc.Tol,
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		} else {
			jtc.FillRule = "nonzero"
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
	}
	return jtc
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i := range n {
			pt := p.Coords[k+i]
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
