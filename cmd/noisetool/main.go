package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/go-gl/mathgl/mgl64"

	"shader-frame/internal/field"
	"shader-frame/internal/noise"
	"shader-frame/internal/render"
	"shader-frame/internal/shader"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "list":
		runList()
	case "sample":
		err = runSample(args)
	case "cellular":
		err = runCellular(args)
	case "png":
		err = runPNG(args)
	case "view":
		err = runView(args)
	case "stats":
		err = runStats(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: noisetool <command> [flags] [args]

Commands:
  list                                  List shaders and fields
  sample [-octaves N] <field> <x> <y> <z>  Evaluate a field at a point
  cellular <x> <y> <z> <k>              Print the k nearest Worley features
  png  [-size WxH] [-t T] [-out file] <shader>  Render a still frame as PNG
  view [-size WxH] [-t T] <shader>      Print one frame as truecolor ANSI
  stats [-n N]                          Range and mean of every field over a grid`)
}

// --- list ---

func runList() {
	fmt.Println("Shaders:")
	for _, e := range shader.All() {
		fmt.Printf("  %-22s %s\n", e.Name, e.Description)
	}
	fmt.Println("\nFields:")
	for _, e := range field.All() {
		fmt.Printf("  %-22s [%g, %g]  %s\n", e.Name, e.Lo, e.Hi, e.Description)
	}
}

// --- sample ---

func runSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	octaves := fs.Int("octaves", 1, "fractal octaves (lacunarity 2, persistence 0.5)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 4 {
		return fmt.Errorf("usage: noisetool sample [-octaves N] <field> <x> <y> <z>")
	}

	f, err := field.Lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	at, err := parsePoint(fs.Args()[1:4])
	if err != nil {
		return err
	}

	fn := f.Fn
	if *octaves > 1 {
		fn = field.FBM(fn, *octaves, 2, 0.5)
	}
	fmt.Printf("%s(%g, %g, %g) = %.17g\n", f.Name, at.X(), at.Y(), at.Z(), fn(at.X(), at.Y(), at.Z()))
	return nil
}

// --- cellular ---

func runCellular(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: noisetool cellular <x> <y> <z> <k>")
	}
	at, err := parsePoint(args[:3])
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("k: %w", err)
	}

	for i, f := range noise.Cellular(at, k) {
		fmt.Printf("F%d  distance %.6f  id %10d  delta (%.4f, %.4f, %.4f)\n",
			i+1, f.Distance, f.ID, f.Delta.X(), f.Delta.Y(), f.Delta.Z())
	}
	return nil
}

// --- png ---

func runPNG(args []string) error {
	fs := flag.NewFlagSet("png", flag.ContinueOnError)
	size := fs.String("size", "512x512", "image size as WxH")
	t := fs.Float64("t", 0, "time in seconds")
	out := fs.String("out", "", "output file (default: <shader>.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: noisetool png [-size WxH] [-t T] [-out file] <shader>")
	}
	if !isFinite(*t) {
		return fmt.Errorf("-t must be finite, got %v", *t)
	}

	sh, err := shader.Lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	w, h, err := parseSize(*size)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = sh.Name + ".png"
	}

	img := render.NewImage(w, h)
	render.Rasterize(img, sh.Fn, *t)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := img.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d, t=%g)\n", path, w, h, *t)
	return nil
}

// --- view ---

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	size := fs.String("size", "80x24", "terminal size as COLSxROWS")
	t := fs.Float64("t", 0, "time in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: noisetool view [-size WxH] [-t T] <shader>")
	}
	if !isFinite(*t) {
		return fmt.Errorf("-t must be finite, got %v", *t)
	}

	sh, err := shader.Lookup(fs.Arg(0))
	if err != nil {
		return err
	}
	cols, rows, err := parseSize(*size)
	if err != nil {
		return err
	}

	engine := render.NewEngine(cols, rows)
	pw, ph := engine.PictureSize()
	img := render.NewImage(pw, ph)
	render.Rasterize(img, sh.Fn, *t)

	frame := engine.Render(img, render.HUD{
		Shader: sh.Name,
		Index:  shader.Index(sh.Name),
		Count:  len(shader.All()),
		T:      *t,
		Speed:  1,
	})
	fmt.Print(render.ClearScreen() + frame + render.MoveTo(rows, 1) + "\n")
	return nil
}

// --- stats ---

type fieldStats struct {
	min, max, mean float64
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	n := fs.Int("n", 64, "grid points per axis")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("-n must be positive")
	}

	fields := field.All()
	results := make([]fieldStats, len(fields))
	parallel.For(len(fields), func(i, _ int) {
		results[i] = gridStats(fields[i].Fn, *n)
	})

	fmt.Printf("%-16s %10s %10s %10s\n", "field", "min", "max", "mean")
	for i, e := range fields {
		r := results[i]
		fmt.Printf("%-16s %10.4f %10.4f %10.4f\n", e.Name, r.min, r.max, r.mean)
	}
	return nil
}

// gridStats samples f on an n^3 grid with spacing 0.173 and an offset that
// keeps samples off integer lattice points.
func gridStats(f field.Func, n int) fieldStats {
	s := fieldStats{min: math.Inf(1), max: math.Inf(-1)}
	var sum float64
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				v := f(float64(a)*0.173+0.031, float64(b)*0.173+0.057, float64(c)*0.173+0.011)
				s.min = math.Min(s.min, v)
				s.max = math.Max(s.max, v)
				sum += v
			}
		}
	}
	s.mean = sum / float64(n*n*n)
	return s
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (use WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}
	return w, h, nil
}

func parsePoint(args []string) (mgl64.Vec3, error) {
	var at mgl64.Vec3
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("coordinate %d: %w", i+1, err)
		}
		if !isFinite(v) {
			return mgl64.Vec3{}, fmt.Errorf("coordinate %d: %s is not finite", i+1, s)
		}
		at[i] = v
	}
	return at, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
