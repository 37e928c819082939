// Command cgdemo renders the cg demo scenes to PNG files.
//
// Usage:
//
//	cgdemo -out out -scene all
//	cgdemo -scene camera -v
//	cgdemo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/scene"
)

type config struct {
	out     string
	scene   string
	scale   int
	zoom    int
	verbose bool
	list    bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("cgdemo", flag.ContinueOnError)
	fs.StringVar(&cfg.out, "out", "out", "output directory")
	fs.StringVar(&cfg.scene, "scene", "all", "scene to render, or all")
	fs.IntVar(&cfg.scale, "scale", 10, "logical pixel size of the line scene")
	fs.IntVar(&cfg.zoom, "zoom", 1, "integer upscale factor applied to every image")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&cfg.list, "list", false, "list scene names and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.zoom < 1 {
		return cfg, fmt.Errorf("invalid -zoom %d: must be at least 1", cfg.zoom)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "cgdemo:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	cg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg, os.Stdout); err != nil {
		cg.Logger().Error("cgdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	reg, err := scene.Registry()
	if err != nil {
		return err
	}
	if line, ok := reg["line"].(scene.LineScene); ok {
		line, err = line.HandlePixelScale(cfg.scale)
		if err != nil {
			return fmt.Errorf("-scale: %w", err)
		}
		reg["line"] = line
	}

	p := message.NewPrinter(language.English)
	if cfg.list {
		for _, name := range scene.Names(reg) {
			p.Fprintln(w, name)
		}
		return nil
	}

	names := scene.Names(reg)
	if cfg.scene != "all" {
		if _, ok := reg[cfg.scene]; !ok {
			return fmt.Errorf("unknown scene %q", cfg.scene)
		}
		names = []string{cfg.scene}
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}

	total := 0
	for _, name := range names {
		n, err := renderScene(reg[name], name, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		total += n
		p.Fprintf(w, "%-24s %d pixels\n", name, n)
	}
	p.Fprintf(w, "rendered %d scenes, %d pixels, to %s\n", len(names), total, cfg.out)
	return nil
}

// renderScene writes s to <out>/<name>.png and returns the pixel count
// of the written image.
func renderScene(s scene.Scene, name string, cfg config) (int, error) {
	img, err := s.Render()
	if err != nil {
		return 0, err
	}
	if cfg.zoom > 1 {
		img = img.Upscale(cfg.zoom)
	}
	path := filepath.Join(cfg.out, name+".png")
	if err := img.SavePNG(path); err != nil {
		return 0, err
	}
	cg.Logger().Debug("cgdemo: wrote", "path", path, "width", img.Width(), "height", img.Height())
	return img.Width() * img.Height(), nil
}
