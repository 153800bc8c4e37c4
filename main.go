package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-diffuse-raytracer/pkg/output"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
	"github.com/df07/go-diffuse-raytracer/pkg/scene"
)

// scenesDir holds the example scene files listed by -help
const scenesDir = "scenes"

// overrides holds command line settings that take priority over the scene's own.
// A zero Width and nil sampling fields leave the scene value in place.
type overrides struct {
	Width    int
	Sampling renderer.SamplingOverride
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .yaml scene file")
	width := flag.Int("width", 0, "Image width in pixels (default: scene setting)")
	samples := flag.Int("samples", 0, "Samples per pixel (default: scene setting)")
	depth := flag.Int("depth", 0, "Maximum bounces per sample (default: scene setting)")
	seed := flag.Int64("seed", 0, "Random seed (default: scene setting)")
	outputDir := flag.String("output", "output", "Directory renders are written under")
	format := flag.String("format", "png", "Output format: 'png' or 'webp'")
	scale := flag.Float64("scale", 1, "Resize factor applied to the image before saving")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	defer glog.Flush()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	imageFormat, err := output.ParseFormat(*format)
	if err != nil {
		glog.Exitf("Invalid -format: %v", err)
	}
	if *scale <= 0 {
		glog.Exitf("Invalid -scale %v: must be positive", *scale)
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		glog.Exitf("Error creating scene: %v", err)
	}
	// Only flags given on the command line override the scene
	var o overrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			o.Width = *width
		case "samples":
			o.Sampling.SamplesPerPixel = samples
		case "depth":
			o.Sampling.MaxDepth = depth
		case "seed":
			o.Sampling.Seed = seed
		}
	})
	applyOverrides(selectedScene, o)
	if err := selectedScene.Validate(); err != nil {
		glog.Exitf("Invalid render settings: %v", err)
	}

	glog.Infof("Rendering scene %q at %dx%d, %d samples per pixel, max depth %d",
		*sceneType, selectedScene.Width, selectedScene.Height(),
		selectedScene.SamplingConfig.SamplesPerPixel, selectedScene.SamplingConfig.MaxDepth)

	raytracer := renderer.NewRaytracer(selectedScene, selectedScene.Width, selectedScene.Height())
	raytracer.SetSamplingConfig(selectedScene.SamplingConfig)
	progress := newProgressLogger(os.Stderr)
	raytracer.SetLogger(progress)

	frame, stats := raytracer.RenderPass()
	if _, ok := progress.(terminalLogger); ok {
		fmt.Fprintln(os.Stderr)
	}
	glog.Infof("Render completed in %v (%d samples, %.0f samples/s)",
		stats.Duration, stats.TotalSamples, stats.SamplesPerSecond())

	img := output.Scale(output.ToImage(frame), *scale)
	filename := output.TimestampedPath(*outputDir, sceneName(*sceneType), imageFormat, time.Now())
	if err := output.Save(filename, img); err != nil {
		glog.Exitf("Error saving render: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp() {
	fmt.Println("Diffuse Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		glog.Warningf("Could not list scene files: %v", err)
		scenes = scene.ListScenes()
	}
	fmt.Println("Available scenes:")
	for _, info := range scenes {
		// File scenes are selected by path
		name := info.Name
		if info.Path != "" {
			name = info.Path
		}
		fmt.Printf("  %-26s - %s\n", name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
}

// createScene builds a built-in scene by name, or loads a scene file when
// the argument ends in .yaml or .yml
func createScene(sceneType string) (*scene.Scene, error) {
	if isSceneFile(sceneType) {
		s, err := scene.LoadFile(sceneType)
		if err != nil {
			return nil, xerrors.Errorf("while loading scene file: %w", err)
		}
		return s, nil
	}
	return scene.Create(sceneType)
}

// sceneName returns the directory name renders of sceneType are grouped under
func sceneName(sceneType string) string {
	if isSceneFile(sceneType) {
		base := filepath.Base(sceneType)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return sceneType
}

func isSceneFile(sceneType string) bool {
	ext := strings.ToLower(filepath.Ext(sceneType))
	return ext == ".yaml" || ext == ".yml"
}

// applyOverrides copies every set command line setting onto the scene
func applyOverrides(s *scene.Scene, o overrides) {
	if o.Width != 0 {
		s.Width = o.Width
	}
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, o.Sampling)
}
