package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/geometry"
	"github.com/df07/go-mesh-raycaster/pkg/renderer"
	"github.com/df07/go-mesh-raycaster/pkg/scene"
)

// overrides holds command line values that replace config file settings when set
type overrides struct {
	width  int
	height int
	smooth string // "", "true" or "false"
}

func main() {
	// Parse command line flags
	sceneFile := flag.String("scene", "", "Scene description file to render")
	configFile := flag.String("config", "", "YAML render config (optional)")
	outDir := flag.String("out", "output", "Directory for rendered images")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	smooth := flag.String("smooth", "", "Override vertex normal mode: 'true' or 'false'")
	vertices := flag.Bool("vertices", false, "Also write each mesh's vertex buffer as raw float32 data")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help || *sceneFile == "" {
		fmt.Println("Mesh Raycaster")
		fmt.Println("Usage: raycaster -scene <file> [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene_name>/render_<timestamp>.png")
		return
	}

	logger := core.NewDefaultLogger()
	fmt.Println("Starting Mesh Raycaster...")

	config, err := loadConfig(*configFile, overrides{width: *width, height: *height, smooth: *smooth})
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	s, err := scene.LoadScene(*sceneFile, logger)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	// Create output directory for this scene
	sceneName := strings.TrimSuffix(filepath.Base(*sceneFile), filepath.Ext(*sceneFile))
	outputDir := filepath.Join(*outDir, sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raycaster := renderer.NewRaycaster(s, config, logger)
	img, stats := raycaster.Render()
	fmt.Printf("Pixels hit: %d, missed: %d, shadowed light rays: %d\n",
		stats.HitPixels, stats.MissedPixels(), stats.ShadowedRays)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)

	if *vertices {
		files, err := writeVertexBuffers(s, config.RenderConfig(), outputDir)
		if err != nil {
			fmt.Printf("Error writing vertex buffers: %v\n", err)
			os.Exit(1)
		}
		for _, f := range files {
			fmt.Printf("Vertex buffer saved as %s\n", f)
		}
	}
}

// loadConfig reads the YAML config when a path is given and applies command line overrides
func loadConfig(path string, o overrides) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	if path != "" {
		var err error
		config, err = renderer.LoadConfig(path)
		if err != nil {
			return config, err
		}
	}

	if o.width > 0 {
		config.Width = o.width
	}
	if o.height > 0 {
		config.Height = o.height
	}
	switch o.smooth {
	case "":
	case "true":
		config.Smooth = true
	case "false":
		config.Smooth = false
	default:
		return config, fmt.Errorf("invalid smooth value %q, expected 'true' or 'false'", o.smooth)
	}

	return config, config.Validate()
}

// savePNG encodes img to filename
func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// writeVertexBuffers dumps the interleaved vertex data of every mesh as little-endian
// float32 values, one file per mesh
func writeVertexBuffers(s *scene.Scene, cfg geometry.RenderConfig, dir string) ([]string, error) {
	var files []string
	for i, mesh := range s.Meshes() {
		filename := filepath.Join(dir, fmt.Sprintf("mesh_%d.f32", i))
		file, err := os.Create(filename)
		if err != nil {
			return files, fmt.Errorf("failed to create file: %w", err)
		}
		err = binary.Write(file, binary.LittleEndian, mesh.VertexBuffer(cfg))
		file.Close()
		if err != nil {
			return files, fmt.Errorf("failed to write vertex buffer: %w", err)
		}
		files = append(files, filename)
	}
	return files, nil
}
