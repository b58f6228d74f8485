package loaders

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// TriangleData is one triangle read from a mesh source file
type TriangleData struct {
	Points  [3]core.Vec3
	Normals [3]core.Vec3
	Color   core.Vec3
}

// ParseTriangles reads every smooth_triangle statement from a token stream. Each
// statement is three (point, normal) vector pairs followed by a color vector; any
// other words between the vectors are ignored.
func ParseTriangles(reader io.Reader) ([]TriangleData, error) {
	tokens, err := Tokenize(reader)
	if err != nil {
		return nil, err
	}

	var triangles []TriangleData
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != TokenWord || tok.Text != "smooth_triangle" {
			continue
		}

		// Collect the next seven vectors
		var vectors []core.Vec3
		j := i + 1
		for ; j < len(tokens) && len(vectors) < 7; j++ {
			if tokens[j].Kind != TokenVector {
				if tokens[j].Text == "smooth_triangle" {
					break
				}
				continue
			}
			v, err := tokens[j].Vector()
			if err != nil {
				return nil, err
			}
			vectors = append(vectors, v)
		}
		if len(vectors) < 7 {
			return nil, fmt.Errorf("line %d: smooth_triangle needs 3 point/normal pairs and a color, got %d vectors", tok.Line, len(vectors))
		}

		triangles = append(triangles, TriangleData{
			Points:  [3]core.Vec3{vectors[0], vectors[2], vectors[4]},
			Normals: [3]core.Vec3{vectors[1], vectors[3], vectors[5]},
			Color:   vectors[6],
		})
		i = j - 1
	}

	return triangles, nil
}

// LoadTriangles loads smooth_triangle statements from a file
func LoadTriangles(filename string) ([]TriangleData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	triangles, err := ParseTriangles(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mesh %s: %w", filename, err)
	}
	return triangles, nil
}

// LoadMeshTriangles loads triangles from a Wavefront OBJ file (.obj extension)
// or a smooth_triangle file (anything else)
func LoadMeshTriangles(filename string, logger core.Logger) ([]TriangleData, error) {
	startTime := time.Now()

	var triangles []TriangleData
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".obj") {
		triangles, err = LoadOBJ(filename, logger)
	} else {
		triangles, err = LoadTriangles(filename)
	}
	if err != nil {
		return nil, err
	}

	logger.Printf("Loaded %d triangles from %s in %v\n", len(triangles), filename, time.Since(startTime))
	return triangles, nil
}
