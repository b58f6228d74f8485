package loaders

import (
	"fmt"

	"github.com/udhos/gwob"

	"github.com/df07/go-mesh-raycaster/pkg/core"
)

// LoadOBJ loads the triangles of a Wavefront OBJ file. Vertex normals are used when
// the file has them; otherwise every vertex gets the face normal. Triangles are white.
func LoadOBJ(filename string, logger core.Logger) ([]TriangleData, error) {
	options := gwob.ObjParserOptions{
		LogStats: false,
		Logger:   func(s string) { logger.Printf("%s\n", s) },
	}

	obj, err := gwob.NewObjFromFile(filename, &options)
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ file: %w", err)
	}

	// Strides and offsets are reported in bytes of float32
	stride := obj.StrideSize / 4
	positionOffset := obj.StrideOffsetPosition / 4
	normalOffset := obj.StrideOffsetNormal / 4

	coord := func(index, offset int) (core.Vec3, error) {
		base := index*stride + offset
		if index < 0 || base+2 >= len(obj.Coord) {
			return core.Vec3{}, fmt.Errorf("OBJ index %d out of range", index)
		}
		return core.NewVec3(float64(obj.Coord[base]), float64(obj.Coord[base+1]), float64(obj.Coord[base+2])), nil
	}

	if len(obj.Indices)%3 != 0 {
		return nil, fmt.Errorf("OBJ index count %d is not a multiple of 3", len(obj.Indices))
	}

	white := core.NewVec3(1, 1, 1)
	triangles := make([]TriangleData, 0, len(obj.Indices)/3)
	for i := 0; i < len(obj.Indices); i += 3 {
		var tri TriangleData
		tri.Color = white

		for v := 0; v < 3; v++ {
			p, err := coord(obj.Indices[i+v], positionOffset)
			if err != nil {
				return nil, err
			}
			tri.Points[v] = p

			if obj.NormCoordFound {
				n, err := coord(obj.Indices[i+v], normalOffset)
				if err != nil {
					return nil, err
				}
				tri.Normals[v] = n
			}
		}

		if !obj.NormCoordFound {
			face := tri.Points[1].Subtract(tri.Points[0]).Cross(tri.Points[2].Subtract(tri.Points[0])).Normalize()
			tri.Normals = [3]core.Vec3{face, face, face}
		}

		triangles = append(triangles, tri)
	}

	return triangles, nil
}
