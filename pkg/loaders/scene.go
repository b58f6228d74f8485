package loaders

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-mesh-raycaster/pkg/core"
	"github.com/df07/go-mesh-raycaster/pkg/material"
)

// AppearanceRecord is the parsed appearance block of a shape. Empty paths mean the
// map is absent.
type AppearanceRecord struct {
	Solid    *core.Vec3         // Solid color, nil when a texture is used or nothing was given
	Texture  string             // Texture image path
	Material *material.Material // Material coefficients, nil for the shape default
	BumpMap  string             // Bump map image path
	Mask     string             // Mask image path
}

// SphereRecord describes a sphere statement
type SphereRecord struct {
	Center     core.Vec3
	Radius     float64
	Appearance AppearanceRecord
	Line       int
}

// MeshRecord describes a mesh statement
type MeshRecord struct {
	Source     string    // Path to a smooth_triangle or .obj file
	Smooth     bool      // smooth (true) or flat (false) shading
	Mapping    string    // direct, spherical or none
	Scale      float64   // Uniform scale applied to the source vertices
	Translate  core.Vec3 // Translation applied after scaling
	Rotate     core.Vec3 // Rotation in degrees about x, y, z
	Appearance AppearanceRecord
	Line       int
}

// LightRecord describes a point light
type LightRecord struct {
	Position core.Vec3
	Color    core.Vec3
	Line     int
}

// CameraRecord describes the viewpoint
type CameraRecord struct {
	From core.Vec3
	At   core.Vec3
	Up   core.Vec3
	FOV  float64 // Vertical field of view in degrees
	Line int
}

// SceneDescription contains all parsed scene statements
type SceneDescription struct {
	Camera  *CameraRecord
	Lights  []LightRecord
	Spheres []SphereRecord
	Meshes  []MeshRecord
}

// ShapeCount returns the number of shape statements
func (d *SceneDescription) ShapeCount() int {
	return len(d.Spheres) + len(d.Meshes)
}

// sceneParser walks a token stream
type sceneParser struct {
	tokens []Token
	pos    int
}

// ParseScene parses a scene description from an io.Reader
func ParseScene(reader io.Reader) (*SceneDescription, error) {
	tokens, err := Tokenize(reader)
	if err != nil {
		return nil, err
	}

	p := &sceneParser{tokens: tokens}
	desc := &SceneDescription{}

	for !p.done() {
		tok := p.next()
		if tok.Kind != TokenWord {
			return nil, fmt.Errorf("line %d: expected a statement keyword, got %s", tok.Line, tok)
		}

		switch tok.Text {
		case "sphere":
			rec, err := p.parseSphere(tok.Line)
			if err != nil {
				return nil, err
			}
			desc.Spheres = append(desc.Spheres, rec)
		case "mesh":
			rec, err := p.parseMesh(tok.Line)
			if err != nil {
				return nil, err
			}
			desc.Meshes = append(desc.Meshes, rec)
		case "light":
			rec, err := p.parseLight(tok.Line)
			if err != nil {
				return nil, err
			}
			desc.Lights = append(desc.Lights, rec)
		case "camera":
			rec, err := p.parseCamera(tok.Line)
			if err != nil {
				return nil, err
			}
			desc.Camera = &rec
		default:
			return nil, fmt.Errorf("line %d: unknown statement %q", tok.Line, tok.Text)
		}
	}

	return desc, nil
}

// LoadScene loads and parses a scene description file
func LoadScene(filename string) (*SceneDescription, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", filename, err)
	}
	return desc, nil
}

func (p *sceneParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *sceneParser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *sceneParser) peek() (Token, bool) {
	if p.done() {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *sceneParser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Line
}

// word returns the next keyword of a block opened at line
func (p *sceneParser) word(block string, line int) (Token, error) {
	if p.done() {
		return Token{}, fmt.Errorf("line %d: %s block opened on line %d is missing 'end'", p.lastLine(), block, line)
	}
	tok := p.next()
	if tok.Kind != TokenWord {
		return Token{}, fmt.Errorf("line %d: expected a keyword in %s block, got %s", tok.Line, block, tok)
	}
	return tok, nil
}

func (p *sceneParser) vector() (core.Vec3, error) {
	if p.done() {
		return core.Vec3{}, fmt.Errorf("line %d: expected <x, y, z>, got end of input", p.lastLine())
	}
	return p.next().Vector()
}

func (p *sceneParser) float() (float64, error) {
	if p.done() {
		return 0, fmt.Errorf("line %d: expected a number, got end of input", p.lastLine())
	}
	return p.next().Float()
}

func (p *sceneParser) path() (string, error) {
	if p.done() {
		return "", fmt.Errorf("line %d: expected a file path, got end of input", p.lastLine())
	}
	tok := p.next()
	if tok.Kind != TokenWord {
		return "", fmt.Errorf("line %d: expected a file path, got %s", tok.Line, tok)
	}
	return tok.Text, nil
}

// parseAppearance handles one appearance keyword. It reports false when the keyword
// does not belong to the appearance grammar.
func (p *sceneParser) parseAppearance(tok Token, rec *AppearanceRecord) (bool, error) {
	var err error
	switch tok.Text {
	case "solid":
		if rec.Solid != nil || rec.Texture != "" {
			return true, fmt.Errorf("line %d: shape already has a solid color or texture", tok.Line)
		}
		var c core.Vec3
		if c, err = p.vector(); err == nil {
			rec.Solid = &c
		}
	case "texture":
		if rec.Solid != nil || rec.Texture != "" {
			return true, fmt.Errorf("line %d: shape already has a solid color or texture", tok.Line)
		}
		rec.Texture, err = p.path()
	case "material":
		var m material.Material
		if m, err = p.parseMaterial(); err == nil {
			rec.Material = &m
		}
	case "bump_map":
		rec.BumpMap, err = p.path()
	case "mask":
		rec.Mask, err = p.path()
	default:
		return false, nil
	}
	return true, err
}

// parseMaterial reads either "ka x kd x ks x n x end" or four bare numbers
func (p *sceneParser) parseMaterial() (material.Material, error) {
	labels := [4]string{"ka", "kd", "ks", "n"}
	var values [4]float64

	next, ok := p.peek()
	labeled := ok && next.Kind == TokenWord && next.Text == labels[0]

	for i, label := range labels {
		if labeled {
			tok, err := p.word("material", next.Line)
			if err != nil {
				return material.Material{}, err
			}
			if tok.Text != label {
				return material.Material{}, fmt.Errorf("line %d: expected %q in material, got %q", tok.Line, label, tok.Text)
			}
		}
		v, err := p.float()
		if err != nil {
			return material.Material{}, err
		}
		values[i] = v
	}

	if labeled {
		tok, err := p.word("material", next.Line)
		if err != nil {
			return material.Material{}, err
		}
		if tok.Text != "end" {
			return material.Material{}, fmt.Errorf("line %d: expected 'end' after material, got %q", tok.Line, tok.Text)
		}
	}

	m := material.NewMaterial(values[0], values[1], values[2], values[3])
	if err := m.Validate(); err != nil {
		return material.Material{}, fmt.Errorf("line %d: %w", next.Line, err)
	}
	return m, nil
}

func (p *sceneParser) parseSphere(line int) (SphereRecord, error) {
	rec := SphereRecord{Radius: 1, Line: line}
	for {
		tok, err := p.word("sphere", line)
		if err != nil {
			return rec, err
		}

		switch tok.Text {
		case "end":
			return rec, nil
		case "center":
			rec.Center, err = p.vector()
		case "radius":
			rec.Radius, err = p.float()
		default:
			var handled bool
			handled, err = p.parseAppearance(tok, &rec.Appearance)
			if !handled {
				err = fmt.Errorf("line %d: unknown sphere keyword %q", tok.Line, tok.Text)
			}
		}
		if err != nil {
			return rec, err
		}
	}
}

func (p *sceneParser) parseMesh(line int) (MeshRecord, error) {
	rec := MeshRecord{Smooth: true, Mapping: "none", Scale: 1, Line: line}
	for {
		tok, err := p.word("mesh", line)
		if err != nil {
			return rec, err
		}

		switch tok.Text {
		case "end":
			if rec.Source == "" {
				return rec, fmt.Errorf("line %d: mesh has no source", line)
			}
			return rec, nil
		case "source":
			rec.Source, err = p.path()
		case "smooth":
			rec.Smooth = true
		case "flat":
			rec.Smooth = false
		case "direct", "spherical", "none":
			rec.Mapping = tok.Text
		case "scale":
			rec.Scale, err = p.float()
		case "translate":
			rec.Translate, err = p.vector()
		case "rotate":
			rec.Rotate, err = p.vector()
		default:
			var handled bool
			handled, err = p.parseAppearance(tok, &rec.Appearance)
			if !handled {
				err = fmt.Errorf("line %d: unknown mesh keyword %q", tok.Line, tok.Text)
			}
		}
		if err != nil {
			return rec, err
		}
	}
}

func (p *sceneParser) parseLight(line int) (LightRecord, error) {
	rec := LightRecord{Color: core.NewVec3(1, 1, 1), Line: line}
	for {
		tok, err := p.word("light", line)
		if err != nil {
			return rec, err
		}

		switch tok.Text {
		case "end":
			return rec, nil
		case "position":
			rec.Position, err = p.vector()
		case "color":
			rec.Color, err = p.vector()
		default:
			err = fmt.Errorf("line %d: unknown light keyword %q", tok.Line, tok.Text)
		}
		if err != nil {
			return rec, err
		}
	}
}

func (p *sceneParser) parseCamera(line int) (CameraRecord, error) {
	rec := CameraRecord{
		From: core.NewVec3(0, 0, 5),
		Up:   core.NewVec3(0, 1, 0),
		FOV:  40,
		Line: line,
	}
	for {
		tok, err := p.word("camera", line)
		if err != nil {
			return rec, err
		}

		switch tok.Text {
		case "end":
			return rec, nil
		case "from":
			rec.From, err = p.vector()
		case "at":
			rec.At, err = p.vector()
		case "up":
			rec.Up, err = p.vector()
		case "fov":
			rec.FOV, err = p.float()
		default:
			err = fmt.Errorf("line %d: unknown camera keyword %q", tok.Line, tok.Text)
		}
		if err != nil {
			return rec, err
		}
	}
}
