// Package loaders reads external mesh assets into scene geometry.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
	"github.com/vkor/go-whitted-raytracer/pkg/geometry"
)

// PLYData holds the vertex and face lists parsed from an ASCII PLY file
type PLYData struct {
	Vertices []core.Vec3
	Normals  []core.Vec3 // Empty when the file carries no nx/ny/nz
	Faces    []int       // Triangle indices, three per face
}

// plyHeader describes the element layout declared before end_header
type plyHeader struct {
	vertexCount int
	faceCount   int
	vertexProps []string // Property names in declaration order
}

// LoadPLY parses an ASCII PLY file into raw vertex and face data.
// Quad faces are fanned into triangles; higher arities are rejected.
func LoadPLY(path string) (*PLYData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ply: %w", err)
	}
	defer file.Close()
	return ReadPLY(file)
}

// ReadPLY parses ASCII PLY content from a reader
func ReadPLY(r io.Reader) (*PLYData, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	header, err := parseHeader(scanner)
	if err != nil {
		return nil, err
	}

	data := &PLYData{
		Vertices: make([]core.Vec3, 0, header.vertexCount),
		Faces:    make([]int, 0, header.faceCount*3),
	}
	hasNormals := propIndex(header.vertexProps, "nx") >= 0 &&
		propIndex(header.vertexProps, "ny") >= 0 &&
		propIndex(header.vertexProps, "nz") >= 0
	if hasNormals {
		data.Normals = make([]core.Vec3, 0, header.vertexCount)
	}

	for i := 0; i < header.vertexCount; i++ {
		fields, err := nextRow(scanner)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		if len(fields) < len(header.vertexProps) {
			return nil, fmt.Errorf("vertex %d: got %d values, header declares %d properties",
				i, len(fields), len(header.vertexProps))
		}

		vertex, err := readVec3(fields, header.vertexProps, "x", "y", "z")
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		data.Vertices = append(data.Vertices, vertex)

		if hasNormals {
			normal, err := readVec3(fields, header.vertexProps, "nx", "ny", "nz")
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			data.Normals = append(data.Normals, normal)
		}
	}

	for i := 0; i < header.faceCount; i++ {
		fields, err := nextRow(scanner)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		indices, err := parseFace(fields)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		for _, idx := range indices {
			if idx < 0 || idx >= len(data.Vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range", i, idx)
			}
		}
		// Fan triangulation for quads
		for k := 1; k+1 < len(indices); k++ {
			data.Faces = append(data.Faces, indices[0], indices[k], indices[k+1])
		}
	}

	return data, nil
}

// LoadMesh loads an ASCII PLY file directly into a mesh. File normals are
// used when present; otherwise the mesh computes its own vertex normals.
func LoadMesh(path string, material *core.Material) (*geometry.Mesh, error) {
	data, err := LoadPLY(path)
	if err != nil {
		return nil, err
	}
	var options *geometry.MeshOptions
	if len(data.Normals) > 0 {
		options = &geometry.MeshOptions{Normals: data.Normals}
	}
	return geometry.NewMesh(data.Vertices, data.Faces, material, options)
}

// parseHeader consumes lines through end_header
func parseHeader(scanner *bufio.Scanner) (*plyHeader, error) {
	fields, err := nextRow(scanner)
	if err != nil || len(fields) != 1 || fields[0] != "ply" {
		return nil, fmt.Errorf("missing ply magic line")
	}

	header := &plyHeader{}
	currentElement := ""
	for {
		fields, err := nextRow(scanner)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}

		switch fields[0] {
		case "end_header":
			if header.vertexCount == 0 {
				return nil, fmt.Errorf("header declares no vertices")
			}
			return header, nil
		case "format":
			if len(fields) < 2 || fields[1] != "ascii" {
				return nil, fmt.Errorf("only ascii format is supported, got %q", strings.Join(fields[1:], " "))
			}
		case "comment", "obj_info":
			// Ignored
		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed element line")
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("bad element count %q", fields[2])
			}
			currentElement = fields[1]
			switch currentElement {
			case "vertex":
				header.vertexCount = count
			case "face":
				header.faceCount = count
			}
		case "property":
			if currentElement == "vertex" && len(fields) >= 3 && fields[1] != "list" {
				header.vertexProps = append(header.vertexProps, fields[len(fields)-1])
			}
		}
	}
}

// nextRow returns the next non-empty whitespace-split line
func nextRow(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

// readVec3 pulls three named properties out of a vertex row
func readVec3(fields, props []string, nx, ny, nz string) (core.Vec3, error) {
	values := [3]float64{}
	for i, name := range [3]string{nx, ny, nz} {
		idx := propIndex(props, name)
		if idx < 0 || idx >= len(fields) {
			return core.Vec3{}, fmt.Errorf("property %q not present", name)
		}
		value, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("property %q: %w", name, err)
		}
		values[i] = value
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

// parseFace reads a count-prefixed index list of three or four vertices
func parseFace(fields []string) ([]int, error) {
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad index count %q", fields[0])
	}
	if count < 3 || count > 4 {
		return nil, fmt.Errorf("faces must have 3 or 4 vertices, got %d", count)
	}
	if len(fields) < count+1 {
		return nil, fmt.Errorf("face row has %d indices, count says %d", len(fields)-1, count)
	}

	indices := make([]int, count)
	for i := 0; i < count; i++ {
		indices[i], err = strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("bad vertex index %q", fields[i+1])
		}
	}
	return indices, nil
}

// propIndex returns the declaration position of a vertex property
func propIndex(props []string, name string) int {
	for i, prop := range props {
		if prop == name {
			return i
		}
	}
	return -1
}
