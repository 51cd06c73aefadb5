package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"freak-engine/math"
)

// objGroup collects the fan-triangulated faces of one "o" or "g" section as
// indices into the file's position pool.
// objMaxLine bounds a single line; large polygons exceed bufio's 64 KiB default.
const objMaxLine = 1 << 24

type objGroup struct {
	name  string
	faces []uint32
}

// LoadOBJ parses the positions and faces of a Wavefront .obj file and returns
// one mesh per object or group. Normals, texture coordinates and materials
// are ignored.
func LoadOBJ(path string) (*Bounds, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	b, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("read obj %q: %w", path, err)
	}
	b.Source = path
	return b, nil
}

// ReadOBJ parses OBJ data from r. Malformed lines are recorded in Skipped.
func ReadOBJ(r io.Reader) (*Bounds, error) {
	b := &Bounds{}
	var positions []math.Vec3
	var groups []objGroup
	cur := objGroup{name: "default"}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), objMaxLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			p, err := parseOBJVertex(fields)
			if err != nil {
				b.Skipped = append(b.Skipped, fmt.Errorf("line %d: %w", lineNo, err))
				// Keep the pool aligned with the file's vertex numbering.
				p = math.Vec3Zero
			}
			positions = append(positions, p)

		case "o", "g":
			if len(cur.faces) > 0 {
				groups = append(groups, cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = objGroup{name: name}

		case "f":
			if len(fields) < 4 {
				b.Skipped = append(b.Skipped, fmt.Errorf("line %d: face with %d vertices", lineNo, len(fields)-1))
				continue
			}
			verts := make([]uint32, 0, len(fields)-1)
			var faceErr error
			for _, tok := range fields[1:] {
				idx, err := parseOBJFaceVertex(tok, len(positions))
				if err != nil {
					faceErr = err
					break
				}
				verts = append(verts, idx)
			}
			if faceErr != nil {
				b.Skipped = append(b.Skipped, fmt.Errorf("line %d: %w", lineNo, faceErr))
				continue
			}
			// Fan triangulation: 0-1-2, 0-2-3, 0-3-4, ...
			for i := 1; i+1 < len(verts); i++ {
				cur.faces = append(cur.faces, verts[0], verts[i], verts[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj: %w", err)
	}
	if len(cur.faces) > 0 {
		groups = append(groups, cur)
	}

	for _, g := range groups {
		local, indices := compactOBJGroup(g.faces, positions)
		b.add(g.name, local, indices)
	}
	return b, nil
}

func parseOBJVertex(fields []string) (math.Vec3, error) {
	if len(fields) < 4 {
		return math.Vec3{}, fmt.Errorf("vertex with %d coordinates", len(fields)-1)
	}
	var xyz [3]float32
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i+1], err)
		}
		xyz[i] = float32(v)
	}
	return math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseOBJFaceVertex resolves the position part of a "v/vt/vn" token. OBJ
// indices are 1-based; negative ones count back from the latest vertex.
func parseOBJFaceVertex(tok string, count int) (uint32, error) {
	s, _, _ := strings.Cut(tok, "/")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("face vertex %q: %w", tok, err)
	}
	idx := n - 1
	if n < 0 {
		idx = count + n
	}
	if n == 0 || idx < 0 || idx >= count {
		return 0, fmt.Errorf("face vertex %q out of range (%d vertices)", tok, count)
	}
	return uint32(idx), nil
}

// compactOBJGroup copies the positions a group references and renumbers its
// faces to match.
func compactOBJGroup(faces []uint32, pool []math.Vec3) ([]math.Vec3, []uint32) {
	remap := make(map[uint32]uint32)
	var positions []math.Vec3
	indices := make([]uint32, len(faces))
	for i, idx := range faces {
		local, ok := remap[idx]
		if !ok {
			local = uint32(len(positions))
			remap[idx] = local
			positions = append(positions, pool[idx])
		}
		indices[i] = local
	}
	return positions, indices
}
