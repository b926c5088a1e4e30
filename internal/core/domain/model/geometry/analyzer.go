package geometry

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"printmarket/internal/pkg/errs"
)

const (
	// DefaultTriangleLimit bounds how many triangle records are processed from a
	// single stream, regardless of the declared count. It keeps worst-case
	// latency and memory bounded for hostile or huge inputs.
	DefaultTriangleLimit = 2_000_000

	// DefaultPreviewLimit bounds how many triangles are retained verbatim as a
	// lightweight preview sample.
	DefaultPreviewLimit = 100

	headerSize = 80
	recordSize = 50
)

// asciiToken marks a text-encoded mesh. Streams starting with it (after
// leading whitespace) are rejected rather than parsed.
var asciiToken = []byte("solid")

// Vertex is a point in model space, in millimeters.
type Vertex [3]float64

// Triangle is a single mesh facet given by its three vertices. The facet
// normal from the source record is not retained.
type Triangle [3]Vertex

// Analysis holds the aggregate geometric properties of a parsed mesh.
// It is computed once per uploaded model and immutable afterwards.
type Analysis struct {
	// TriangleCount is the number of triangles actually processed, which may be
	// lower than the stream's declared count for truncated or capped input.
	TriangleCount int

	// Width, Depth and Height are the axis-aligned bounding box extents in
	// millimeters.
	Width  float64
	Depth  float64
	Height float64

	// VolumeMM3 is the enclosed mesh volume in cubic millimeters. It is the
	// absolute value of a signed tetrahedron sum; a mesh with mixed winding can
	// report less than its true volume due to internal cancellation. Known
	// accuracy limitation, kept for compatibility with upstream behavior.
	VolumeMM3 float64

	// SurfaceAreaMM2 is the total facet area in square millimeters.
	SurfaceAreaMM2 float64

	// BoundingBoxVolumeMM3 is Width*Depth*Height.
	BoundingBoxVolumeMM3 float64

	// Preview contains the first triangles of the stream, capped at the
	// analyzer's preview limit.
	Preview []Triangle

	// Truncated reports that the stream ended before the declared triangle
	// count was read, or that the declared count exceeded the processing cap.
	Truncated bool
}

// Analyzer parses binary triangle-mesh streams into an Analysis. It is
// stateless and safe for concurrent use.
type Analyzer struct {
	triangleLimit int
	previewLimit  int
}

// NewAnalyzer creates an Analyzer with the default triangle and preview limits.
func NewAnalyzer() Analyzer {
	return NewAnalyzerWithLimits(DefaultTriangleLimit, DefaultPreviewLimit)
}

// NewAnalyzerWithLimits creates an Analyzer with explicit limits. Non-positive
// limits fall back to the defaults.
func NewAnalyzerWithLimits(triangleLimit int, previewLimit int) Analyzer {
	if triangleLimit <= 0 {
		triangleLimit = DefaultTriangleLimit
	}
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}
	return Analyzer{
		triangleLimit: triangleLimit,
		previewLimit:  previewLimit,
	}
}

// Analyze streams a binary triangle mesh and returns its aggregate geometric
// properties without materializing the whole file in memory.
//
// The expected layout is an 80-byte free-form header, a 4-byte little-endian
// unsigned triangle count, then that many 50-byte records of 12 little-endian
// IEEE-754 single-precision floats (facet normal plus three vertices) and a
// 2-byte trailing attribute. Streams that instead begin with the ASCII token
// "solid" fail with errs.ErrFormatNotSupported. An unreadable header or count
// fails with errs.ErrInvalidFormat. A stream that ends mid-record does NOT
// fail: parsing stops early and the result reflects only the triangles
// actually read, with Truncated set.
func (a Analyzer) Analyze(r io.Reader) (*Analysis, error) {
	br := bufio.NewReader(r)

	if err := rejectASCII(br); err != nil {
		return nil, err
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, errs.NewInvalidFormatErrorWithCause("mesh header", err)
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(br, countBuf[:]); err != nil {
		return nil, errs.NewInvalidFormatErrorWithCause("triangle count", err)
	}
	declared := int(binary.LittleEndian.Uint32(countBuf[:]))

	analysis := &Analysis{}

	toProcess := declared
	if toProcess > a.triangleLimit {
		toProcess = a.triangleLimit
		analysis.Truncated = true
	}

	minV := Vertex{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := Vertex{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	var signedVolume float64
	var surfaceArea float64

	record := make([]byte, recordSize)
	for i := 0; i < toProcess; i++ {
		if _, err := io.ReadFull(br, record); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				analysis.Truncated = true
				break
			}
			return nil, errs.NewInvalidFormatErrorWithCause("triangle record", err)
		}

		tri, ok := decodeTriangle(record)
		if !ok {
			// Non-finite coordinates would poison every accumulator.
			continue
		}

		for _, v := range tri {
			for axis := range 3 {
				minV[axis] = math.Min(minV[axis], v[axis])
				maxV[axis] = math.Max(maxV[axis], v[axis])
			}
		}

		signedVolume += signedTetrahedronVolume(tri)
		surfaceArea += triangleArea(tri)

		if len(analysis.Preview) < a.previewLimit {
			analysis.Preview = append(analysis.Preview, tri)
		}
		analysis.TriangleCount++
	}

	analysis.VolumeMM3 = math.Abs(signedVolume)
	analysis.SurfaceAreaMM2 = surfaceArea
	if analysis.TriangleCount > 0 {
		analysis.Width = maxV[0] - minV[0]
		analysis.Depth = maxV[1] - minV[1]
		analysis.Height = maxV[2] - minV[2]
		analysis.BoundingBoxVolumeMM3 = analysis.Width * analysis.Depth * analysis.Height
	}

	return analysis, nil
}

// rejectASCII fails with FormatNotSupported when the stream starts with the
// "solid" token of a text-encoded mesh, ignoring leading whitespace.
func rejectASCII(br *bufio.Reader) error {
	peeked, err := br.Peek(headerSize)
	if err != nil && len(peeked) == 0 {
		return errs.NewInvalidFormatErrorWithCause("mesh header", err)
	}
	if bytes.HasPrefix(bytes.TrimLeft(peeked, " \t\r\n"), asciiToken) {
		return errs.NewFormatNotSupportedError("ascii mesh encoding")
	}
	return nil
}

// decodeTriangle parses the 9 vertex floats of a 50-byte record, skipping the
// 12-byte facet normal. It reports false for non-finite coordinates.
func decodeTriangle(record []byte) (Triangle, bool) {
	var tri Triangle
	for v := range 3 {
		for axis := range 3 {
			offset := 12 + (v*3+axis)*4
			value := float64(math.Float32frombits(binary.LittleEndian.Uint32(record[offset : offset+4])))
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return Triangle{}, false
			}
			tri[v][axis] = value
		}
	}
	return tri, true
}

// signedTetrahedronVolume returns v1·(v2×v3)/6, the divergence-theorem
// contribution of one facet to the enclosed volume.
func signedTetrahedronVolume(tri Triangle) float64 {
	return dot(tri[0], cross(tri[1], tri[2])) / 6.0
}

// triangleArea returns half the magnitude of the facet's edge cross product.
func triangleArea(tri Triangle) float64 {
	e1 := sub(tri[1], tri[0])
	e2 := sub(tri[2], tri[0])
	return norm(cross(e1, e2)) / 2.0
}

func sub(a, b Vertex) Vertex {
	return Vertex{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b Vertex) Vertex {
	return Vertex{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b Vertex) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(v Vertex) float64 {
	return math.Sqrt(dot(v, v))
}
