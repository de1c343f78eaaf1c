package grid

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"
	"strings"
)

// RasterSamples is the external contract a raster loader must honour: a
// 2-D row-major elevation array plus the geospatial metadata needed to
// place it. Decoding the underlying file format (GeoTIFF, a custom binary
// grid, ...) and any CRS reprojection are out of scope here; this struct is
// the seam a caller-supplied loader produces and FromRaster consumes.
type RasterSamples struct {
	Elevation  [][]float64
	Resolution float64
	Origin     Origin
}

// RasterSource loads RasterSamples from a named resource. The reference
// loaders in this file (LoadASCIIGrid, LoadObstaclePNG) satisfy a narrower
// version of this role for two concrete wire formats; a GeoTIFF-backed
// RasterSource is expected to be supplied by the caller via a geospatial
// I/O library and is not implemented here.
type RasterSource interface {
	Open(path string) (RasterSamples, error)
}

// BBox is a sub-window of a raster, expressed as half-open cell ranges
// [RowMin,RowMax) x [ColMin,ColMax).
type BBox struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// FromRaster loads a Grid from source, optionally restricted to bbox, with
// obstacle = slope > maxSlopeDeg. gravity is the planet's surface gravity
// in m/s^2 and is not derivable from the raster itself.
func FromRaster(source RasterSource, path string, maxSlopeDeg, gravity float64, bbox *BBox) (*Grid, error) {
	samples, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	elevation := samples.Elevation
	origin := samples.Origin
	if bbox != nil {
		elevation, err = subsection(elevation, *bbox)
		if err != nil {
			return nil, err
		}
		origin = shiftOrigin(origin, samples.Resolution, bbox.RowMin, bbox.ColMin)
	}
	return New(elevation, samples.Resolution, gravity, maxSlopeDeg, origin)
}

// subsection extracts the half-open cell range bbox from elevation.
func subsection(elevation [][]float64, bbox BBox) ([][]float64, error) {
	h := len(elevation)
	if h == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(elevation[0])
	r0, r1 := clampInt(bbox.RowMin, 0, h), clampInt(bbox.RowMax, 0, h)
	c0, c1 := clampInt(bbox.ColMin, 0, w), clampInt(bbox.ColMax, 0, w)
	if r1 <= r0 || c1 <= c0 {
		return nil, ErrEmptyGrid
	}
	out := make([][]float64, r1-r0)
	for i := r0; i < r1; i++ {
		out[i-r0] = append([]float64(nil), elevation[i][c0:c1]...)
	}
	return out, nil
}

// shiftOrigin translates origin's NW corner by (rowOffset, colOffset) cells
// at the given resolution, so a cropped sub-window keeps correct planar
// coordinates. LatLon origins are left unshifted since degrees are not
// linear in metres; a caller cropping a LatLon raster must reproject.
func shiftOrigin(origin Origin, resolution float64, rowOffset, colOffset int) Origin {
	if origin.Frame.Kind == LatLon {
		return origin
	}
	origin.Easting += float64(colOffset) * resolution
	origin.Northing -= float64(rowOffset) * resolution
	return origin
}

// LoadASCIIGrid parses the legacy ASCII DEM format: a header of "key value"
// pairs (cellsize, xllcorner, yllcorner, optional UTMzone) terminated by
// the first line that begins with numeric data, followed by
// whitespace-separated elevations in row-major order. Mixed tab/space
// delimiters and integer or decimal values are accepted.
func LoadASCIIGrid(r io.Reader) (RasterSamples, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var cellsize, xll, yll float64
	var utmZone int
	haveUTM := false
	haveCellsize := false

	var firstDataLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.ParseFloat(fields[0], 64); err == nil {
			firstDataLine = line
			break
		}
		if len(fields) < 2 {
			return RasterSamples{}, fmt.Errorf("%w: malformed header line %q", ErrBadHeader, line)
		}
		key := strings.ToLower(fields[0])
		value := fields[1]
		switch key {
		case "cellsize":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return RasterSamples{}, fmt.Errorf("%w: cellsize: %v", ErrBadHeader, err)
			}
			cellsize, haveCellsize = v, true
		case "xllcorner":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return RasterSamples{}, fmt.Errorf("%w: xllcorner: %v", ErrBadHeader, err)
			}
			xll = v
		case "yllcorner":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return RasterSamples{}, fmt.Errorf("%w: yllcorner: %v", ErrBadHeader, err)
			}
			yll = v
		case "utmzone":
			v, err := strconv.Atoi(value)
			if err != nil {
				return RasterSamples{}, fmt.Errorf("%w: UTMzone: %v", ErrBadHeader, err)
			}
			utmZone, haveUTM = v, true
		}
	}
	if !haveCellsize {
		return RasterSamples{}, fmt.Errorf("%w: missing cellsize", ErrBadHeader)
	}

	var rows [][]float64
	parseRow := func(line string) ([]float64, error) {
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIOError, err)
			}
			row[i] = v
		}
		return row, nil
	}
	if firstDataLine != "" {
		row, err := parseRow(firstDataLine)
		if err != nil {
			return RasterSamples{}, err
		}
		rows = append(rows, row)
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return RasterSamples{}, err
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return RasterSamples{}, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return RasterSamples{}, ErrEmptyGrid
	}

	frame := Frame{Kind: XY}
	if haveUTM {
		frame = Frame{Kind: UTMZone, Zone: utmZone}
	}
	// The header's xllcorner/yllcorner are taken as the south-west cell's
	// centre; the NW cell's northing lies (rows-1) cells north of it.
	nwNorthing := yll + float64(len(rows)-1)*cellsize
	return RasterSamples{
		Elevation:  rows,
		Resolution: cellsize,
		Origin: Origin{
			Frame:    frame,
			Easting:  xll,
			Northing: nwNorthing,
		},
	}, nil
}

// LoadObstaclePNG decodes an 8-bit grayscale obstacle mask: pixel value 0
// denotes obstacle, non-zero denotes free. The returned mask
// is [row][col]bool, true where the cell is an obstacle; image dimensions
// become the mask's height and width.
func LoadObstaclePNG(r io.Reader) ([][]bool, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := make([][]bool, h)
	gray, isGray := img.(*image.Gray)
	for row := 0; row < h; row++ {
		mask[row] = make([]bool, w)
		for col := 0; col < w; col++ {
			var v uint8
			if isGray {
				v = gray.GrayAt(bounds.Min.X+col, bounds.Min.Y+row).Y
			} else {
				gr, _, _, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
				v = uint8(gr >> 8)
			}
			mask[row][col] = v == 0
		}
	}
	return mask, nil
}

// NewFlat builds a Grid of flat (zero-elevation) terrain at unit or custom
// resolution, all cells valid. Used for scenarios driven purely by a PNG
// obstacle mask or by explicit obstacle annotations, with no DEM.
func NewFlat(width, height int, resolution, gravity, maxSlopeDeg float64) (*Grid, error) {
	elevation := make([][]float64, height)
	for r := range elevation {
		elevation[r] = make([]float64, width)
	}
	return New(elevation, resolution, gravity, maxSlopeDeg, Origin{Frame: Frame{Kind: XY}})
}

// ApplyObstacleMask annotates g's obstacles from mask, which must match g's
// dimensions exactly. true entries mark obstacles.
func (g *Grid) ApplyObstacleMask(mask [][]bool) error {
	if len(mask) != g.Height || (g.Height > 0 && len(mask[0]) != g.Width) {
		return fmt.Errorf("%w: mask dimensions do not match grid", ErrBadHeader)
	}
	cells := make([]Cell, 0, g.Height*g.Width)
	for r, row := range mask {
		for c, obstacle := range row {
			if obstacle {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	g.SetObstacleList(cells, true)
	return nil
}
