package imaging

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/astrogo/fitsio"
)

// LoadFITS reads the primary HDU of a FITS file into a brightness grid.
//
// The data unit must be a 2-D image. Stored values are rescaled to
// physical values using the BSCALE and BZERO header cards when present.
// All integer BITPIX layouts (8, 16, 32, 64) and both IEEE float layouts
// (-32, -64) are supported.
func LoadFITS(path string) (*Grid, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FITS file: %w", err)
	}
	defer r.Close()

	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FITS file: %w", err)
	}
	defer f.Close()

	img, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return nil, fmt.Errorf("primary HDU of %q is not an image", path)
	}

	hdr := img.Header()
	axes := hdr.Axes()
	if len(axes) != 2 {
		return nil, fmt.Errorf("expected 2-D image data, got %d axes", len(axes))
	}
	width, height := axes[0], axes[1]
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	scale := cardFloat(hdr, "BSCALE", 1)
	zero := cardFloat(hdr, "BZERO", 0)

	g := NewGrid(width, height)
	if err := decodePixels(g.Pix, img.Raw(), hdr.Bitpix()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if scale != 1 || zero != 0 {
		for i, v := range g.Pix {
			g.Pix[i] = zero + scale*v
		}
	}
	return g, nil
}

// decodePixels fills dst with samples decoded from the raw big-endian data
// unit according to BITPIX. FITS stores the first axis varying fastest,
// which matches the row-major layout of Grid.
func decodePixels(dst []float64, raw []byte, bitpix int) error {
	size := bitpix / 8
	if size < 0 {
		size = -size
	}
	if len(raw) < len(dst)*size {
		return fmt.Errorf("truncated data unit: have %d bytes, need %d", len(raw), len(dst)*size)
	}

	switch bitpix {
	case 8:
		for i := range dst {
			dst[i] = float64(raw[i])
		}
	case 16:
		for i := range dst {
			dst[i] = float64(int16(binary.BigEndian.Uint16(raw[i*2:])))
		}
	case 32:
		for i := range dst {
			dst[i] = float64(int32(binary.BigEndian.Uint32(raw[i*4:])))
		}
	case 64:
		for i := range dst {
			dst[i] = float64(int64(binary.BigEndian.Uint64(raw[i*8:])))
		}
	case -32:
		for i := range dst {
			dst[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:])))
		}
	case -64:
		for i := range dst {
			dst[i] = math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:]))
		}
	default:
		return fmt.Errorf("unsupported BITPIX %d", bitpix)
	}
	return nil
}

// cardFloat reads a numeric header card, falling back to def when the card
// is absent or not numeric.
func cardFloat(hdr *fitsio.Header, key string, def float64) float64 {
	card := hdr.Get(key)
	if card == nil {
		return def
	}
	switch v := card.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
