// Package encoder wraps the external QR symbol encoder behind a narrow
// interface, so rendering and layout never touch encoder internals.
package encoder

import (
	"github.com/pkg/errors"
	qrcode "github.com/yeqown/go-qrcode/v2"
)

// ErrEncoding reports a payload that cannot be encoded at error-correction
// level H.
var ErrEncoding = errors.New("payload exceeds capacity for error-correction level H")

// Matrix is the square grid of QR modules produced by the encoder. It is
// immutable once built; side length is encoder-determined (>= 21, odd).
type Matrix struct {
	side    int
	modules []bool
}

// NewMatrix builds a Matrix from a row-major grid. Rows must form a square.
// Alternative Encoder implementations use this to hand their result over.
func NewMatrix(rows [][]bool) (*Matrix, error) {
	side := len(rows)
	m := &Matrix{
		side:    side,
		modules: make([]bool, side*side),
	}
	for y, row := range rows {
		if len(row) != side {
			return nil, errors.Errorf("row %d has %d modules, want %d", y, len(row), side)
		}
		for x, dark := range row {
			if dark {
				m.modules[y*side+x] = true
			}
		}
	}
	return m, nil
}

// Side returns the module count per side.
func (m *Matrix) Side() int { return m.side }

// Dark reports whether the module at (x, y) is dark. Out-of-range
// coordinates are light.
func (m *Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= m.side || y >= m.side {
		return false
	}
	return m.modules[y*m.side+x]
}

// Encoder produces a module matrix from payload text. Implementations fix
// the error-correction level themselves.
type Encoder interface {
	Encode(text string) (*Matrix, error)
}

// highEncoder encodes at level H (~30% recovery), the only level that leaves
// enough budget for a centered logo overlay.
type highEncoder struct{}

// New returns an Encoder backed by github.com/yeqown/go-qrcode/v2, fixed at
// error-correction level H and byte mode.
func New() Encoder { return highEncoder{} }

func (highEncoder) Encode(text string) (*Matrix, error) {
	qrc, err := qrcode.NewWith(text,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest),
	)
	if err != nil {
		return nil, errors.Wrapf(ErrEncoding, "encode %q: %v", text, err)
	}

	cw := &captureWriter{}
	if err = qrc.Save(cw); err != nil {
		return nil, errors.Wrapf(ErrEncoding, "encode %q: %v", text, err)
	}
	return cw.mat, nil
}

// captureWriter implements the encoder library's Writer interface to take a
// snapshot of the module grid instead of serializing it.
type captureWriter struct {
	mat *Matrix
}

func (w *captureWriter) Write(mat qrcode.Matrix) error {
	side := mat.Width()
	m := &Matrix{
		side:    side,
		modules: make([]bool, side*side),
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if v.IsSet() {
			m.modules[y*side+x] = true
		}
	})
	w.mat = m
	return nil
}

func (w *captureWriter) Close() error { return nil }
