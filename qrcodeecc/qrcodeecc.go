package qrcodeecc

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
)

/*---- QrCodeEcc functionality ----*/

// QrCodeEcc is the error correction level in a QR Code symbol.
type QrCodeEcc uint

const (
	// Low means the QR Code can tolerate about  7% erroneous codewords.
	Low QrCodeEcc = 0
	// Medium means the QR Code can tolerate about 15% erroneous codewords.
	Medium QrCodeEcc = 1
	// Quartile means the QR Code can tolerate about 25% erroneous codewords.
	Quartile QrCodeEcc = 2
	// High means the QR Code can tolerate about 30% erroneous codewords.
	High QrCodeEcc = 3
)

// Ordinal returns an unsigned 2-bit integer (in the range 0 to 3).
func (q QrCodeEcc) Ordinal() uint {
	switch q {
	case Low:
		return 0
	case Medium:
		return 1
	case Quartile:
		return 2
	case High:
		return 3
	default:
		panic("unknown QrCodeEcc")
	}
}

// FromFormatBits reconstructs the error correction level from the 2-bit
// field-info code (the inverse of FormatBits). Returns
// qrerror.ErrInvalidEccLevel for any value outside [0, 3].
func FromFormatBits(bits uint8) (QrCodeEcc, error) {
	switch bits {
	case 1:
		return Low, nil
	case 0:
		return Medium, nil
	case 3:
		return Quartile, nil
	case 2:
		return High, nil
	default:
		return 0, fmt.Errorf("%w: format bits %#x", qrerror.ErrInvalidEccLevel, bits)
	}
}

// String returns the single-letter name of the level (L, M, Q, or H).
func (q QrCodeEcc) String() string {
	switch q {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// FormatBits returns an unsigned 2-bit integer (in the range 0 to 3).
func (q QrCodeEcc) FormatBits() uint8 {
	switch q {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown QrCodeEcc")
	}
}
