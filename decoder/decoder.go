// Package decoder reconstructs the text or binary payload encoded in a
// QR Code symbol from its module grid. It expects the caller to have
// already located and sampled the symbol into a size x size grid of
// light/dark booleans. Locating a symbol in a photograph and binarizing
// it is done by neither this package nor the imaging package, which only
// defines the luminance source interface.
package decoder

import (
	"fmt"
	"strings"

	"github.com/go-qr/qrcore/eci"
	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/matrix"
	"github.com/go-qr/qrcore/qrcodeecc"
	"github.com/go-qr/qrcore/qrerror"
	"github.com/go-qr/qrcore/qrsegment"
	"github.com/go-qr/qrcore/version"
	"github.com/rs/zerolog"
)

// Segment is one mode-tagged chunk of a decoded payload.
type Segment struct {
	Mode qrsegment.QrSegmentMode
	Text string
}

// Result is the outcome of successfully decoding a symbol.
type Result struct {
	Version              version.Version
	ErrorCorrectionLevel qrcodeecc.QrCodeEcc
	Mask                 mask.Mask
	Segments             []Segment
	Text                 string
	ErrorsCorrected      int
}

// Option configures a Decode call.
type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger attaches a logger that receives diagnostic events (version
// detected, format info recovered, total errors corrected, ECI switches)
// at debug level.
// The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Decode reconstructs a QR Code's payload from a size x size grid of
// module colors, true meaning dark. get is called with coordinates in
// [0, size) x [0, size).
func Decode(size int32, get func(x, y int32) bool, opts ...Option) (*Result, error) {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ver, err := version.ForDimension(size)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug().Int("version", int(ver.Value())).Int32("size", size).Msg("detected version from matrix dimension")

	grid := matrix.New(ver)
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			grid.Set(x, y, get(x, y))
		}
	}

	if ver.Value() >= 7 {
		if readVer, err := grid.ReadVersionInfo(); err != nil {
			cfg.logger.Debug().Err(err).Msg("version info unreadable, trusting matrix dimension")
		} else if readVer != ver.Value() {
			return nil, fmt.Errorf("%w: matrix dimension implies version %d but version info reads %d", qrerror.ErrFormatInfoUncorrectable, ver.Value(), readVer)
		}
	}

	eclBits, maskVal, err := grid.ReadFormatBits()
	if err != nil {
		return nil, err
	}
	ecl, err := qrcodeecc.FromFormatBits(eclBits)
	if err != nil {
		return nil, err
	}
	mk := mask.New(maskVal)
	cfg.logger.Debug().Stringer("ecc", ecl).Int("mask", int(mk.Value())).Msg("recovered format info")

	grid.ApplyMask(mk)
	raw := grid.ReadCodewords()

	data, corrected, err := deinterleaveAndCorrect(ver, ecl, raw)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug().Int("codewords", len(data)).Int("corrected", corrected).Msg("recovered data codewords")

	segs, text, err := decodeSegments(data, ver, &cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Version:              ver,
		ErrorCorrectionLevel: ecl,
		Mask:                 mk,
		Segments:             segs,
		Text:                 text,
		ErrorsCorrected:      corrected,
	}, nil
}

func decodeSegments(data []byte, ver version.Version, cfg *config) ([]Segment, string, error) {
	bb := qrsegment.NewBitBufferFromBytes(data)
	var segs []Segment
	var sb strings.Builder
	currentECI := eci.UTF8
	haveECI := false
	eciPending := false

	for bb.Available() >= 4 {
		modeBits, err := bb.Read(4)
		if err != nil {
			return nil, "", err
		}
		if modeBits == 0 {
			break // terminator
		}

		mode, err := qrsegment.ModeFromBits(modeBits)
		if err != nil {
			return nil, "", err
		}

		if eciPending && mode != qrsegment.ModeByte {
			return nil, "", fmt.Errorf("%w: mode %v", qrerror.ErrECIFollowedByInvalidMode, mode)
		}
		eciPending = false

		if mode == qrsegment.ModeEci {
			val, err := qrsegment.DecodeEciValue(bb)
			if err != nil {
				return nil, "", err
			}
			currentECI = val
			haveECI = true
			eciPending = true
			cfg.logger.Debug().Uint32("eci", val).Msg("switched ECI designator")
			continue
		}

		numchars, err := bb.Read(mode.NumCharCountBits(ver))
		if err != nil {
			return nil, "", err
		}

		var text string
		switch mode {
		case qrsegment.ModeNumeric:
			text, err = qrsegment.DecodeNumeric(bb, uint(numchars))
		case qrsegment.ModeAlphanumeric:
			text, err = qrsegment.DecodeAlphanumeric(bb, uint(numchars))
		case qrsegment.ModeByte:
			var raw []byte
			raw, err = qrsegment.DecodeByte(bb, uint(numchars))
			if err == nil {
				if haveECI {
					text, err = eci.Decode(currentECI, raw)
				} else {
					text = string(raw)
				}
			}
		case qrsegment.ModeKanji:
			text, err = qrsegment.DecodeKanji(bb, uint(numchars))
		case qrsegment.ModeHanzi:
			text, err = qrsegment.DecodeHanzi(bb, uint(numchars))
		default:
			err = fmt.Errorf("%w: %v", qrerror.ErrUnknownMode, mode)
		}
		if err != nil {
			return nil, "", err
		}

		segs = append(segs, Segment{Mode: mode, Text: text})
		sb.WriteString(text)
	}

	return segs, sb.String(), nil
}
