// Package options defines the validated configuration surface for
// generating a QR Code symbol beyond the raw encode/decode pipeline:
// version selection, mask forcing, quiet zone sizing, and the module
// recoloring and logo-exclusion knobs the render package consumes.
package options

import (
	"fmt"

	"github.com/go-qr/qrcore/mask"
	"github.com/go-qr/qrcore/matrix"
	"github.com/go-qr/qrcore/qrcodeecc"
	"github.com/go-qr/qrcore/qrerror"
	"github.com/go-qr/qrcore/qrsegment"
	"github.com/go-qr/qrcore/version"
)

// VersionSelection is either a forced version or automatic selection of
// the smallest version that fits the payload.
type VersionSelection struct {
	Auto bool
	// Fixed is used when Auto is false.
	Fixed version.Version
}

// AutoVersion requests automatic version selection.
func AutoVersion() VersionSelection {
	return VersionSelection{Auto: true}
}

// FixedVersion forces a specific version.
func FixedVersion(v version.Version) VersionSelection {
	return VersionSelection{Fixed: v}
}

// ModeSelection is either a forced segment mode or automatic selection of
// the mode best suited to the payload (MakeSegments' numeric/alphanumeric/
// byte heuristic).
type ModeSelection struct {
	Auto bool
	// Fixed is used when Auto is false. Only the primary segment modes
	// (Numeric, Alphanumeric, Byte, Kanji, Hanzi) are valid; Eci is not a
	// selectable payload mode.
	Fixed qrsegment.QrSegmentMode
}

// AutoMode requests automatic segment mode selection.
func AutoMode() ModeSelection {
	return ModeSelection{Auto: true}
}

// FixedMode forces a specific segment mode for the whole payload.
func FixedMode(m qrsegment.QrSegmentMode) ModeSelection {
	return ModeSelection{Fixed: m}
}

// MaskSelection is either a forced mask pattern or automatic selection of
// the lowest-penalty mask.
type MaskSelection struct {
	Auto bool
	// Fixed is used when Auto is false.
	Fixed mask.Mask
}

// AutoMask requests automatic mask selection.
func AutoMask() MaskSelection {
	return MaskSelection{Auto: true}
}

// FixedMask forces a specific mask pattern.
func FixedMask(m mask.Mask) MaskSelection {
	return MaskSelection{Fixed: m}
}

// QROptions is the validated set of parameters controlling how a symbol
// is built and rendered. The zero value is not valid; construct one with
// Default and then override fields, or New to validate a fully populated
// value.
type QROptions struct {
	Version            VersionSelection
	MinVersion         version.Version
	EccLevel           qrcodeecc.QrCodeEcc
	MaskPattern        MaskSelection
	Mode               ModeSelection
	ConnectPaths       bool
	ExcludeFromConnect map[matrix.ModuleTag]bool
	InvertMatrix       bool
	AddQuietZone       bool
	QuietZoneSize      int32
	ModuleValues       map[matrix.ModuleTag]string
	// LogoSpaceWidth and LogoSpaceHeight reserve a centered, light module
	// area tagged Logo for an overlaid image. Both must be positive for
	// the reservation to apply, and it is only accepted at error
	// correction level High, whose redundancy absorbs the blanked modules.
	LogoSpaceWidth  int32
	LogoSpaceHeight int32
}

// Default returns the conservative default configuration: automatic
// version and mask selection, medium error correction, no path
// connection, no inversion, and a standard 4-module quiet zone.
func Default() QROptions {
	return QROptions{
		Version:       AutoVersion(),
		MinVersion:    version.Min,
		EccLevel:      qrcodeecc.Medium,
		MaskPattern:   AutoMask(),
		Mode:          AutoMode(),
		ConnectPaths:  false,
		AddQuietZone:  true,
		QuietZoneSize: 4,
	}
}

// New validates opts and returns it unchanged if every field is
// consistent, or an error describing the first problem found.
func New(opts QROptions) (QROptions, error) {
	if !opts.Version.Auto {
		if opts.Version.Fixed.Value() < version.Min.Value() || opts.Version.Fixed.Value() > version.Max.Value() {
			return opts, fmt.Errorf("%w: forced version %d", qrerror.ErrInvalidVersion, opts.Version.Fixed.Value())
		}
	}
	if opts.MinVersion.Value() < version.Min.Value() || opts.MinVersion.Value() > version.Max.Value() {
		return opts, fmt.Errorf("%w: min_version %d", qrerror.ErrInvalidVersion, opts.MinVersion.Value())
	}
	if !opts.Version.Auto && opts.Version.Fixed.Value() < opts.MinVersion.Value() {
		return opts, fmt.Errorf("%w: forced version %d below min_version %d", qrerror.ErrInvalidVersion, opts.Version.Fixed.Value(), opts.MinVersion.Value())
	}
	if opts.EccLevel > qrcodeecc.High {
		return opts, fmt.Errorf("%w: %d", qrerror.ErrInvalidEccLevel, uint(opts.EccLevel))
	}
	if !opts.MaskPattern.Auto && opts.MaskPattern.Fixed.Value() > 7 {
		return opts, fmt.Errorf("%w: mask pattern %d", qrerror.ErrInvalidMaskPattern, opts.MaskPattern.Fixed.Value())
	}
	if !opts.Mode.Auto {
		switch opts.Mode.Fixed {
		case qrsegment.ModeNumeric, qrsegment.ModeAlphanumeric, qrsegment.ModeByte, qrsegment.ModeKanji, qrsegment.ModeHanzi:
		default:
			return opts, fmt.Errorf("%w: mode %v is not a selectable payload mode", qrerror.ErrUnknownMode, opts.Mode.Fixed)
		}
	}
	if opts.QuietZoneSize < 0 || opts.QuietZoneSize > 75 {
		return opts, fmt.Errorf("%w: quiet zone size %d out of range [0, 75]", qrerror.ErrInvalidVersion, opts.QuietZoneSize)
	}
	if opts.LogoSpaceWidth < 0 || opts.LogoSpaceHeight < 0 {
		return opts, fmt.Errorf("%w: %dx%d", qrerror.ErrInvalidLogoSpace, opts.LogoSpaceWidth, opts.LogoSpaceHeight)
	}
	if opts.LogoSpaceWidth > 0 && opts.LogoSpaceHeight > 0 && opts.EccLevel != qrcodeecc.High {
		return opts, fmt.Errorf("%w: error correction level %v, need H", qrerror.ErrInvalidLogoSpace, opts.EccLevel)
	}
	return opts, nil
}
