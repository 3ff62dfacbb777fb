// Package qrerror defines the sentinel error kinds shared across the
// encoder and decoder pipelines. Callers use errors.Is against these
// values; call sites wrap them with fmt.Errorf("%w: ...") to attach
// context, the same sentinel+wrap pattern used elsewhere in this module
// (see ErrDataTooLong in the root package).
package qrerror

import "errors"

var (
	// ErrDataOverflow means the payload exceeds the capacity of version 40
	// at the requested error correction level.
	ErrDataOverflow = errors.New("qrcore: data too long for any QR Code version at this error correction level")

	// ErrInvalidVersion means a version number outside [1, 40] was requested.
	ErrInvalidVersion = errors.New("qrcore: version number out of range")

	// ErrInvalidEccLevel means an unrecognized error correction level was requested.
	ErrInvalidEccLevel = errors.New("qrcore: invalid error correction level")

	// ErrInvalidMaskPattern means a mask pattern outside [0, 7] was requested.
	ErrInvalidMaskPattern = errors.New("qrcore: mask pattern out of range")

	// ErrIllegalCharacter means a character fell outside a segment mode's alphabet.
	ErrIllegalCharacter = errors.New("qrcore: illegal character for segment mode")

	// ErrInvalidSubset means a Hanzi subset indicator other than GB2312 was seen.
	ErrInvalidSubset = errors.New("qrcore: unsupported Hanzi subset indicator")

	// ErrNotEnoughBits means the decoder ran out of bits mid-segment.
	ErrNotEnoughBits = errors.New("qrcore: not enough bits remaining to decode segment")

	// ErrUnknownMode means the decoder saw an unrecognized 4-bit mode indicator.
	ErrUnknownMode = errors.New("qrcore: unknown mode indicator")

	// ErrECIFollowedByInvalidMode means an ECI segment was not immediately
	// followed by a Byte segment.
	ErrECIFollowedByInvalidMode = errors.New("qrcore: ECI segment not followed by byte mode")

	// ErrInvalidEciDesignator means an ECI designator value was out of range,
	// or its byte encoding started with an unrecognized prefix.
	ErrInvalidEciDesignator = errors.New("qrcore: invalid ECI designator")

	// ErrFormatInfoUncorrectable means the format or version information of
	// a scanned symbol had more bit errors than its BCH code can repair, or
	// contradicted the symbol's geometry.
	ErrFormatInfoUncorrectable = errors.New("qrcore: format information uncorrectable")

	// ErrReedSolomonFailure means a codeword block had more errors than its
	// error correction strength could repair.
	ErrReedSolomonFailure = errors.New("qrcore: Reed-Solomon block uncorrectable")

	// ErrMatrixInvariantViolation means data placement attempted to overwrite
	// a function module; this indicates an encoder bug.
	ErrMatrixInvariantViolation = errors.New("qrcore: data placement would overwrite a function module")

	// ErrInvalidLogoSpace means a logo space was requested with negative
	// dimensions or at an error correction level below High.
	ErrInvalidLogoSpace = errors.New("qrcore: invalid logo space")

	// ErrCannotWriteFile means a backend file-write helper failed.
	ErrCannotWriteFile = errors.New("qrcore: cannot write file")
)
