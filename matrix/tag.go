package matrix

// ModuleTag classifies what a module belongs to in a QR Code symbol. The
// encoder uses it to know which modules the mask may touch (only Data
// tags) and the decoder uses it to know which modules to
// read as data bits versus interpret structurally.
type ModuleTag int

const (
	// Data modules carry the interleaved data and error correction
	// codewords and are subject to masking.
	Data ModuleTag = iota
	// Finder is one of the three 7x7 position detection patterns.
	Finder
	// Separator is the one-module light border around each finder pattern.
	Separator
	// Alignment is one of the alignment patterns used at version 2 and up.
	Alignment
	// Timing is a module of the horizontal or vertical timing pattern.
	Timing
	// Format carries one of the two redundant copies of the format info.
	Format
	// VersionInfo carries one of the two redundant copies of the version
	// info, present only at version 7 and up.
	VersionInfo
	// DarkModule is the single always-dark module fixed at (8, size-8).
	DarkModule
	// QuietZone is a light border module added outside the symbol proper;
	// only present in matrices built by ExpandQuietZone.
	QuietZone
	// Logo marks a module blanked by SetLogoSpace to make room for an
	// overlaid image, recoverable only through error correction.
	Logo
)

// IsFunction reports whether a module under this tag is a function
// module: part of the fixed symbol structure rather than a data module,
// and therefore immune to masking.
func (t ModuleTag) IsFunction() bool {
	return t != Data
}

// String names the tag, matching the identifiers used in configuration
// (for example exclude_from_connect tag lists).
func (t ModuleTag) String() string {
	switch t {
	case Data:
		return "DATA"
	case Finder:
		return "FINDER"
	case Separator:
		return "SEPARATOR"
	case Alignment:
		return "ALIGNMENT"
	case Timing:
		return "TIMING"
	case Format:
		return "FORMAT"
	case VersionInfo:
		return "VERSION"
	case DarkModule:
		return "DARKMODULE"
	case QuietZone:
		return "QUIETZONE"
	case Logo:
		return "LOGO"
	default:
		return "UNKNOWN"
	}
}
