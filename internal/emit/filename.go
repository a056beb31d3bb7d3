package emit

import "fmt"

// Format identifies one of the three artifact types.
type Format int

const (
	FormatStructuredText Format = iota
	FormatContainer
	FormatInterchange
)

// String returns the format name as used in config and CLI flags.
func (f Format) String() string {
	switch f {
	case FormatStructuredText:
		return "st"
	case FormatContainer:
		return "gvl"
	case FormatInterchange:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "st":
		return FormatStructuredText, nil
	case "gvl":
		return FormatContainer, nil
	case "json":
		return FormatInterchange, nil
	default:
		return 0, fmt.Errorf("unknown artifact format %q", s)
	}
}

// SuggestFilename proposes a file name for an artifact. Writing the file
// is the caller's business.
func SuggestFilename(f Format, spec Spec) string {
	name := spec.ident()
	switch f {
	case FormatContainer:
		return "GVL_" + name + ".TcGVL"
	case FormatInterchange:
		return name + ".json"
	default:
		return name + ".st"
	}
}
