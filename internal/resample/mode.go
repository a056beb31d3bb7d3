package resample

import "fmt"

// Mode selects how a source raster is placed onto the target matrix.
type Mode int

const (
	// CropTop copies a target-sized window anchored at the source's
	// top-left, shifted by the offset.
	CropTop Mode = iota
	// CropBottom anchors the window at the bottom of the source.
	CropBottom
	// CropCenter centers the window on the source.
	CropCenter
	// Stretch scales the whole source onto the whole target, ignoring
	// aspect ratio.
	Stretch
	// Fit scales the whole source into a centered sub-rectangle that
	// preserves aspect ratio; the rest stays background black.
	Fit
)

// String returns the mode name as used in config and CLI flags.
func (m Mode) String() string {
	switch m {
	case CropTop:
		return "crop-top"
	case CropBottom:
		return "crop-bottom"
	case CropCenter:
		return "crop-center"
	case Stretch:
		return "stretch"
	case Fit:
		return "fit"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "crop-top":
		return CropTop, nil
	case "crop-bottom":
		return CropBottom, nil
	case "crop-center":
		return CropCenter, nil
	case "stretch":
		return Stretch, nil
	case "fit":
		return Fit, nil
	default:
		return 0, fmt.Errorf("unknown resample mode %q", s)
	}
}
