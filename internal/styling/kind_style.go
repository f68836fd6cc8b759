package styling

import (
	"fmt"

	"github.com/ja-he/planlayout/internal/model"
)

// KindStyling is a set of default colors for event kinds, used for events
// that come without a usable color of their own.
type KindStyling struct {
	colors map[model.EventKind]string
}

// EmptyKindStyling returns an empty kind styling.
func EmptyKindStyling() *KindStyling {
	return &KindStyling{colors: map[model.EventKind]string{}}
}

// Add adds the given color for the given kind to this KindStyling.
func (ks *KindStyling) Add(kind model.EventKind, color string) error {
	normalized, err := NormalizeColor(color)
	if err != nil {
		return fmt.Errorf("unusable color for kind '%s' (%w)", kind, err)
	}
	ks.colors[kind] = normalized
	return nil
}

// GetColor returns the color for the requested kind from this styling.
//
// If no color is present for the kind, it returns an error.
func (ks *KindStyling) GetColor(kind model.EventKind) (string, error) {
	if ks != nil {
		if color, ok := ks.colors[kind]; ok {
			return color, nil
		}
	}
	return "", fmt.Errorf("color for kind '%s' not found", kind)
}
