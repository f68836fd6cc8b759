package styling

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/model"
)

// FallbackColor is used for events without a usable color.
const FallbackColor = "#cccccc"

// secondaryBlend is how far towards white a derived secondary color is
// blended.
const secondaryBlend = 0.6

var white = colorful.Color{R: 1, G: 1, B: 1}

var hexColorRegex = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{6})$`)

// NormalizeColor resolves a hex color ("#abc", "#aabbcc", "aabbcc") or a
// color name known to the W3C/X11 palette (e.g., "cornflowerblue") to the
// "#rrggbb" form.
func NormalizeColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty color")
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if hexColorRegex.MatchString(hex) {
		c, err := colorful.Hex(hex)
		if err != nil {
			return "", fmt.Errorf("can't parse hex color '%s' (%w)", s, err)
		}
		return c.Hex(), nil
	}

	if _, named := tcell.ColorNames[s]; named {
		if value := tcell.GetColor(s).Hex(); value >= 0 {
			return fmt.Sprintf("#%06x", value), nil
		}
	}

	return "", fmt.Errorf("'%s' is neither a hex color nor a known color name", s)
}

// SecondaryColor derives a lighter companion of the given "#rrggbb" color,
// e.g. for an event's border or background tint.
func SecondaryColor(primary string) (string, error) {
	c, err := colorful.Hex(primary)
	if err != nil {
		return "", fmt.Errorf("can't derive secondary color from '%s' (%w)", primary, err)
	}
	return c.BlendLab(white, secondaryBlend).Clamped().Hex(), nil
}

// Decorate returns the events with their colors normalized and missing
// secondary colors derived. Unusable colors are replaced by the color of the
// event's kind, if kinds has one, and by FallbackColor otherwise.
func Decorate(events []model.Event, kinds *KindStyling) []model.Event {
	result := make([]model.Event, len(events))
	for i, e := range events {
		color, err := NormalizeColor(e.Color)
		if err != nil {
			if e.Color != "" {
				log.Warn().Err(err).Str("event-id", string(e.ID)).Msg("can't use color of event")
			}
			color, err = kinds.GetColor(e.Kind)
			if err != nil {
				color = FallbackColor
			}
		}
		e.Color = color

		if e.SecondaryColor != "" {
			secondary, err := NormalizeColor(e.SecondaryColor)
			if err != nil {
				log.Warn().Err(err).Str("event-id", string(e.ID)).Msg("dropping unusable secondary color of event")
			}
			e.SecondaryColor = secondary
		}
		if e.SecondaryColor == "" {
			// the primary is normalized at this point
			e.SecondaryColor, _ = SecondaryColor(e.Color)
		}

		result[i] = e
	}
	return result
}
