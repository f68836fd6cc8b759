package config

import (
	"github.com/ja-he/planlayout/internal/model"
	"github.com/ja-he/planlayout/internal/styling"
)

// KindStyling builds the default event colors by kind.
func (c Config) KindStyling() (*styling.KindStyling, error) {
	result := styling.EmptyKindStyling()
	for kind, color := range c.KindColors {
		err := result.Add(model.EventKind(kind), color)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
