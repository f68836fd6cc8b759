package config_test

import (
	"testing"

	"github.com/ja-he/planlayout/internal/config"
	"github.com/ja-he/planlayout/internal/model"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte{})
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if *c.Layout.VisibleRange.From != 8 || *c.Layout.VisibleRange.To != 22 {
			t.Error("expected default range 8-22")
		}
		if c.Layout.MultiDayTieBreak != config.TieBreakLongerSpanFirst {
			t.Error("expected default tie break, got", c.Layout.MultiDayTieBreak)
		}
		if len(c.Dayparts) != 4 {
			t.Error("expected default dayparts, got", len(c.Dayparts))
		}
	})

	t.Run("partial", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte(`
timezone: Europe/Berlin
layout:
  visible-range:
    from: 0
  slot-interval: 15m
  multi-day-tie-break: input-order
`))
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if c.Timezone != "Europe/Berlin" {
			t.Error("expected timezone overridden, got", c.Timezone)
		}
		if *c.Layout.VisibleRange.From != 0 {
			t.Error("expected explicit from 0 to override, got", *c.Layout.VisibleRange.From)
		}
		if *c.Layout.VisibleRange.To != 22 {
			t.Error("expected default to 22 to stay, got", *c.Layout.VisibleRange.To)
		}
		if c.Layout.SlotInterval != "15m" || c.Layout.SlotHeight != 32 {
			t.Error("unexpected slot config", c.Layout.SlotInterval, c.Layout.SlotHeight)
		}
		if c.Layout.MultiDayTieBreak != config.TieBreakInputOrder {
			t.Error("expected input-order, got", c.Layout.MultiDayTieBreak)
		}
	})

	t.Run("dayparts replaced", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte(`
dayparts:
  - {name: lab, start: "14:00", end: "18:00"}
`))
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if len(c.Dayparts) != 1 || c.Dayparts[0].Name != "lab" {
			t.Error("expected dayparts replaced, got", c.Dayparts)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults([]byte("layout: [1, 2"))
		if err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestKindStyling(t *testing.T) {
	c, err := config.ParseConfigAugmentDefaults([]byte(`
kind-colors:
  task: "#123456"
`))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	kinds, err := c.KindStyling()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if color, _ := kinds.GetColor(model.KindTask); color != "#123456" {
		t.Error("expected overridden task color, got", color)
	}
	if color, _ := kinds.GetColor(model.KindCourse); color != "#2e8b57" {
		t.Error("expected default course color, got", color)
	}

	c, _ = config.ParseConfigAugmentDefaults([]byte(`kind-colors: {event: infrared}`))
	if _, err := c.KindStyling(); err == nil {
		t.Error("expected error for unusable color")
	}
}
