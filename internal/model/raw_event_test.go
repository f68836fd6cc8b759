package model_test

import (
	"testing"
	"time"

	"github.com/ja-he/planlayout/internal/model"
)

func TestParseInstant(t *testing.T) {
	expected := time.Date(2022, 11, 14, 9, 30, 0, 0, time.UTC)
	for _, input := range []string{
		"2022-11-14T09:30:00Z",
		"2022-11-14T10:30:00+01:00",
		"2022-11-14T09:30:00",
		"2022-11-14T09:30",
		"2022-11-14 09:30:00",
		"2022-11-14 09:30",
	} {
		result, err := model.ParseInstant(input, time.UTC)
		if err != nil {
			t.Errorf("unexpected error for '%s': %s", input, err)
			continue
		}
		if !result.Equal(expected) {
			t.Errorf("expected %s for '%s', got %s", expected, input, result)
		}
	}

	midnight, err := model.ParseInstant("2022-11-14", time.UTC)
	if err != nil || !midnight.Equal(time.Date(2022, 11, 14, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected date-only input to be midnight, got", midnight, err)
	}

	if _, err := model.ParseInstant("14.11.2022 09:30", time.UTC); err == nil {
		t.Error("expected error")
	}
}

func TestRawEventParse(t *testing.T) {
	e, err := model.RawEvent{
		ID:    "lecture",
		Title: "Lecture",
		Start: "2022-11-14 09:00",
		End:   "2022-11-14 10:30",
	}.Parse(time.UTC)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if e.ID != "lecture" || e.Kind != model.KindEvent || e.Duration() != 90*time.Minute {
		t.Error("unexpected event", e.String())
	}

	task, err := model.RawEvent{ID: "t", Kind: "task", Start: "2022-11-14", End: "2022-11-14"}.Parse(time.UTC)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if task.Kind != model.KindTask || task.Duration() != 0 {
		t.Error("expected point task, got", task.String())
	}

	for name, raw := range map[string]model.RawEvent{
		"bad start": {ID: "x", Start: "soon", End: "2022-11-14 10:30"},
		"bad end":   {ID: "x", Start: "2022-11-14 09:00", End: ""},
		"backwards": {ID: "x", Start: "2022-11-14 10:30", End: "2022-11-14 09:00"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := raw.Parse(time.UTC); err == nil {
				t.Error("expected error")
			}
		})
	}
}
