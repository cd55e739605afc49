package main

import "testing"

func TestLoadConfigExplicitFlagOverridesEnv(t *testing.T) {
	t.Setenv("PREREQLAB_UI_STYLE", "retro_terminal")
	t.Setenv("PREREQLAB_UI_MOTION", "reduced")

	var f flags
	run := newRunCmd(&f)
	if err := run.ParseFlags([]string{"--style", "lab_dark"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := loadConfig(run, &f)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UI.StyleVariant != "lab_dark" {
		t.Fatalf("explicit --style should win, got %q", cfg.UI.StyleVariant)
	}
	if cfg.UI.MotionLevel != "reduced" {
		t.Fatalf("unset --motion should keep env value, got %q", cfg.UI.MotionLevel)
	}
}

func TestLoadConfigUnsetFlagsKeepEnv(t *testing.T) {
	t.Setenv("PREREQLAB_UI_STYLE", "retro_terminal")
	t.Setenv("PREREQLAB_CELL_WIDTH_PX", "10")

	var f flags
	run := newRunCmd(&f)
	if err := run.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := loadConfig(run, &f)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UI.StyleVariant != "retro_terminal" || cfg.CellWidthPx != 10 {
		t.Fatalf("env values should survive unset flags, got style=%q cell=%d", cfg.UI.StyleVariant, cfg.CellWidthPx)
	}
}

func TestLoadConfigRejectsInvalidFlag(t *testing.T) {
	var f flags
	run := newRunCmd(&f)
	if err := run.ParseFlags([]string{"--motion", "fast"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, err := loadConfig(run, &f); err == nil {
		t.Fatalf("expected invalid motion level to fail validation")
	}
}
