package app

import (
	"strings"
	"testing"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{
		"PREREQLAB_ASCII":         "true",
		"PREREQLAB_TOPIC":         "sigmoid",
		"PREREQLAB_CELL_WIDTH_PX": "10",
		"PREREQLAB_UI_STYLE":      "retro_terminal",
		"OTHER_UI_MOTION":         "off",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.ASCIIOnly || cfg.StartTopic != "sigmoid" || cfg.CellWidthPx != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.UI.StyleVariant != "retro_terminal" || cfg.UI.MotionLevel != "full" {
		t.Fatalf("unexpected ui config %+v", cfg.UI)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	if _, err := LoadConfig(map[string]string{"PREREQLAB_CELL_WIDTH_PX": "wide"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateNormalizesDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.CellWidthPx != 8 || cfg.UI.StyleVariant != "lab_dark" || cfg.UI.MotionLevel != "full" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"style", Config{UI: UIConfig{StyleVariant: "neon"}}, "style variant"},
		{"motion", Config{UI: UIConfig{MotionLevel: "wild"}}, "motion level"},
		{"cell", Config{CellWidthPx: 100}, "cell width"},
		{"negative cell", Config{CellWidthPx: -1}, "cell width"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}
}
