package ui

import "charm.land/lipgloss/v2"

type Theme struct {
	Header      lipgloss.Style
	Status      lipgloss.Style
	Breadcrumb  lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelBorder lipgloss.Style
	PanelBody   lipgloss.Style
	Cursor      lipgloss.Style
	Active      lipgloss.Style
	Accent      lipgloss.Style
	Pass        lipgloss.Style
	Muted       lipgloss.Style
	Banner      lipgloss.Style
	Fail        lipgloss.Style
	BarFrom     string
	BarTo       string
}

func DefaultTheme() Theme {
	return ThemeForVariant("lab_dark")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "retro_terminal":
		return retroTerminalTheme()
	default:
		return labDarkTheme()
	}
}

func labDarkTheme() Theme {
	sky := lipgloss.Color("#38bdf8")
	emerald := lipgloss.Color("#34d399")
	rose := lipgloss.Color("#fb7185")
	ink := lipgloss.Color("#0b1220")
	slate := lipgloss.Color("#111a2e")
	line := lipgloss.Color("#1f2d44")
	text := lipgloss.Color("#e2e8f0")
	dim := lipgloss.Color("#64748b")

	return Theme{
		Header: lipgloss.NewStyle().
			Background(ink).
			Foreground(text).
			Bold(true).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Background(slate).
			Foreground(dim).
			Padding(0, 1),
		Breadcrumb:  lipgloss.NewStyle().Foreground(dim),
		PanelTitle:  lipgloss.NewStyle().Foreground(sky).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(line),
		PanelBody:   lipgloss.NewStyle().Foreground(text),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color("#1e293b")).
			Foreground(text),
		Active: lipgloss.NewStyle().Foreground(sky).Bold(true),
		Accent: lipgloss.NewStyle().Foreground(sky).Bold(true),
		Pass:   lipgloss.NewStyle().Foreground(emerald).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(dim),
		Banner: lipgloss.NewStyle().
			Foreground(emerald).
			Bold(true).
			Padding(0, 1),
		Fail:    lipgloss.NewStyle().Foreground(rose).Bold(true),
		BarFrom: "#38bdf8",
		BarTo:   "#34d399",
	}
}

func retroTerminalTheme() Theme {
	lime := lipgloss.Color("#9CF5A2")
	amber := lipgloss.Color("#E5D47A")
	red := lipgloss.Color("#FF6B6B")
	deep := lipgloss.Color("#07150A")
	forest := lipgloss.Color("#12301A")
	glow := lipgloss.Color("#C5F7C4")

	return Theme{
		Header:      lipgloss.NewStyle().Background(deep).Foreground(glow).Padding(0, 1),
		Status:      lipgloss.NewStyle().Background(forest).Foreground(glow).Padding(0, 1),
		Breadcrumb:  lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
		PanelTitle:  lipgloss.NewStyle().Foreground(amber).Bold(true),
		PanelBorder: lipgloss.NewStyle().Foreground(forest),
		PanelBody:   lipgloss.NewStyle().Foreground(glow),
		Cursor:      lipgloss.NewStyle().Background(forest).Foreground(glow),
		Active:      lipgloss.NewStyle().Foreground(amber).Bold(true),
		Accent:      lipgloss.NewStyle().Foreground(lime).Bold(true),
		Pass:        lipgloss.NewStyle().Foreground(lime).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#73A17A")),
		Banner:      lipgloss.NewStyle().Foreground(lime).Bold(true).Padding(0, 1),
		Fail:        lipgloss.NewStyle().Foreground(red).Bold(true),
		BarFrom:     "#1F5C2F",
		BarTo:       "#9CF5A2",
	}
}
