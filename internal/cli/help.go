package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Help styles - sunny theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SunYellow)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(SunOrange).
			Italic(true)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SunOrange).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(SunYellow).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(SkyBlue).
			Bold(true)

	helpHintStyle = lipgloss.NewStyle().
			Foreground(WarmGray)
)

// StyledHelpPrinter renders kong's help in the sunny theme. The mixer
// takes a single mixfile argument, so the whole surface fits on one
// screen: usage, the argument, the flags and one example.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render("Sunny Day Mixer ☀"))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(ctx.Model.Node.Help))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage"))
		sb.WriteString(fmt.Sprintf("\n  %s <mixfile> [flags]\n", ctx.Model.Name))

		if args := ctx.Model.Node.Positional; len(args) > 0 {
			sb.WriteString(helpSectionStyle.Render("Arguments"))
			sb.WriteString("\n")
			for _, arg := range args {
				sb.WriteString(fmt.Sprintf("  %s  %s\n", helpArgStyle.Render(arg.Summary()), arg.Help))
			}
		}

		sb.WriteString(helpSectionStyle.Render("Flags"))
		sb.WriteString("\n")
		for _, f := range ctx.Model.Node.Flags {
			sb.WriteString("  ")
			sb.WriteString(helpFlagStyle.Render(flagUsage(f)))
			if f.Help != "" {
				sb.WriteString("  ")
				sb.WriteString(f.Help)
			}
			sb.WriteString("\n")
		}

		sb.WriteString(helpSectionStyle.Render("Example"))
		sb.WriteString(fmt.Sprintf("\n  %s song.yaml\n", ctx.Model.Name))
		sb.WriteString(helpHintStyle.Render("  A mixfile is a YAML map of stem names to file paths or URLs."))
		sb.WriteString("\n")

		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

// flagUsage renders one flag's invocation forms.
func flagUsage(f *kong.Flag) string {
	var b strings.Builder
	if f.Short != 0 {
		fmt.Fprintf(&b, "-%c, ", f.Short)
	}
	fmt.Fprintf(&b, "--%s", f.Name)
	if !f.IsBool() && f.PlaceHolder != "" {
		fmt.Fprintf(&b, "=%s", strings.ToUpper(f.PlaceHolder))
	}
	return b.String()
}
