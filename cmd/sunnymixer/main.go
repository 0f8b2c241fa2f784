package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/cli"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/config"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/transport"
	"github.com/jonasaneufeld-debug/sunny-day-mixer/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Mixfile string `arg:"" name:"mixfile" help:"YAML manifest naming the stems of one song" optional:""`
	Version bool   `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("sunnymixer"),
		kong.Description("Load the stems of a song and mix them live from your terminal."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	if CLI.Mixfile == "" {
		cli.PrintError("<mixfile> is required")
		os.Exit(1)
	}

	mix, err := config.LoadMixfile(CLI.Mixfile)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	engine := transport.NewEngine(nil, nil)
	defer engine.Close()

	if err := runLoad(engine, mix); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := runMixer(engine, mix); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	cli.PrintSuccess("Mix closed.")
}

// runLoad fetches and decodes every stem while the loading screen
// shows progress. The load outcome travels through the model; ctrl+c
// on the loading screen cancels the fetch and aborts the run.
func runLoad(engine *transport.Engine, mix *config.Mixfile) error {
	p := tea.NewProgram(ui.NewLoadModel(mix.Title))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	go func() {
		err := engine.Load(ctx, mix.Tracks, func(track string, index, total int) {
			p.Send(ui.LoadProgress{Track: track, Index: index, Total: total})
		})
		if err != nil {
			p.Send(ui.LoadFailed{Err: err})
			return
		}
		p.Send(ui.LoadComplete{
			Tracks:   engine.Registry().TrackNames(),
			Master:   engine.MasterDuration(),
			LoadTime: time.Since(start),
		})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running load UI: %w", err)
	}

	load := final.(*ui.LoadModel)
	if err := load.Err(); err != nil {
		return err
	}
	if !load.Done() || engine.State() != transport.StateReady {
		return fmt.Errorf("load canceled")
	}

	cli.PrintInfo("Loaded", fmt.Sprintf("%d stems, %s", len(mix.Tracks), cli.FormatDuration(engine.MasterDuration())))
	return nil
}

// runMixer hands control to the mixer screen until the user quits.
func runMixer(engine *transport.Engine, mix *config.Mixfile) error {
	p := tea.NewProgram(ui.NewMixerModel(engine, mix.Title))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running mixer UI: %w", err)
	}
	return nil
}
