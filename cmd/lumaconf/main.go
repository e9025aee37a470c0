// Package main is the entry point for lumaconf, the luma configuration
// checker. It loads a configuration file, reports every warning and error,
// and can print the effective per-window options for a probe window.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lumawm/luma/internal/config"
	"github.com/lumawm/luma/internal/config/watcher"
	"github.com/lumawm/luma/internal/diag"
	"github.com/lumawm/luma/internal/win"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	sink := diag.New(diag.WithConsole(), diag.WithLevel(zerolog.InfoLevel))

	cfg := config.New(
		config.WithPath(opts.configPath),
		config.WithDiagnostics(sink),
	)

	report, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if report.HasWarnings() {
		fmt.Printf("%s: ok with %d warning(s)\n", opts.configPath, len(report.Warnings))
	} else {
		fmt.Printf("%s: ok\n", opts.configPath)
	}

	if opts.probe != "" {
		w, err := parseProbe(opts.probe, opts.focused)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		printEffective(w, cfg.EffectiveFor(w))
	}

	if opts.watch {
		return watchLoop(cfg, opts.configPath, sink)
	}
	return 0
}

// watchLoop re-checks the file on every change until interrupted. A broken
// edit keeps the previous generation active, so the check never goes dark.
func watchLoop(cfg *config.Config, path string, sink diag.Sink) int {
	w, err := watcher.New(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	w.OnChange(func(p string) {
		if _, err := cfg.Load(); err != nil {
			return
		}
		sink.Infof("reloaded %s", p)
	})

	fmt.Printf("watching %s, ctrl-c to stop\n", w.Path())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

type options struct {
	configPath string
	probe      string
	focused    bool
	watch      bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "configuration file to check")
	flag.StringVar(&opts.probe, "probe", "", "print effective options for a window given as class:name:type")
	flag.BoolVar(&opts.focused, "focused", false, "treat the probe window as focused")
	flag.BoolVar(&opts.watch, "watch", false, "keep running and re-check the file on change")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lumaconf -config FILE [-probe class:name:type] [-focused] [-watch]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if opts.configPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	return opts
}

// parseProbe builds a window descriptor from a class:name:type triple.
// Name and type may be omitted; the type defaults to normal.
func parseProbe(s string, focused bool) (win.Info, error) {
	parts := strings.SplitN(s, ":", 3)
	w := win.Info{Type: win.Normal, Focused: focused}
	w.Class = parts[0]
	if len(parts) > 1 {
		w.Name = parts[1]
	}
	if len(parts) > 2 {
		t, ok := win.ParseWindowType(parts[2])
		if !ok {
			return win.Info{}, fmt.Errorf("unknown window type %q", parts[2])
		}
		w.Type = t
	}
	return w, nil
}

func printEffective(w win.Info, e config.Effective) {
	fmt.Printf("window class=%q name=%q type=%s focused=%v\n", w.Class, w.Name, w.Type, w.Focused)
	fmt.Printf("  shadow        %v\n", e.Shadow)
	fmt.Printf("  full-shadow   %v\n", e.FullShadow)
	fmt.Printf("  fade          %v\n", e.Fade)
	fmt.Printf("  focus-forced  %v\n", e.FocusForced)
	fmt.Printf("  redir-ignore  %v\n", e.RedirIgnore)
	fmt.Printf("  opacity       %.2f\n", e.Opacity)
	fmt.Printf("  corner-radius %d\n", e.CornerRadius)
	fmt.Printf("  round-borders %d\n", e.RoundBorders)
	fmt.Printf("  paint         %v\n", e.Paint)
	fmt.Printf("  invert-color  %v\n", e.InvertColor)
	fmt.Printf("  blur          %v\n", e.Blur)
	fmt.Printf("  transition    %v\n", e.Transition)
}
