package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Indirection points so tests can simulate missing tools and failing
// installs without touching the host system.
var (
	lookPath = exec.LookPath
	command  = exec.CommandContext

	runInstall = func(ctx context.Context, argv []string) error {
		fmt.Println("Running:", strings.Join(argv, " "))
		cmd := command(ctx, argv[0], argv[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}
)

// Status reports how a renderer was obtained at batch start.
type Status int

const (
	StatusUnavailable Status = iota
	StatusAvailable
	StatusInstalled
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusInstalled:
		return "installed"
	default:
		return "unavailable"
	}
}

// librsvg install attempts: first unprivileged, then via non-interactive
// sudo. Either may fail; failure only means we move on.
var installCmds = [][]string{
	{"apt-get", "install", "-y", "librsvg2-bin"},
	{"sudo", "-n", "apt-get", "install", "-y", "librsvg2-bin"},
}

// Ensure resolves the renderer for the whole batch. mode is one of "auto",
// "rsvg", "inkscape" or "builtin". In auto mode the external tools are
// probed first (and an install of librsvg attempted when both are missing)
// before falling back to the built-in rasterizer; a pinned external mode
// that cannot be satisfied yields StatusUnavailable and the batch runs
// degraded. Ensure is idempotent: it mutates nothing on the happy path and
// install attempts are safe to repeat.
func Ensure(ctx context.Context, mode string) (Renderer, Status) {
	var candidates []Renderer
	builtinFallback := false
	canInstall := false

	switch mode {
	case "builtin":
		return BuiltinRenderer{}, StatusAvailable
	case "rsvg":
		candidates = []Renderer{RsvgRenderer{}}
		canInstall = true
	case "inkscape":
		candidates = []Renderer{InkscapeRenderer{}}
	default:
		candidates = []Renderer{RsvgRenderer{}, InkscapeRenderer{}}
		builtinFallback = true
		canInstall = true
	}

	for _, r := range candidates {
		if r.Available() {
			return r, StatusAvailable
		}
	}

	if !canInstall {
		if builtinFallback {
			return BuiltinRenderer{}, StatusAvailable
		}
		return nil, StatusUnavailable
	}

	for _, argv := range installCmds {
		if err := runInstall(ctx, argv); err != nil {
			fmt.Printf("Install attempt failed: %v\n", err)
			continue
		}
		for _, r := range candidates {
			if r.Available() {
				return r, StatusInstalled
			}
		}
	}

	if builtinFallback {
		return BuiltinRenderer{}, StatusAvailable
	}
	return nil, StatusUnavailable
}
