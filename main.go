package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Jervi-sir/reddit-to-llm/infra/clipboard"
	"github.com/Jervi-sir/reddit-to-llm/infra/config"
	"github.com/Jervi-sir/reddit-to-llm/infra/reddit"
	"github.com/Jervi-sir/reddit-to-llm/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

type cliArgs struct {
	mode  cliMode
	input string // thread URL or ID to fetch right after startup
	msg   string // diagnostic, set for cliInvalid
}

// parseCLIArgs reads the startup thread from --url=, --id=, or a bare
// positional argument; --url= wins over --id=, both win over positional.
func parseCLIArgs(args []string) cliArgs {
	if len(args) == 0 {
		return cliArgs{mode: cliRun}
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliArgs{mode: cliVersion}
	case "--help", "-h", "help":
		return cliArgs{mode: cliHelp}
	}

	var urlArg, idArg, positional string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--url="):
			urlArg = strings.TrimPrefix(arg, "--url=")
		case strings.HasPrefix(arg, "--id="):
			idArg = strings.TrimPrefix(arg, "--id=")
		case strings.HasPrefix(arg, "-"):
			return cliArgs{mode: cliInvalid, msg: fmt.Sprintf("unexpected argument: %s", arg)}
		case positional == "":
			positional = arg
		default:
			return cliArgs{mode: cliInvalid, msg: fmt.Sprintf("unexpected argument: %s", arg)}
		}
	}

	out := cliArgs{mode: cliRun, input: positional}
	if idArg != "" {
		out.input = idArg
	}
	if urlArg != "" {
		out.input = urlArg
	}
	return out
}

func usage() string {
	return "Usage: reddit-to-llm [--url=<thread-url>] [--id=<thread-id>] [<url-or-id>] [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	cli := parseCLIArgs(os.Args[1:])
	switch cli.mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("reddit-to-llm %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", cli.msg, usage())
	}

	// 1. Load config from environment; .env is optional and never wins
	// over real environment variables.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Route diagnostics. The terminal belongs to the TUI, so logs go
	// to a file when debugging and nowhere otherwise.
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	// 3. Build services (concrete types satisfy app.* interfaces).
	client := reddit.NewClient(cfg.BaseURL, cfg.UserAgent, cfg.Timeout)
	threadSvc := reddit.NewThreadService(client)
	clip := clipboard.New()

	// 4. Wire root TUI model.
	input := strings.TrimSpace(cli.input)
	rootModel := tui.NewApp(tui.Deps{
		Thread:    threadSvc,
		Clipboard: clip,
		Input:     input,
		AutoFetch: input != "",
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "reddit-to-llm: %v\n", err)
		os.Exit(1)
	}
}
