package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/AgentShepherd/codeintel/internal/completion"
	"github.com/AgentShepherd/codeintel/internal/config"
	"github.com/AgentShepherd/codeintel/internal/earlyinit"
	"github.com/AgentShepherd/codeintel/internal/icon"
	"github.com/AgentShepherd/codeintel/internal/indicators"
	"github.com/AgentShepherd/codeintel/internal/logger"
	"github.com/AgentShepherd/codeintel/internal/server"
	"github.com/AgentShepherd/codeintel/internal/tui"
	"github.com/AgentShepherd/codeintel/internal/tui/indicatorlist"
	"github.com/AgentShepherd/codeintel/internal/types"
)

// Version is set at build time via ldflags: -X main.Version=x.y.z
var Version = "1.0.0"

var log = logger.New("main")

func main() {
	// Shell completion requests exit here.
	if completion.Run() {
		return
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve":
			runServe(os.Args[2:])
			return
		case "init":
			runInit(os.Args[2:])
			return
		case "list":
			runList(os.Args[2:])
			return
		case "show":
			runShow(os.Args[2:])
			return
		case "icon":
			runIcon(os.Args[2:])
			return
		case "completion":
			runCompletion(os.Args[2:])
			return
		case "version", "-v", "--version":
			runVersion(os.Args[2:])
			return
		case "help", "-h", "--help":
			printUsage()
			return
		default:
			tui.PrintError(fmt.Sprintf("unknown command %q", os.Args[1]))
			printUsage()
			os.Exit(1)
		}
	}

	// No subcommand - show help
	printUsage()
}

func fatalf(format string, args ...any) {
	tui.PrintError(fmt.Sprintf(format, args...))
	os.Exit(1)
}

// loadConfig loads the file at path, layers the environment on top and
// validates the result.
func loadConfig(path string) *config.Config {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// serveOverrides are serve flags that win over file and environment.
// Zero values leave the config untouched.
type serveOverrides struct {
	port          int
	listenAddress string
	logLevel      string
	noColor       bool
}

func (o serveOverrides) apply(cfg *config.Config) {
	if o.port != 0 {
		cfg.Server.Port = o.port
	}
	if o.listenAddress != "" {
		cfg.Server.ListenAddress = o.listenAddress
	}
	if o.logLevel != "" {
		cfg.Server.LogLevel = types.LogLevel(o.logLevel)
	}
	if o.noColor {
		cfg.Server.NoColor = true
	}
}

// runServe handles the serve subcommand
func runServe(args []string) {
	serveFlags := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := serveFlags.String("config", config.DefaultConfigPath(), "Path to configuration file")
	port := serveFlags.Int("port", 0, "API server port (default from config)")
	listenAddress := serveFlags.String("listen-address", "", "Address to bind (default from config)")
	logLevel := serveFlags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	noColor := serveFlags.Bool("no-color", false, "Disable colored log output")
	noWatch := serveFlags.Bool("no-watch", false, "Do not reload the config file on change")
	_ = serveFlags.Parse(args)

	// bubbletea's init() has run; styled log output is safe again.
	earlyinit.Restore()
	logger.DetectColorProfile()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fatalf("Failed to load configuration: %v", err)
	}
	overrides := serveOverrides{
		port:          *port,
		listenAddress: *listenAddress,
		logLevel:      *logLevel,
		noColor:       *noColor,
	}
	overrides.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	logger.SetGlobalLevelFromString(string(cfg.Server.LogLevel))
	if cfg.Server.NoColor {
		logger.SetColored(false)
		tui.SetPlainMode(true)
	}

	srv := server.New(cfg.Server.Addr(), cfg.Catalog())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch && !*noWatch {
		w, err := config.NewWatcher(*configPath, func(next *config.Config) {
			srv.Swap(next.Catalog())
		})
		if err != nil {
			log.Warn("Config watcher unavailable: %v", err)
		} else if err := w.Start(); err != nil {
			log.Warn("Config watcher unavailable: %v", err)
		} else {
			defer func() { _ = w.Stop() }()
		}
	}

	log.Info("codeintel %s serving %d indicators", Version, len(srv.Catalog().Entries()))
	if err := srv.Run(ctx); err != nil {
		log.Error("Server error: %v", err)
		stop()
		os.Exit(1)
	}
	log.Info("codeintel stopped")
}

// runInit handles the init subcommand
func runInit(args []string) {
	initFlags := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := initFlags.String("config", config.DefaultConfigPath(), "Path to write the configuration file")
	force := initFlags.Bool("force", false, "Overwrite an existing configuration file")
	_ = initFlags.Parse(args)

	if _, err := os.Stat(*configPath); err == nil {
		if !*force {
			fatalf("%s already exists (use --force to overwrite)", *configPath)
		}
		tui.PrintWarning("Overwriting " + *configPath)
	}
	if err := config.Save(*configPath, config.DefaultConfig()); err != nil {
		fatalf("%v", err)
	}
	tui.PrintSuccess("Wrote " + *configPath)
}

// selectEntries returns the catalog entries matching kind, or all entries
// when kind is empty.
func selectEntries(cat *indicators.Catalog, kind string) ([]indicators.Entry, error) {
	if kind == "" {
		return cat.Entries(), nil
	}
	k, ok := types.ParseIndicatorKind(kind)
	if !ok {
		return nil, fmt.Errorf("invalid kind %q: must be one of badge, alert, legacy", kind)
	}
	return cat.EntriesOfKind(k), nil
}

// runList handles the list subcommand
func runList(args []string) {
	listFlags := flag.NewFlagSet("list", flag.ExitOnError)
	configPath := listFlags.String("config", config.DefaultConfigPath(), "Path to configuration file")
	kind := listFlags.String("kind", "", "Only list one kind: badge, alert, legacy")
	jsonOutput := listFlags.Bool("json", false, "Output as JSON")
	plain := listFlags.Bool("plain", false, "Plain text output (no interactive browser)")
	_ = listFlags.Parse(args)

	cfg := loadConfig(*configPath)
	entries, err := selectEntries(cfg.Catalog(), *kind)
	if err != nil {
		fatalf("%v", err)
	}

	if *jsonOutput {
		printJSON(entries)
		return
	}
	if *plain || cfg.Server.NoColor {
		tui.SetPlainMode(true)
	}
	if err := indicatorlist.Render(entries); err != nil {
		fatalf("Failed to render indicators: %v", err)
	}
}

var errNotFound = errors.New("indicator not found")

// lookupRecord finds name in cat, restricted to kind when one is given.
func lookupRecord(cat *indicators.Catalog, name, kind string) (any, error) {
	if kind == "" {
		e, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errNotFound, name)
		}
		return e.Value, nil
	}

	k, ok := types.ParseIndicatorKind(kind)
	if !ok {
		return nil, fmt.Errorf("invalid kind %q: must be one of badge, alert, legacy", kind)
	}
	var (
		v     any
		found bool
	)
	switch k {
	case types.KindBadge:
		v, found = cat.Badge(name)
	case types.KindAlert:
		v, found = cat.Alert(name)
	case types.KindLegacy:
		v, found = cat.Legacy(name)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s %s", errNotFound, k, name)
	}
	return v, nil
}

// runShow handles the show subcommand
func runShow(args []string) {
	showFlags := flag.NewFlagSet("show", flag.ExitOnError)
	configPath := showFlags.String("config", config.DefaultConfigPath(), "Path to configuration file")
	kind := showFlags.String("kind", "", "Restrict lookup to one kind: badge, alert, legacy")
	_ = showFlags.Parse(args)

	rest := showFlags.Args()
	if len(rest) == 0 {
		fatalf("Usage: codeintel show <name> [--kind KIND]")
	}
	name := rest[0]

	// Allow flags after the name: show lsp --kind alert
	_ = showFlags.Parse(rest[1:])
	if showFlags.NArg() > 0 {
		fatalf("Usage: codeintel show <name> [--kind KIND]")
	}

	cfg := loadConfig(*configPath)
	v, err := lookupRecord(cfg.Catalog(), name, *kind)
	if err != nil {
		fatalf("%v", err)
	}
	printJSON(v)
}

// iconOptions select what the icon subcommand prints.
type iconOptions struct {
	color  string
	light  bool
	decode string
	svg    bool
}

// renderIcon returns the icon subcommand output and the color it used.
func renderIcon(palette indicators.Palette, opts iconOptions) (string, icon.Color, error) {
	if opts.decode != "" {
		markup, err := icon.Decode(icon.URI(opts.decode))
		if err != nil {
			return "", "", err
		}
		return markup, "", nil
	}

	color := palette.Dark
	if opts.light {
		color = palette.Light
	}
	if opts.color != "" {
		color = icon.Color(opts.color)
	}
	if !color.IsHex() {
		return "", "", fmt.Errorf("invalid color %q: must be a hex color like #ffffff", color)
	}

	if opts.svg {
		return icon.Normalize(icon.InfoMarkup(color)), color, nil
	}
	return icon.Encode(color).String(), color, nil
}

// runIcon handles the icon subcommand
func runIcon(args []string) {
	iconFlags := flag.NewFlagSet("icon", flag.ExitOnError)
	configPath := iconFlags.String("config", config.DefaultConfigPath(), "Path to configuration file")
	color := iconFlags.String("color", "", "Fill color (default: the configured dark color)")
	light := iconFlags.Bool("light", false, "Use the configured light color")
	decode := iconFlags.String("decode", "", "Decode a data URI and print its SVG")
	svg := iconFlags.Bool("svg", false, "Print the SVG markup instead of a data URI")
	_ = iconFlags.Parse(args)

	cfg := loadConfig(*configPath)
	out, used, err := renderIcon(cfg.IconPalette(), iconOptions{
		color:  *color,
		light:  *light,
		decode: *decode,
		svg:    *svg,
	})
	if err != nil {
		fatalf("%v", err)
	}
	if used != "" && !tui.IsPlainMode() {
		tui.PrintInfo(tui.Swatch(string(used)) + " info icon")
	}
	fmt.Println(out)
}

// runCompletion handles the completion subcommand
func runCompletion(args []string) {
	compFlags := flag.NewFlagSet("completion", flag.ExitOnError)
	doInstall := compFlags.Bool("install", false, "Install shell completion")
	doUninstall := compFlags.Bool("uninstall", false, "Remove shell completion")
	_ = compFlags.Parse(args)

	switch {
	case *doInstall && *doUninstall:
		fatalf("--install and --uninstall are mutually exclusive")
	case *doInstall:
		if err := completion.Install(); err != nil {
			fatalf("Failed to install completion: %v", err)
		}
		tui.PrintSuccess("Shell completion installed. Restart your shell to use it.")
	case *doUninstall:
		if err := completion.Uninstall(); err != nil {
			fatalf("Failed to uninstall completion: %v", err)
		}
		tui.PrintSuccess("Shell completion removed.")
	default:
		if completion.IsInstalled() {
			tui.PrintInfo("Shell completion is installed.")
		} else {
			tui.PrintInfo("Shell completion is not installed. Run: codeintel completion --install")
		}
	}
}

// versionInfo is the version --json payload.
type versionInfo struct {
	Version string `json:"version"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Version: Version,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// runVersion handles the version subcommand
func runVersion(args []string) {
	versionFlags := flag.NewFlagSet("version", flag.ExitOnError)
	jsonOutput := versionFlags.Bool("json", false, "Output as JSON")
	_ = versionFlags.Parse(args)

	if *jsonOutput {
		printJSON(currentVersion())
		return
	}
	fmt.Printf("codeintel version %s\n", Version)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("Failed to encode JSON: %v", err)
	}
	fmt.Println(string(data))
}

func printUsage() {
	fmt.Println(`codeintel - Precise code intelligence indicators

Usage:
  codeintel serve [flags]              Serve the indicator catalog over HTTP
  codeintel init [--force]             Write the default configuration file
  codeintel list [--kind K] [--json]   List badges, alerts and legacy indicators
  codeintel show <name> [--kind K]     Print one indicator as JSON
  codeintel icon [flags]               Print the info icon as a data URI

  codeintel completion [--install|--uninstall]  Manage shell completion
  codeintel help                       Show this help message
  codeintel version [--json]           Show version

Serve Flags:
  --config string          Path to configuration file (default "~/.codeintel/config.yaml")
  --port int               API server port (default 7080)
  --listen-address string  Address to bind (default "127.0.0.1")
  --log-level string       Log level: trace, debug, info, warn, error
  --no-color               Disable colored log output
  --no-watch               Do not reload the config file on change

Icon Flags:
  --color string   Fill color, e.g. "#ff0000" (default: configured dark color)
  --light          Use the configured light color
  --svg            Print SVG markup instead of a data URI
  --decode string  Decode a data URI and print its SVG

Environment Variables:
  CODEINTEL_PORT, CODEINTEL_LISTEN_ADDRESS, CODEINTEL_LOG_LEVEL
  CODEINTEL_PRECISE_URL, CODEINTEL_BASIC_URL
  CODEINTEL_DARK_COLOR, CODEINTEL_LIGHT_COLOR

Examples:
  codeintel serve --port 8080
  codeintel list --kind alert
  codeintel show lsp
  codeintel icon --color "#ff0000"`)
}
