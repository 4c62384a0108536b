package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
	"pkt.systems/pamflet"
	"pkt.systems/version"
)

const (
	defaultFormat    = "text"
	defaultThemeName = "default"
	defaultWidth     = 80
	envPrefix        = "pamflet"
)

func init() {
	version.SetDefaultModule("pkt.systems/pamflet")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	format        string
	themeName     string
	width         int
	osc8          string
	boring        bool
	separator     string
	output        string
	sequentialIDs bool
	verbose       bool
	listThemes    bool
	showVersion   bool
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("pamflet", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("format", "f", defaultFormat, "Output format: text|json|tokens")
	flags.StringP("theme", "t", defaultThemeName, "Theme name for text output")
	flags.IntP("width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringP("osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolP("boring", "b", false, "Generate non-ANSI text output")
	flags.String("separator", "either", "Property separator: either|colon|equals")
	flags.StringP("output", "o", "", "Output file instead of stdout")
	flags.Bool("sequential-ids", false, "Number element IDs instead of generating random ones")
	flags.BoolP("verbose", "v", false, "Log tokenizer and parser decisions to stderr")
	flags.String("config", "", "Config file (yaml, toml or json)")
	flags.Bool("list-themes", false, "List available themes")
	flags.Bool("version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: pamflet [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nEach input is one pamflet. If no input is provided, a pamflet is read from stdin.")
		fmt.Fprintln(stderr, "Flags can also be set as PAMFLET_<FLAG> environment variables or in --config.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

// loadOptions resolves flags, PAMFLET_* environment variables and the config
// file, in that order of precedence.
func loadOptions(flags *pflag.FlagSet) (options, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return options{}, errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(normalizePath(path))
		if err := v.ReadInConfig(); err != nil {
			return options{}, errors.Wrapf(err, "read config %s", path)
		}
	}
	return options{
		format:        strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		themeName:     v.GetString("theme"),
		width:         v.GetInt("width"),
		osc8:          v.GetString("osc8"),
		boring:        v.GetBool("boring"),
		separator:     v.GetString("separator"),
		output:        v.GetString("output"),
		sequentialIDs: v.GetBool("sequential-ids"),
		verbose:       v.GetBool("verbose"),
		listThemes:    v.GetBool("list-themes"),
		showVersion:   v.GetBool("version"),
	}, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	opts, err := loadOptions(flags)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	switch opts.format {
	case "text", "json", "tokens":
	default:
		fmt.Fprintf(stderr, "invalid --format %q: expected text|json|tokens\n", opts.format)
		return 2
	}
	sep, err := pamflet.ParseSeparator(opts.separator)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --separator: %v\n", err)
		return 2
	}
	theme, ok := pamflet.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}
	if opts.boring {
		theme = pamflet.BoringTheme()
		osc8 = false
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(stderr, "logger: %v\n", err)
			return 1
		}
	}
	defer func() { _ = logger.Sync() }()

	sources, err := makeInputSources(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(opts.output)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if writer == nil {
		writer = stdout
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	parseOpts := []pamflet.Option{
		pamflet.WithSeparator(sep),
		pamflet.WithLogger(logger),
	}
	if opts.sequentialIDs {
		parseOpts = append(parseOpts, pamflet.WithIDGenerator(pamflet.NewSequenceIDs()))
	}

	out := outputter{
		w:      writer,
		format: opts.format,
		multi:  len(sources) > 1,
		print: pamflet.PrintConfig{
			Width: resolveWidth(opts.width),
			Theme: theme,
			OSC8:  osc8,
		},
	}
	for _, src := range sources {
		logger.Debug("reading pamflet", zap.String("source", src.name))
		if err := out.emit(src, parseOpts); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", src.name, err)
			return 1
		}
	}
	if err := out.finish(); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}

type deck struct {
	Source   string            `json:"source"`
	Elements []pamflet.Element `json:"elements"`
}

type outputter struct {
	w      io.Writer
	format string
	multi  bool
	print  pamflet.PrintConfig
	decks  []deck
	count  int
}

func (o *outputter) emit(src inputSource, parseOpts []pamflet.Option) error {
	data, err := readSource(src)
	if err != nil {
		return err
	}
	defer func() { o.count++ }()

	if o.format == "tokens" {
		if err := pamflet.ValidateInput(data); err != nil {
			return err
		}
		o.banner(src.name)
		for _, tok := range pamflet.Tokenize(string(data), parseOpts...) {
			if _, err := fmt.Fprintln(o.w, tok.String()); err != nil {
				return err
			}
		}
		return nil
	}

	elements, err := pamflet.ParseReader(bytes.NewReader(data), parseOpts...)
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	if elements == nil {
		elements = []pamflet.Element{}
	}
	if o.format == "json" {
		o.decks = append(o.decks, deck{Source: src.name, Elements: elements})
		return nil
	}
	o.banner(src.name)
	return pamflet.Fprint(o.w, elements, o.print)
}

func (o *outputter) banner(name string) {
	if !o.multi {
		return
	}
	if o.count > 0 {
		fmt.Fprintln(o.w)
	}
	fmt.Fprintf(o.w, "== %s\n", name)
}

func (o *outputter) finish() error {
	if o.format != "json" {
		return nil
	}
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	if !o.multi && len(o.decks) == 1 {
		return enc.Encode(o.decks[0].Elements)
	}
	return enc.Encode(o.decks)
}

func printThemes(w io.Writer) {
	for _, name := range pamflet.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return pamflet.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

type inputSource struct {
	name string
	open func() (io.ReadCloser, error)
}

func readSource(src inputSource) ([]byte, error) {
	rc, err := src.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return data, nil
}

func makeInputSources(args []string, stdin io.Reader) ([]inputSource, error) {
	stdinSource := inputSource{name: "-", open: func() (io.ReadCloser, error) {
		return io.NopCloser(stdin), nil
	}}
	if len(args) == 0 {
		return []inputSource{stdinSource}, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		if strings.TrimSpace(raw) == "-" {
			sources = append(sources, stdinSource)
			continue
		}
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, errors.New("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func() (io.ReadCloser, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: raw, open: func() (io.ReadCloser, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.ReadCloser, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(normalizePath(path))
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
