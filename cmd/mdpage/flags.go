package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdpage/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// contentFlags override the content and rendering sections of the config.
type contentFlags struct {
	documents  string
	components string
	scripts    string
	assetPath  string
	strict     bool
	highlight  bool
	gfm        bool
}

// logFlags override the log section of the config.
type logFlags struct {
	level  string
	format string
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common  commonFlags
	content contentFlags
	log     logFlags
	addr    string

	fs *flag.FlagSet // for Changed lookups during merge
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	content   contentFlags
	output    string
	layout    bool
	resources bool

	fs *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details")
}

// addContentFlags adds content location and rendering flags to a FlagSet.
func addContentFlags(fs *flag.FlagSet, f *contentFlags) {
	fs.StringVarP(&f.documents, "documents", "d", "", "documents directory")
	fs.StringVar(&f.components, "components", "", "components directory")
	fs.StringVar(&f.scripts, "scripts", "", "page scripts directory")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template and style directory")
	fs.BoolVar(&f.strict, "strict", false, "fail on unresolved partials")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code blocks")
	fs.BoolVar(&f.gfm, "gfm", false, "enable tables, strikethrough and autolinks")
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string, usage io.Writer) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &serveFlags{fs: fs}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :8080)")
	fs.StringVar(&f.log.level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.log.format, "log-format", "", "log format: text, json")
	addCommonFlags(fs, &f.common)
	addContentFlags(fs, &f.content)

	fs.Usage = func() { printServeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, parseError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, fs.Arg(0))
	}
	return f, nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &renderFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", "", "write HTML to file instead of stdout")
	fs.BoolVar(&f.layout, "layout", false, "wrap the page in the full HTML document")
	fs.BoolVar(&f.resources, "resources", false, "resolve the path under resources/")
	addCommonFlags(fs, &f.common)
	addContentFlags(fs, &f.content)

	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseError keeps flag.ErrHelp intact and marks everything else as a
// usage error.
func parseError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}

// mergeContentFlags applies explicitly set content flags over cfg.
func mergeContentFlags(fs *flag.FlagSet, f *contentFlags, cfg *config.Config) {
	if f.documents != "" {
		cfg.Content.DocumentsDir = f.documents
	}
	if f.components != "" {
		cfg.Content.ComponentsDir = f.components
	}
	if f.scripts != "" {
		cfg.Content.ScriptsDir = f.scripts
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if fs.Changed("strict") {
		cfg.Partials.Strict = f.strict
	}
	if fs.Changed("highlight") {
		cfg.Markdown.Highlight = f.highlight
	}
	if fs.Changed("gfm") {
		cfg.Markdown.GFM = f.gfm
	}
}

// mergeLogFlags applies log flags over cfg. --verbose and --quiet win over
// --log-level.
func mergeLogFlags(common commonFlags, f logFlags, cfg *config.Config) {
	if f.level != "" {
		cfg.Log.Level = f.level
	}
	if f.format != "" {
		cfg.Log.Format = f.format
	}
	switch {
	case common.verbose:
		cfg.Log.Level = "debug"
	case common.quiet:
		cfg.Log.Level = "error"
	}
}
