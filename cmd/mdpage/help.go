package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpage <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Serve markdown pages over HTTP")
	fmt.Fprintln(w, "  render     Render one page to HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdpage help <command>' for details on a specific command.")
}

// printContentUsage prints the flags shared by serve and render.
func printContentUsage(w io.Writer) {
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -d, --documents <dir>     Documents directory (default ./documents)")
	fmt.Fprintln(w, "      --components <dir>    Components directory (default ./app/components)")
	fmt.Fprintln(w, "      --scripts <dir>       Page scripts directory (default ./app/components/client)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom templates/ and styles/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --strict              Fail on unresolved partials")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code blocks")
	fmt.Fprintln(w, "      --gfm                 Tables, strikethrough and autolinks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only log errors")
	fmt.Fprintln(w, "  -v, --verbose             Log debug details")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpage serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve markdown pages over HTTP until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default :8080)")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	printContentUsage(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpage render <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the document at <documents>/<path>.md to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Write HTML to file instead of stdout")
	fmt.Fprintln(w, "      --layout              Wrap the page in the full HTML document")
	fmt.Fprintln(w, "      --resources           Resolve <path> under resources/")
	fmt.Fprintln(w)
	printContentUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "serve":
		printServeUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdpage version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdpage help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
