// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/alnah/go-mdpage/internal/fileutil"
)

// appName names the user config subdirectory suggested for config files.
const appName = "mdpage"

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists(afero.NewOsFs(), "/.dockerenv")
}

// ForListen returns hints for a server that failed to bind addr.
// Inside a container a loopback host cannot be published, so binding all
// interfaces is suggested.
func ForListen(addr string) string {
	hints := []string{"check that no other process uses " + addr + ", or pick another with --addr"}

	host, port, err := net.SplitHostPort(addr)
	if err == nil && IsInContainer() && isLoopback(host) {
		hints = append(hints, "inside a container, listen on :"+port+" so the port can be published")
	}
	return formatHints(hints)
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and the per-user config location.
func ForConfigNotFound(name string) string {
	hint := "use --config /path/to/file.yaml"
	if dir, err := os.UserConfigDir(); err == nil && name != "" && !fileutil.IsFilePath(name) {
		hint += " or create " + filepath.Join(dir, appName, name+".yaml")
	}
	return format(hint)
}

// ForDocumentNotFound returns hints for a path with no document behind it.
func ForDocumentNotFound(documentsDir, docPath string) string {
	if docPath == "" {
		return format("pass a document path relative to " + documentsDir)
	}
	return format("expected " + filepath.Join(documentsDir, filepath.FromSlash(docPath)) + ".md; set --documents or content.documentsDir")
}

// ForPageScript returns hints for a page script that could not be read.
func ForPageScript(scriptsDir string) string {
	return format("scripts are read from " + scriptsDir + "; set --scripts or drop the binding from scripts:")
}

// ForUnresolvedPartial returns hints for a placeholder with no component.
func ForUnresolvedPartial(componentsDir string, registered []string) string {
	hints := []string{"add <name>.html to " + componentsDir + " or run without --strict"}
	if len(registered) > 0 {
		hints = append(hints, "registered: "+strings.Join(registered, ", "))
	}
	return formatHints(hints)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for highlight style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
