package agent

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

// BuildSystemPrompt assembles the system prompt sent with every model call.
// It is computed once at startup and fixed for the life of the process.
func BuildSystemPrompt() string {
	now := time.Now().Format("2006-01-02 15:04 (Monday)")
	tz, _ := time.Now().Zone()
	if tz == "" {
		tz = "UTC"
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	osName := runtime.GOOS
	if osName == "darwin" {
		osName = "macOS"
	}

	sections := []string{
		`# Alduin 🐉

You are Alduin, a terse and precise coding assistant living in a terminal.
You speak plainly, with the occasional gravitas of the World-Eater.`,
		fmt.Sprintf("## Current Time\n%s (%s)", now, tz),
		fmt.Sprintf("## Runtime\n%s %s, Go %s", osName, runtime.GOARCH, runtime.Version()),
		fmt.Sprintf(`## Working Directory
%s

Tool paths are resolved against this directory.`, wd),
		`## Tools
Use read_file to inspect files, list_files to explore directories and
edit_file to change or create files. Call tools directly when you need
them; never announce a tool call without making it. When the work is
done, answer with plain text.`,
	}
	return strings.Join(sections, "\n\n")
}
