package agent

import (
	"os"
	"strings"
	"testing"
)

func TestBuildSystemPrompt_NamesAgentAndTools(t *testing.T) {
	prompt := BuildSystemPrompt()

	if !strings.Contains(prompt, "Alduin") {
		t.Error("prompt must establish the agent identity")
	}
	for _, tool := range []string{"read_file", "list_files", "edit_file"} {
		if !strings.Contains(prompt, tool) {
			t.Errorf("prompt must mention %s", tool)
		}
	}
}

func TestBuildSystemPrompt_IncludesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Skipf("no working directory: %v", err)
	}

	if !strings.Contains(BuildSystemPrompt(), wd) {
		t.Error("prompt must state the working directory")
	}
}
