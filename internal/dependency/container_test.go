package dependency

import (
	"testing"

	"github.com/alduin/alduin/internal/config"
)

func TestNew_WiresEverything(t *testing.T) {
	c, err := New(&config.Config{APIKey: "sk-ant-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Agent() == nil {
		t.Error("expected a wired agent")
	}
	if c.Console() == nil {
		t.Error("expected a wired console")
	}
}
