package observability

import (
	"testing"

	"github.com/canterahq/cantera/internal/config"
)

func TestInitUptrace_DisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: false}, nil)
	if err != nil {
		t.Fatalf("init uptrace failed: %v", err)
	}
	if shutdown == nil {
		t.Fatalf("expected a shutdown func")
	}
	if err := shutdown(t.Context()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}

func TestInitUptrace_EmptyDSNStaysDisabled(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true, UptraceDSN: "   "}, nil)
	if err != nil {
		t.Fatalf("init uptrace failed: %v", err)
	}
	if err := shutdown(t.Context()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}
