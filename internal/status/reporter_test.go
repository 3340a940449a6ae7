package status

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

var (
	_ Reporter = (*Console)(nil)
	_ Reporter = Nop{}
)

func emitAll(r Reporter) {
	r.Connecting("https://acct1.documents.azure.com:443/")
	r.Connected()
	r.DatabaseResolved("db1")
	r.ContainerResolved("cont1")
	r.QueryStarted()
	r.QuerySucceeded(2, 1500*time.Millisecond)
	r.RenderStarted("out.json", 2)
	r.RenderSucceeded(42)
	r.QueryFailed(errors.New("boom"))
	r.RenderFailed(errors.New("boom"))
}

func TestConsoleReporter(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	emitAll(NewConsole(&buf, false))

	out := buf.String()
	for _, want := range []string{
		"Connecting to https://acct1.documents.azure.com:443/",
		"Database: db1",
		"Container: cont1",
		"Query completed in 1.50 seconds, retrieved 2 items",
		"Writing 2 items to out.json",
		"Wrote 42 bytes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}

	// Failure text belongs to the CLI boundary, not the reporter.
	if strings.Contains(out, "boom") {
		t.Errorf("reporter must not print error text, got:\n%s", out)
	}
}

func TestConsoleReporterQuiet(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	emitAll(NewConsole(&buf, true))

	if buf.Len() != 0 {
		t.Errorf("quiet reporter should print nothing, got:\n%s", buf.String())
	}
}

func TestConsoleReporterStdoutTarget(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	NewConsole(&buf, false).RenderStarted("", 3)

	if buf.Len() != 0 {
		t.Errorf("no render-started line expected for stdout target, got:\n%s", buf.String())
	}
}
