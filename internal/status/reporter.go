// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status decouples the query pipeline from its human-facing progress
// output. The pipeline emits lifecycle events through the Reporter interface;
// the console implementation renders them to stderr, and tests inject Nop to
// run the pipeline silently.
package status

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Reporter receives lifecycle events from the query pipeline. Implementations
// must not affect correctness: every event is fire-and-forget and the pipeline
// never blocks on the reporter.
type Reporter interface {
	Connecting(endpoint string)
	Connected()
	DatabaseResolved(id string)
	ContainerResolved(id string)
	QueryStarted()
	QuerySucceeded(count int, elapsed time.Duration)
	QueryFailed(err error)
	RenderStarted(target string, count int)
	RenderSucceeded(size int64)
	RenderFailed(err error)
}

// Console renders status events as colored text. Colors are disabled
// automatically when the writer is not a terminal (fatih/color behavior).
// In quiet mode nothing is printed; error text is owned by the CLI boundary
// either way, so the Failed events emit nothing here.
type Console struct {
	w     io.Writer
	quiet bool

	info    *color.Color
	success *color.Color
}

// NewConsole creates a console reporter writing to w, typically stderr.
func NewConsole(w io.Writer, quiet bool) *Console {
	return &Console{
		w:       w,
		quiet:   quiet,
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
	}
}

func (c *Console) Connecting(endpoint string) {
	c.infof("Connecting to %s ...", endpoint)
}

func (c *Console) Connected() {
	c.infof("Connected")
}

func (c *Console) DatabaseResolved(id string) {
	c.infof("Database: %s", id)
}

func (c *Console) ContainerResolved(id string) {
	c.infof("Container: %s", id)
}

func (c *Console) QueryStarted() {
	c.infof("Running query ...")
}

func (c *Console) QuerySucceeded(count int, elapsed time.Duration) {
	if c.quiet {
		return
	}
	_, _ = c.success.Fprintf(c.w, "Query completed in %.2f seconds, retrieved %d items\n", elapsed.Seconds(), count)
}

func (c *Console) QueryFailed(err error) {}

func (c *Console) RenderStarted(target string, count int) {
	if target == "" {
		return
	}
	c.infof("Writing %d items to %s ...", count, target)
}

func (c *Console) RenderSucceeded(size int64) {
	if c.quiet {
		return
	}
	_, _ = c.success.Fprintf(c.w, "Wrote %d bytes\n", size)
}

func (c *Console) RenderFailed(err error) {}

func (c *Console) infof(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	_, _ = c.info.Fprintf(c.w, format, args...)
	fmt.Fprintln(c.w)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Connecting(string) {}

func (Nop) Connected() {}

func (Nop) DatabaseResolved(string) {}

func (Nop) ContainerResolved(string) {}

func (Nop) QueryStarted() {}

func (Nop) QuerySucceeded(int, time.Duration) {}

func (Nop) QueryFailed(error) {}

func (Nop) RenderStarted(string, int) {}

func (Nop) RenderSucceeded(int64) {}

func (Nop) RenderFailed(error) {}
