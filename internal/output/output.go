// Package output renders recorded runs for the command line.
//
// JSON emits one object per line, YAML one document per snapshot, and text
// one human-readable line per snapshot with optional color.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects the rendering.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, Text}

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("output: unknown format")

// ParseFormat resolves a format name; the empty string means JSON.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return JSON, nil
	case JSON, YAML, Text:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q (want json, yaml or text)", ErrUnknownFormat, s)
}

// Step is one emitted snapshot of a recorded run.
type Step struct {
	Run       string `json:"run" yaml:"run"`
	Family    string `json:"family" yaml:"family"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Index     int    `json:"step" yaml:"step"`
	Total     int    `json:"total" yaml:"total"`
	Summary   string `json:"summary" yaml:"summary"`
	Snapshot  any    `json:"snapshot" yaml:"snapshot"`
}

// Final reports whether s is the terminal snapshot of its run.
func (s Step) Final() bool { return s.Index == s.Total }

// Writer renders values in one format. Close must be called to flush YAML.
type Writer struct {
	w      io.Writer
	format Format
	json   *json.Encoder
	yaml   *yaml.Encoder

	step, algo, done, dim *color.Color
}

// New returns a writer for w. Colors apply to the text format only.
func New(w io.Writer, f Format, colorize bool) *Writer {
	out := &Writer{
		w:      w,
		format: f,
		step:   color.New(color.FgCyan),
		algo:   color.New(color.FgMagenta, color.Bold),
		done:   color.New(color.FgGreen, color.Bold),
		dim:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{out.step, out.algo, out.done, out.dim} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	switch f {
	case YAML:
		out.yaml = yaml.NewEncoder(w)
		out.yaml.SetIndent(2)
	case Text:
	default:
		out.format = JSON
		out.json = json.NewEncoder(w)
		out.json.SetEscapeHTML(false)
	}

	return out
}

// Format reports the writer's format.
func (w *Writer) Format() Format { return w.format }

// Write renders one snapshot of a run.
func (w *Writer) Write(s Step) error {
	summary := s.Summary
	if s.Final() {
		summary = w.done.Sprint(summary)
	}
	line := fmt.Sprintf("%s %s %s",
		w.step.Sprintf("[%*d/%d]", digits(s.Total), s.Index, s.Total),
		w.algo.Sprint(s.Algorithm),
		summary)

	return w.Item(s, line)
}

// Item renders v, or line verbatim in the text format.
func (w *Writer) Item(v any, line string) error {
	switch w.format {
	case YAML:
		return w.yaml.Encode(v)
	case Text:
		_, err := fmt.Fprintln(w.w, line)
		return err
	default:
		return w.json.Encode(v)
	}
}

// Heading prints a dimmed line in the text format and nothing otherwise.
func (w *Writer) Heading(line string) error {
	if w.format != Text {
		return nil
	}
	_, err := fmt.Fprintln(w.w, w.dim.Sprint(line))

	return err
}

// Close flushes buffered output.
func (w *Writer) Close() error {
	if w.yaml != nil {
		return w.yaml.Close()
	}

	return nil
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}
