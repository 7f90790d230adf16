// SPDX-License-Identifier: MIT
// Command sigil renders deterministic keyboard-path signatures.
// It provides commands for rendering SVG signatures, emitting canonical
// codec records, comparing two signatures, and listing keyboard layouts.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/sigil"
	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/codec"
	"github.com/katalvlaran/sigil/layout"
	"github.com/katalvlaran/sigil/render"
	"github.com/katalvlaran/sigil/verify"
)

const version = "1.0.0"

// cli defines the command-line interface for sigil.
var cli struct {
	// Global flags
	Layout     string `help:"Keyboard layout ID" default:"qwerty"`
	LayoutFile string `name:"layout-file" help:"Extra layout definitions (YAML)" type:"existingfile"`
	Curve      string `help:"Curve mode: straight, quadratic, catmullrom" default:"catmullrom"`
	Dash       string `help:"Dash mode: alphabet, legacy" default:"alphabet"`

	Render  RenderCmd  `cmd:"" help:"Render a signature to an SVG file"`
	Codec   CodecCmd   `cmd:"" help:"Print the canonical codec record for a name"`
	Verify  VerifyCmd  `cmd:"" help:"Compare two signatures and report their similarity"`
	Layouts LayoutsCmd `cmd:"" help:"List registered keyboard layouts"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// table builds the layout table, merging --layout-file definitions when given.
func table() (*layout.Table, error) {
	tbl := layout.New()
	if cli.LayoutFile == "" {
		return tbl, nil
	}

	data, err := os.ReadFile(cli.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	if _, err := tbl.LoadYAML(data); err != nil {
		return nil, fmt.Errorf("load layout file: %w", err)
	}

	return tbl, nil
}

// modes resolves the global --curve and --dash flags.
func modes() (builder.CurveMode, builder.DashMode, error) {
	curve, ok := builder.ParseCurveMode(cli.Curve)
	if !ok {
		return 0, 0, fmt.Errorf("unknown curve mode: %q", cli.Curve)
	}
	dash, ok := builder.ParseDashMode(cli.Dash)
	if !ok {
		return 0, 0, fmt.Errorf("unknown dash mode: %q", cli.Dash)
	}

	return curve, dash, nil
}

// RenderCmd renders a signature to an SVG file, with the codec record
// written alongside it.
type RenderCmd struct {
	Name    string `arg:"" help:"Text to sign"`
	Out     string `help:"Output SVG path (defaults to <name>.svg)" type:"path"`
	NoCodec bool   `name:"no-codec" help:"Skip writing the <name>.codec.yaml artifact"`
}

func (c *RenderCmd) Run() error {
	tbl, err := table()
	if err != nil {
		return err
	}
	curve, dash, err := modes()
	if err != nil {
		return err
	}
	id := layout.LayoutID(cli.Layout)

	segments, record, err := sigil.Signature(tbl, c.Name, id, curve, dash)
	if err != nil {
		return fmt.Errorf("build signature: %w", err)
	}

	doc, err := render.SVG(tbl, id, segments, record)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	stem := artifactName(c.Name)
	out := c.Out
	if out == "" {
		out = stem + ".svg"
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("Rendered: %s\n", out)
	fmt.Printf("  Layout: %s\n", record.Layout)
	fmt.Printf("  Segments: %d\n", len(segments))
	fmt.Printf("  Hash: %s\n", record.ProvenanceHash)

	if c.NoCodec {
		return nil
	}
	data, err := codec.MarshalText(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	codecOut := stem + ".codec.yaml"
	if err := os.WriteFile(codecOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", codecOut, err)
	}
	fmt.Printf("  Codec: %s\n", codecOut)

	return nil
}

// CodecCmd prints the canonical codec record for a name.
type CodecCmd struct {
	Name   string `arg:"" help:"Text to sign"`
	Format string `help:"Output format: yaml, xml" enum:"yaml,xml" default:"yaml"`
	Out    string `help:"Output path (defaults to stdout)" type:"path"`
}

func (c *CodecCmd) Run() error {
	tbl, err := table()
	if err != nil {
		return err
	}
	curve, dash, err := modes()
	if err != nil {
		return err
	}

	_, record, err := sigil.Signature(tbl, c.Name, layout.LayoutID(cli.Layout), curve, dash)
	if err != nil {
		return fmt.Errorf("build signature: %w", err)
	}

	var data []byte
	switch c.Format {
	case "xml":
		data = []byte(codec.MarshalEmbedded(record) + "\n")
	default:
		data, err = codec.MarshalText(record)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}

	if c.Out == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	fmt.Printf("Written: %s\n", c.Out)

	return nil
}

// VerifyCmd compares two signatures and reports their similarity. Each
// argument is either a text to sign or the path of a saved codec YAML.
type VerifyCmd struct {
	A      string  `arg:"" help:"First text or codec YAML path"`
	B      string  `arg:"" help:"Second text or codec YAML path"`
	Window int     `help:"Alignment window (0 = unbounded)"`
	Slope  float64 `help:"Penalty for non-diagonal alignment steps" default:"0"`
}

// loadOrBuild interprets arg as a codec YAML path when such a file
// exists, and as a text to sign otherwise.
func loadOrBuild(tbl *layout.Table, arg string, curve builder.CurveMode, dash builder.DashMode) (codec.Record, error) {
	if data, err := os.ReadFile(arg); err == nil {
		rec, uErr := codec.UnmarshalText(data)
		if uErr != nil {
			return codec.Record{}, fmt.Errorf("parse %s: %w", arg, uErr)
		}
		return rec, nil
	}

	_, rec, err := sigil.Signature(tbl, arg, layout.LayoutID(cli.Layout), curve, dash)
	if err != nil {
		return codec.Record{}, fmt.Errorf("build %q: %w", arg, err)
	}

	return rec, nil
}

func (c *VerifyCmd) Run() error {
	tbl, err := table()
	if err != nil {
		return err
	}
	curve, dash, err := modes()
	if err != nil {
		return err
	}

	recA, err := loadOrBuild(tbl, c.A, curve, dash)
	if err != nil {
		return err
	}
	recB, err := loadOrBuild(tbl, c.B, curve, dash)
	if err != nil {
		return err
	}

	opts := verify.DefaultOptions()
	opts.Window = c.Window
	opts.SlopePenalty = c.Slope

	distance, _, err := verify.Similarity(recA, recB, opts)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	fmt.Printf("Comparing signatures\n")
	fmt.Printf("  A: %q (%d segments, hash %s)\n", c.A, len(recA.Segments), recA.ProvenanceHash)
	fmt.Printf("  B: %q (%d segments, hash %s)\n", c.B, len(recB.Segments), recB.ProvenanceHash)
	fmt.Printf("  Structural match: %v\n", codec.Match(recA, recB))
	fmt.Printf("  Alignment distance: %.4f\n", distance)

	return nil
}

// LayoutsCmd lists registered keyboard layouts.
type LayoutsCmd struct{}

func (c *LayoutsCmd) Run() error {
	tbl, err := table()
	if err != nil {
		return err
	}

	fmt.Println("Registered layouts:")
	for _, id := range tbl.Layouts() {
		minX, minY, maxX, maxY, _ := tbl.Bounds(id)
		fmt.Printf("  %-10s bounds (%.0f,%.0f)-(%.0f,%.0f)\n", id, minX, minY, maxX, maxY)
	}

	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("sigil %s (codec %s)\n", version, codec.Version)

	return nil
}

// artifactName derives a filesystem-safe file stem from the signed text.
func artifactName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
	if mapped == "" {
		mapped = "signature"
	}

	return filepath.Clean(mapped)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("sigil"),
		kong.Description("Deterministic keyboard-path signature renderer."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
