/*
Command mapstyle resolves map-paint styles for features declared in a
fixture file and prints the resulting cascades.

    mapstyle resolve --fixture testdata/sample.yaml --scale 500

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/mapstyle/feature"
	"github.com/npillmayer/mapstyle/resolve"
	"github.com/npillmayer/mapstyle/rules"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'mapstyle.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.cmd")
}

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mapstyle",
		Short: "Resolve map-paint styles of tagged map features",
		Long: `mapstyle matches tagged map features against style rules and prints
the resulting cascades: the default cascade of a feature, overlays drawn
over or under it, and the range of display scales the result is valid for.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(resolveCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options for a run of command 'resolve'
type resolveOptions struct {
	fixture    string
	scale      float64
	useRanges  bool
	maxOverlay int
}

func resolveCmd() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the styles of all features of a fixture",
		Long: `Resolve the styles of all features declared in a YAML fixture file.

Style sources of the fixture are layered in declaration order. Each
feature is resolved against all of them, at the given display scale.

Examples:
  mapstyle resolve --fixture sample.yaml --scale 500
  mapstyle resolve --fixture sample.yaml --use-ranges=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.fixture == "" {
				return fmt.Errorf("--fixture flag is required")
			}
			fix, err := LoadFixture(opts.fixture)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), fix, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.fixture, "fixture", "f", "", "YAML file with style sources and features")
	cmd.Flags().Float64VarP(&opts.scale, "scale", "s", 1000, "display scale to resolve for")
	cmd.Flags().BoolVar(&opts.useRanges, "use-ranges", true, "respect the scale ranges of rules")
	cmd.Flags().IntVar(&opts.maxOverlay, "max-overlay", resolve.DefaultMaxOverlayIndex, "highest overlay number to probe")
	return cmd
}

func run(w io.Writer, fix *Fixture, opts resolveOptions) error {
	sources, err := fix.BuildSources()
	if err != nil {
		return err
	}
	var catalog rules.Catalog
	catalog.Publish(sources...)
	features := make(map[int64]*feature.Primitive, len(fix.Features))
	for _, fd := range fix.Features {
		p, err := fd.Primitive()
		if err != nil {
			return err
		}
		features[fd.ID] = p
	}
	r := resolve.New(resolve.UseScaleRanges(opts.useRanges), resolve.MaxOverlayIndex(opts.maxOverlay))
	for _, fd := range fix.Features {
		req := resolve.Request{
			Feature:       features[fd.ID],
			Scale:         opts.scale,
			PretendClosed: fd.Member,
		}
		if fd.Outer != 0 {
			outer, ok := features[fd.Outer]
			if !ok {
				return fmt.Errorf("feature %d: unknown outer way %d", fd.ID, fd.Outer)
			}
			req.OuterWay = outer
		}
		mc, err := r.Resolve(catalog.Sources(), req)
		if err != nil {
			tracer().Errorf("cannot resolve %v: %v", req.Feature, err)
			return err
		}
		fmt.Fprint(w, mc.Dump(features[fd.ID].String()))
	}
	return nil
}
