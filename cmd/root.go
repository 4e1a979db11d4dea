/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

package cmd

/****************************************************************************************************************/

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stellarforge/planetcast/internal/imageio"
	"github.com/stellarforge/planetcast/internal/render"
	"github.com/stellarforge/planetcast/pkg/renderopts"
	"github.com/stellarforge/planetcast/pkg/sink"
	"github.com/stellarforge/planetcast/pkg/source"
)

/****************************************************************************************************************/

// version is stamped at build time; see the -X ldflags in the Makefile a
// packaged release would add.
var version = "dev"

/****************************************************************************************************************/

var (
	outputArgs []string
	inputArgs  []string
	generate   string
	size       int
	fast       bool
	jitter     bool
	sixteenBit bool
	flip       bool
	rotate     []float64
	quiet      bool
	historyDB  string
)

/****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:     "planetcast",
	Short:   "planetcast reprojects a spherical planet map texture between projections.",
	Long:    "planetcast reprojects a spherical planet map texture between lat/long, Mercator, Gall-Peters, and cube-map projections, with optional pre-rotation and cosine-weighted blur.",
	Version: version,
	RunE:    runRoot,
}

/****************************************************************************************************************/

func init() {
	rootCommand.Flags().StringSliceVarP(&outputArgs, "output", "o", nil, "output projection type and path, e.g. --output cube,out.png (required)")
	rootCommand.Flags().StringSliceVarP(&inputArgs, "input", "i", nil, "input projection type and path, e.g. --input latlong,in.png")
	rootCommand.Flags().StringVarP(&generate, "generate", "g", "", "procedural source name (grid1)")
	rootCommand.Flags().IntVarP(&size, "size", "S", 0, "output base size in pixels (defaults vary by output type)")
	rootCommand.Flags().BoolVarP(&fast, "fast", "F", false, "use the coarse 3x3 sample grid instead of 11x11")
	rootCommand.Flags().BoolVarP(&jitter, "jitter", "J", false, "randomize sample positions within each grid cell")
	rootCommand.Flags().BoolVar(&sixteenBit, "sixteen-bit", false, "emit a 16-bit-per-channel PNG instead of 8-bit")
	rootCommand.Flags().BoolVarP(&flip, "flip", "L", false, "mirror the source through the YZ plane before rendering")
	rootCommand.Flags().Float64SliceVarP(&rotate, "rotate", "R", nil, "rotate the source rx,ry,rz degrees, applied X then Z then Y")
	rootCommand.Flags().BoolVarP(&quiet, "quiet", "Q", false, "suppress progress output")
	rootCommand.Flags().StringVar(&historyDB, "history", "", "append a record of this render to a SQLite history database at the given path")

	// Overriding cobra's auto-registered help/version flags with our own
	// picks up the shorthand spec.md wants (-H, -V) while keeping cobra's
	// own handling of them (it looks these flags up by name, not by who
	// registered them).
	rootCommand.Flags().BoolP("help", "H", false, "print usage and projection descriptions")
	rootCommand.Flags().BoolP("version", "V", false, "print version")
}

/****************************************************************************************************************/

// Execute runs the root command, exiting the process with a non-zero
// status on any argument, input, or render error, matching spec.md's exit
// code contract.
func Execute() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "planetcast:", err)
		os.Exit(1)
	}
}

/****************************************************************************************************************/

func runRoot(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		fmt.Println(version)
		return nil
	}

	opts, err := parseOptions()
	if err != nil {
		return err
	}

	job := render.New(opts)

	progress := func(n, d int) bool {
		if !quiet {
			fmt.Fprintf(os.Stderr, "\rjob %s: %d/%d", job.ID, n, d)
			if n == d {
				fmt.Fprintln(os.Stderr)
			}
		}
		return true
	}

	if err := job.Run(context.Background(), progress); err != nil {
		return err
	}
	return nil
}

/****************************************************************************************************************/

// parseOptions translates the parsed flags into render.Options, performing
// every argument-error check spec.md §7 assigns to the CLI layer: unknown
// type keywords, missing parameters, and non-numeric/missing sizes are all
// caught here, before any render.Job is constructed.
func parseOptions() (render.Options, error) {
	if len(outputArgs) != 2 {
		return render.Options{}, fmt.Errorf("--output requires a type and a path, e.g. --output cube,out.png")
	}
	sinkKind, defaultSize, err := parseSinkKind(outputArgs[0])
	if err != nil {
		return render.Options{}, err
	}
	outputPath := outputArgs[1]

	var sourceKind source.Kind
	var inputPath string
	switch {
	case generate != "" && len(inputArgs) > 0:
		return render.Options{}, fmt.Errorf("--generate and --input are mutually exclusive")
	case generate != "":
		if generate != "grid1" && generate != "g" {
			return render.Options{}, fmt.Errorf("unknown generator %q", generate)
		}
		sourceKind = source.KindGrid
	case len(inputArgs) == 2:
		sourceKind, err = parseSourceKind(inputArgs[0])
		if err != nil {
			return render.Options{}, err
		}
		inputPath = inputArgs[1]
	default:
		return render.Options{}, fmt.Errorf("either --input type,path or --generate name is required")
	}

	if size == 0 {
		size = defaultSize
	}
	if size <= 0 {
		return render.Options{}, fmt.Errorf("--size must be a positive integer")
	}

	var rx, ry, rz float64
	if len(rotate) > 0 {
		if len(rotate) != 3 {
			return render.Options{}, fmt.Errorf("--rotate requires exactly three values: rx,ry,rz")
		}
		rx, ry, rz = rotate[0], rotate[1], rotate[2]
	}

	bitDepth := imageio.BitDepth8
	if sixteenBit {
		bitDepth = imageio.BitDepth16
	}

	return render.Options{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		SourceKind:  sourceKind,
		SinkKind:    sinkKind,
		Size:        size,
		Options:     renderopts.Options{Fast: fast, Jitter: jitter},
		RotateXDeg:  rx,
		RotateYDeg:  ry,
		RotateZDeg:  rz,
		Flip:        flip,
		BitDepth:    bitDepth,
		HistoryPath: historyDB,
	}, nil
}

/****************************************************************************************************************/

func parseSourceKind(keyword string) (source.Kind, error) {
	switch keyword {
	case "latlong", "l":
		return source.KindLatLong, nil
	case "cube", "c":
		return source.KindCubeVertical, nil
	case "cubex", "x":
		return source.KindCubeCross, nil
	default:
		return "", fmt.Errorf("unknown input type %q", keyword)
	}
}

/****************************************************************************************************************/

// parseSinkKind returns the sink kind and spec.md's default base size for
// it (used when --size is omitted).
func parseSinkKind(keyword string) (sink.Kind, int, error) {
	switch keyword {
	case "latlong", "l":
		return sink.KindLatLong, 2048, nil
	case "cube", "c":
		return sink.KindCubeVertical, 1024, nil
	case "cubex", "x":
		return sink.KindCubeCross, 1024, nil
	case "mercator", "m":
		return sink.KindMercator, 2048, nil
	case "gall-peters", "g":
		return sink.KindGallPeters, 2048, nil
	default:
		return "", 0, fmt.Errorf("unknown output type %q", keyword)
	}
}

/****************************************************************************************************************/
