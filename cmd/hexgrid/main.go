// hexgrid is a CLI utility for generating and querying hex grids over terrain.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/hexdrape/internal/config"
	"github.com/Faultbox/hexdrape/internal/export"
	"github.com/Faultbox/hexdrape/internal/logger"
	"github.com/Faultbox/hexdrape/internal/world"
	"github.com/Faultbox/hexdrape/pkg/hexgrid"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "pick":
		cmdPick(args)
	case "path":
		cmdPath(args)
	case "init-config":
		cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hexgrid - hex grid generator for height surfaces

Usage:
  hexgrid <command> [options]

Commands:
  generate [-o file.obj] [-v]        Generate the grid and print statistics
  pick <x> <z>                       Show the cell over a ground position
  path <x1> <z1> <x2> <z2>           Find a route between two ground positions
  init-config [path]                 Write the default config file

Common options:
  -config <file>     Config file (default: hexdrape.yaml)
  -seed <n>          Terrain noise seed
  -radius <r>        Hex cell radius
  -source <name>     Terrain source: noise, image or flat
  -heightmap <file>  Heightmap image (PNG, BMP or TGA)
  -debug             Enable debug logging

Examples:
  hexgrid generate -seed 42 -o grid.obj
  hexgrid pick -heightmap island.png 3.5 -2
  hexgrid path 0 0 10 4`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync()
	os.Exit(1)
}

// setup parses the common flags, initializes logging and builds the world.
func setup(fs *flag.FlagSet, args []string) (*config.Config, *world.World) {
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}

	w, err := world.Build(cfg, logger.Named("world"))
	if err != nil {
		fatal(err)
	}
	return cfg, w
}

func parseFloats(args []string, n int, usage string) []float32 {
	if len(args) < n {
		fmt.Fprintln(os.Stderr, "Usage: "+usage)
		os.Exit(1)
	}
	out := make([]float32, n)
	for i := range n {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			fatal(fmt.Errorf("invalid number %q", args[i]))
		}
		out[i] = float32(v)
	}
	return out
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	output := fs.String("o", "", "Write the grid as a Wavefront OBJ file")
	verbose := fs.Bool("v", false, "List every mesh buffer")
	cfg, w := setup(fs, args)
	defer logger.Sync()

	fmt.Println(w.Grid.Stats)

	if *verbose {
		p := message.NewPrinter(language.English)
		for i, buf := range w.Grid.Buffers {
			p.Printf("  buffer %d: %d vertices, %d lines\n", i, len(buf.Vertices), buf.Lines())
		}
	}

	if *output != "" {
		if err := export.SaveOBJ(*output, w.Grid, cfg.Grid.Ceiling(), w.Lift); err != nil {
			fatal(err)
		}
		logger.Info("grid exported", zap.String("path", *output))
		fmt.Printf("Wrote %s\n", *output)
	}
}

func cmdPick(args []string) {
	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	_, w := setup(fs, args)
	defer logger.Sync()

	pos := parseFloats(fs.Args(), 2, "hexgrid pick <x> <z>")
	c, ok := w.CellAtGround(pos[0], pos[1])
	if !ok {
		fmt.Printf("No cell at (%.3f, %.3f)\n", pos[0], pos[1])
		os.Exit(1)
	}
	printCell(c)
}

func printCell(c *hexgrid.Cell) {
	fmt.Printf("Cell:      (%d, %d)\n", c.Coord.X, c.Coord.Z)
	fmt.Printf("Center:    (%.3f, %.3f)\n", c.Center.X, c.Center.Z)
	fmt.Printf("Elevation: %.3f\n", c.Elevation())
	fmt.Printf("Buffer:    %d\n", c.MeshIndex)
}

func cmdPath(args []string) {
	fs := flag.NewFlagSet("path", flag.ExitOnError)
	cfg, w := setup(fs, args)
	defer logger.Sync()

	pos := parseFloats(fs.Args(), 4, "hexgrid path <x1> <z1> <x2> <z2>")
	from, ok := w.CellAtGround(pos[0], pos[1])
	if !ok {
		fatal(fmt.Errorf("no cell at start (%.3f, %.3f)", pos[0], pos[1]))
	}
	to, ok := w.CellAtGround(pos[2], pos[3])
	if !ok {
		fatal(fmt.Errorf("no cell at goal (%.3f, %.3f)", pos[2], pos[3]))
	}

	pf := hexgrid.NewPathFinder(w.Grid)
	pf.ClimbCost = cfg.Viewer.ClimbCost
	route := pf.FindPath(from.Coord, to.Coord)
	if route == nil {
		fmt.Println("No path")
		os.Exit(1)
	}

	fmt.Printf("Path: %d cells\n", len(route))
	for _, c := range route {
		fmt.Printf("  (%d, %d)  elevation %.3f\n", c.Coord.X, c.Coord.Z, c.Elevation())
	}
}

func cmdInitConfig(args []string) {
	path := config.FileName
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		fatal(fmt.Errorf("%s already exists", path))
	}
	if err := config.Default().SaveTo(path); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
