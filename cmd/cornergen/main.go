package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/vybium/cubecorners/corner"
	"github.com/vybium/cubecorners/cube"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "cornergen"
	app.Usage = "build and query the corner-cubie heuristic table"
	app.Version = VERSION
	app.Commands = []cli.Command{
		generateCommand,
		lookupCommand,
		verifyCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var generateCommand = cli.Command{
	Name:  "generate",
	Usage: "run the breadth-expanding search and write the table to disk",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "out, o", Value: "corners.dat", Usage: "path to write the table to"},
		cli.StringFlag{Name: "config, c", Value: "", Usage: "optional JSON config overriding flags"},
		cli.StringFlag{Name: "scramble, s", Value: "", Usage: "move sequence giving the reference state to measure distance from (default: solved)"},
		cli.BoolFlag{Name: "quiet, q", Usage: "suppress progress output"},
		cli.BoolFlag{Name: "checksum", Usage: "print a BLAKE2s checksum of the finished table"},
		cli.Int64Flag{Name: "progress", Value: 0, Usage: "stack-pop interval between progress reports (0: use the default)"},
	},
	Action: func(c *cli.Context) error {
		out := c.String("out")
		scramble := c.String("scramble")
		quiet := c.Bool("quiet")
		wantChecksum := c.Bool("checksum")
		progressInterval := c.Int64("progress")

		if path := c.String("config"); path != "" {
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			if cfg.Out != "" {
				out = cfg.Out
			}
			if cfg.Scramble != "" {
				scramble = cfg.Scramble
			}
			quiet = quiet || cfg.Quiet
			wantChecksum = wantChecksum || cfg.Checksum
			if cfg.Progress != 0 {
				progressInterval = cfg.Progress
			}
		}

		reference := cube.Solved()
		if scramble != "" {
			moves, err := cube.ParseMoves(scramble)
			if err != nil {
				return errors.Wrap(err, "parse scramble")
			}
			reference = cube.Scramble(moves)
			log.Println("reference scramble:", scramble)
		}

		log.Println("output:", out)
		log.Println("total entries:", corner.TotalEntries)
		log.Println("total bytes:", corner.TotalBytes)

		tbl := corner.Allocate()

		start := time.Now()
		var progress corner.ProgressFunc
		if !quiet {
			progress = func(depth int, pops, filled int64) {
				log.Printf("depth=%d pops=%d filled=%d/%d elapsed=%s", depth, pops, filled, corner.TotalEntries, time.Since(start).Round(time.Second))
			}
		}

		if err := corner.GenerateWithInterval(tbl, reference, progress, progressInterval); err != nil {
			color.Red("generation failed: %v", err)
			return err
		}
		color.Green("generation complete in %s", time.Since(start).Round(time.Second))

		f, err := os.Create(out)
		if err != nil {
			return errors.Wrapf(err, "create %q", out)
		}
		defer f.Close()

		if err := corner.Write(tbl, f); err != nil {
			return errors.Wrap(err, "write table")
		}

		if wantChecksum {
			sum, err := corner.Checksum(tbl)
			if err != nil {
				return errors.Wrap(err, "checksum")
			}
			log.Println("checksum:", sum)
		}
		return nil
	},
}

var lookupCommand = cli.Command{
	Name:      "lookup",
	Usage:     "print the heuristic distance of a position reached by a move sequence",
	ArgsUsage: "<moves>",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Value: "corners.dat", Usage: "path to read the table from"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.NewExitError("lookup requires a move sequence argument, e.g. \"R U R' U'\"", 1)
		}
		in := c.String("in")

		tbl := corner.Allocate()
		f, err := os.Open(in)
		if err != nil {
			return errors.Wrapf(err, "open %q", in)
		}
		defer f.Close()
		if err := corner.Read(tbl, f); err != nil {
			return errors.Wrap(err, "read table")
		}

		moves, err := cube.ParseMoves(c.Args().First())
		if err != nil {
			return errors.Wrap(err, "parse moves")
		}
		state := cube.Scramble(moves)

		d, err := corner.Lookup(tbl, state)
		if err != nil {
			return errors.Wrap(err, "lookup")
		}
		fmt.Println(d)
		return nil
	},
}

var verifyCommand = cli.Command{
	Name:  "verify",
	Usage: "check that a persisted table has the expected size and report its checksum",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "in, i", Value: "corners.dat", Usage: "path to read the table from"},
		cli.IntFlag{Name: "samples", Value: 1000, Usage: "number of random adjacent-state pairs to admissibility-check"},
	},
	Action: func(c *cli.Context) error {
		in := c.String("in")

		info, err := os.Stat(in)
		if err != nil {
			return errors.Wrapf(err, "stat %q", in)
		}
		if info.Size() != int64(corner.TotalBytes) {
			color.Red("size mismatch: %q is %d bytes, want %d", in, info.Size(), corner.TotalBytes)
			return cli.NewExitError("table has unexpected size", 1)
		}

		tbl := corner.Allocate()
		f, err := os.Open(in)
		if err != nil {
			return errors.Wrapf(err, "open %q", in)
		}
		defer f.Close()
		if err := corner.Read(tbl, f); err != nil {
			return errors.Wrap(err, "read table")
		}

		var zero int64
		for i := 0; i < corner.TotalEntries; i++ {
			if tbl.Get(i) == 0 {
				zero++
			}
		}
		if zero != 0 {
			color.Red("table is incomplete: %d of %d entries are still unset", zero, corner.TotalEntries)
			return cli.NewExitError("incomplete table", 1)
		}

		if err := checkAdmissibilitySample(tbl, c.Int("samples")); err != nil {
			color.Red("admissibility check failed: %v", err)
			return cli.NewExitError("admissibility violated", 1)
		}

		sum, err := corner.Checksum(tbl)
		if err != nil {
			return errors.Wrap(err, "checksum")
		}
		log.Println("size:", info.Size(), "bytes")
		log.Println("checksum:", sum)
		return nil
	},
}

// checkAdmissibilitySample draws n random states (each reached by a random
// walk of turns from solved) and, for every one of their 18 neighbors,
// checks that the table never disagrees with the admissible-heuristic
// property: |T[hash(s)] - T[hash(s')]| <= 1 for adjacent s, s'. There is no
// pack library for random sampling, so this uses math/rand directly.
func checkAdmissibilitySample(tbl *corner.Table, n int) error {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	base := cube.Solved()
	for i := 0; i < n; i++ {
		walk := rng.Intn(corner.MaxDepth + 1)
		state := base
		last := -1
		for w := 0; w < walk; w++ {
			turnID := rng.Intn(cube.TurnCount)
			if turnID == last {
				continue
			}
			var next cube.State
			cube.Apply(&next, &state, turnID)
			state = next
			last = turnID
		}

		d, err := corner.Lookup(tbl, state)
		if err != nil {
			return errors.Wrap(err, "lookup base state")
		}
		for turnID := 0; turnID < cube.TurnCount; turnID++ {
			var next cube.State
			cube.Apply(&next, &state, turnID)
			dn, err := corner.Lookup(tbl, next)
			if err != nil {
				return errors.Wrap(err, "lookup neighbor state")
			}
			if diff := d - dn; diff < -1 || diff > 1 {
				return errors.Errorf("admissibility violated: |%d - %d| > 1", d, dn)
			}
		}
	}
	return nil
}
