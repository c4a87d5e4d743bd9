// Command stabcli is a CLI front end over the stabilizer tableau core: it
// builds tableaus from stabilizer strings or edge lists, validates them,
// and drives the circuit synthesizer and photonic protocol solver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nrmanohar/stabilizer/gate"
	"github.com/nrmanohar/stabilizer/height"
	"github.com/nrmanohar/stabilizer/internal/reportplot"
	"github.com/nrmanohar/stabilizer/pauli"
	"github.com/nrmanohar/stabilizer/photonic"
	"github.com/nrmanohar/stabilizer/rowop"
	"github.com/nrmanohar/stabilizer/synth"
	"github.com/nrmanohar/stabilizer/tableau"
)

func usage() {
	fmt.Println(`usage: stabcli <validate|synthesize|measure|graph|emitters|photonic|plot> [options]

Subcommands:
  validate   -stabs "XX,ZZ"              report whether the stabilizers form a valid tableau
  synthesize -stabs "XX,ZZ"               print the gate sequence preparing the state from |0...0>
  measure    -stabs "XX,ZZ" -pauli "ZZ"   project onto the Pauli's +1 eigenspace (add -outcome for -1)
  graph      -edges "0-1,1-2,2-3,3-4,4-0" print the graph state's tableau
  emitters   -edges "0-1,1-2,2-3,3-4,4-0" print the minimum emitter count
  photonic   -edges "0-1,1-2,2-3,3-4,4-0" print the emitter-efficient emission protocol
  plot       -edges "..." -out height.html -pivots-out pivots.html
             render the height-function profile and the RREF pivot-width
             profile as HTML charts`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "validate":
		runValidate(os.Args[2:])
	case "synthesize":
		runSynthesize(os.Args[2:])
	case "measure":
		runMeasure(os.Args[2:])
	case "graph":
		runGraph(os.Args[2:])
	case "emitters":
		runEmitters(os.Args[2:])
	case "photonic":
		runPhotonic(os.Args[2:])
	case "plot":
		runPlot(os.Args[2:])
	default:
		usage()
	}
}

func buildStabTableau(stabs string) (*tableau.Tableau, error) {
	rows, _, err := pauli.ParseRows(pauli.One(stabs), 0)
	if err != nil {
		return nil, err
	}
	return tableau.New(rows)
}

func parseEdges(s string) ([]tableau.Edge, error) {
	parts := strings.Split(s, ",")
	edges := make([]tableau.Edge, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		uv := strings.Split(p, "-")
		if len(uv) != 2 {
			return nil, fmt.Errorf("invalid edge %q, want \"u-v\"", p)
		}
		u, err := strconv.Atoi(uv[0])
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", p, err)
		}
		v, err := strconv.Atoi(uv[1])
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", p, err)
		}
		edges = append(edges, tableau.Edge{u, v})
	}
	return edges, nil
}

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	stabs := fs.String("stabs", "XX,ZZ", "comma-separated stabilizer strings")
	fs.Parse(args)

	tb, err := buildStabTableau(*stabs)
	if err != nil {
		log.Fatalf("invalid: %v", err)
	}
	fmt.Println("valid")
	fmt.Print(tb)
}

func runSynthesize(args []string) {
	fs := flag.NewFlagSet("synthesize", flag.ExitOnError)
	stabs := fs.String("stabs", "XX,ZZ", "comma-separated stabilizer strings")
	fs.Parse(args)

	tb, err := buildStabTableau(*stabs)
	if err != nil {
		log.Fatalf("invalid tableau: %v", err)
	}
	gates, err := synth.Synthesize(tb)
	if err != nil {
		log.Fatalf("synthesize: %v", err)
	}
	printGates(gates)
}

func runMeasure(args []string) {
	fs := flag.NewFlagSet("measure", flag.ExitOnError)
	stabs := fs.String("stabs", "XX,ZZ", "comma-separated stabilizer strings")
	p := fs.String("pauli", "", "Pauli string to measure")
	outcome := fs.Bool("outcome", false, "requested outcome (false=+1, true=-1)")
	fs.Parse(args)

	tb, err := buildStabTableau(*stabs)
	if err != nil {
		log.Fatalf("invalid tableau: %v", err)
	}
	row, err := pauli.ParseRow(*p, tb.N())
	if err != nil {
		log.Fatalf("invalid pauli: %v", err)
	}
	if err := rowop.Measure(tb, row, *outcome); err != nil {
		log.Fatalf("measure: %v", err)
	}
	fmt.Print(tb)
}

func runGraph(args []string) {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	edgeFlag := fs.String("edges", "", "comma-separated u-v edges")
	fs.Parse(args)

	edges, err := parseEdges(*edgeFlag)
	if err != nil {
		log.Fatalf("invalid edges: %v", err)
	}
	tb, err := tableau.FromEdges(edges)
	if err != nil {
		log.Fatalf("graph: %v", err)
	}
	fmt.Print(tb)
}

func runEmitters(args []string) {
	fs := flag.NewFlagSet("emitters", flag.ExitOnError)
	edgeFlag := fs.String("edges", "", "comma-separated u-v edges")
	fs.Parse(args)

	edges, err := parseEdges(*edgeFlag)
	if err != nil {
		log.Fatalf("invalid edges: %v", err)
	}
	tb, err := tableau.FromEdges(edges)
	if err != nil {
		log.Fatalf("graph: %v", err)
	}
	n, err := height.NumEmitters(tb)
	if err != nil {
		log.Fatalf("emitters: %v", err)
	}
	fmt.Println(n)
}

func runPhotonic(args []string) {
	fs := flag.NewFlagSet("photonic", flag.ExitOnError)
	edgeFlag := fs.String("edges", "", "comma-separated u-v edges")
	verbose := fs.Bool("v", false, "trace intermediate tableaus to stderr")
	fs.Parse(args)

	edges, err := parseEdges(*edgeFlag)
	if err != nil {
		log.Fatalf("invalid edges: %v", err)
	}
	tb, err := tableau.FromEdges(edges)
	if err != nil {
		log.Fatalf("graph: %v", err)
	}
	var trace photonic.Trace
	if *verbose {
		trace = func(step int, t *tableau.Tableau) {
			fmt.Fprintf(os.Stderr, "-- step %d --\n%s", step, t)
		}
	}
	gates, ne, err := photonic.Protocol(tb, trace)
	if err != nil {
		log.Fatalf("photonic: %v", err)
	}
	fmt.Printf("emitters: %d\n", ne)
	printGates(gates)
}

func runPlot(args []string) {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	edgeFlag := fs.String("edges", "", "comma-separated u-v edges")
	out := fs.String("out", "height.html", "height-function chart output path")
	pivotsOut := fs.String("pivots-out", "pivots.html", "RREF pivot-width chart output path")
	fs.Parse(args)

	edges, err := parseEdges(*edgeFlag)
	if err != nil {
		log.Fatalf("invalid edges: %v", err)
	}
	tb, err := tableau.FromEdges(edges)
	if err != nil {
		log.Fatalf("graph: %v", err)
	}
	profile, err := height.Profile(tb)
	if err != nil {
		log.Fatalf("height profile: %v", err)
	}
	if err := reportplot.HeightProfile(*out, profile); err != nil {
		log.Fatalf("plot: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)

	lead, err := height.LeadingColumns(tb)
	if err != nil {
		log.Fatalf("leading columns: %v", err)
	}
	if err := reportplot.PivotWidths(*pivotsOut, lead); err != nil {
		log.Fatalf("plot: %v", err)
	}
	fmt.Printf("wrote %s\n", *pivotsOut)
}

func printGates(gates []gate.Gate) {
	for _, g := range gates {
		fmt.Println(g)
	}
}
