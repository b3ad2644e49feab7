package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/geo"
)

// maxDrawSize caps the picture printed by check --draw.
const maxDrawSize = 120

var checkDraw bool

var checkCmd = &cobra.Command{
	Use:   "check <shapeA> <shapeB>",
	Short: "Test two shapes against each other",
	Long: `Test two shapes and print which narrow-phase test decided it.

For two lines that cross, the intersection point is printed too.
Exits with an error when no test is registered for the pair.`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkDraw, "draw", false, "Draw both shapes as text")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := geo.ParseShape(args[0])
	if err != nil {
		return err
	}
	b, err := geo.ParseShape(args[1])
	if err != nil {
		return err
	}

	test, _, _, err := collision.Lookup(a, b)
	if errors.Is(err, collision.ErrNoTest) {
		fmt.Fprintf(cmd.OutOrStdout(), "cannot determine: %s x %s\n", a.Kind(), b.Kind())
		return err
	}
	if err != nil {
		return err
	}

	res, err := collision.Collides(a, b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res != nil {
		fmt.Fprintf(out, "hit (%s)\n", test.Name)
	} else {
		fmt.Fprintf(out, "miss (%s)\n", test.Name)
	}

	la, okA := a.(geo.Line)
	lb, okB := b.(geo.Line)
	if okA && okB {
		if p, ok := collision.LineIntercept(la, lb); ok {
			fmt.Fprintf(out, "intercept %s\n", p)
		}
	}

	if checkDraw {
		fmt.Fprintln(out, drawPair(a, b))
	}
	return nil
}

// drawPair draws a and b on a screen covering both, a as 'A', b as 'B' and
// cells covered by both as 'X'.
func drawPair(a, b geo.Shape) string {
	ba, bb := a.Bounds(), b.Bounds()
	minX := math.Floor(min(ba.Left(), bb.Left()))
	minY := math.Floor(min(ba.Top(), bb.Top()))
	w := int(math.Ceil(max(ba.Right(), bb.Right())-minX)) + 1
	h := int(math.Ceil(max(ba.Bottom(), bb.Bottom())-minY)) + 1

	screen := core.NewScreen(min(w, maxDrawSize), min(h, maxDrawSize))
	screen.DrawShape(a.Translate(-minX, -minY), 'A', core.ColorDefault)

	overlay := core.NewScreen(screen.Width(), screen.Height())
	overlay.DrawShape(b.Translate(-minX, -minY), 'B', core.ColorDefault)
	for y := range screen.Height() {
		for x := range screen.Width() {
			if overlay.Get(x, y) != 'B' {
				continue
			}
			if screen.Get(x, y) == 'A' {
				screen.Set(x, y, 'X', core.ColorDefault)
			} else {
				screen.Set(x, y, 'B', core.ColorDefault)
			}
		}
	}
	return screen.String()
}
