package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-collide/internal/collision"
	"github.com/vovakirdan/tui-collide/internal/geo"
	"github.com/vovakirdan/tui-collide/internal/scene"
	"github.com/vovakirdan/tui-collide/internal/sim"
)

var (
	queryGroups []string
	querySolid  bool
	queryName   string
	queryFirst  bool
	queryFrames int
)

var queryCmd = &cobra.Command{
	Use:   "query <scene> <shape>",
	Short: "Query a scene's room with a shape",
	Long: `Build a scene and list the entities a shape collides with.

With no filter every member is tested. Filters narrow the candidates:
  --group tag    members carrying the tag (repeat for any of several)
  --solid        solid members only
  --name name    the members named name, stopping at the first hit
  --first        stop at the first hit

--frames advances the room before querying.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringArrayVar(&queryGroups, "group", nil, "Group tag to query (repeatable)")
	queryCmd.Flags().BoolVar(&querySolid, "solid", false, "Only query solid entities")
	queryCmd.Flags().StringVar(&queryName, "name", "", "Only query entities with this name")
	queryCmd.Flags().BoolVar(&queryFirst, "first", false, "Stop at the first hit")
	queryCmd.Flags().IntVar(&queryFrames, "frames", 0, "Frames to run before querying")
}

func runQuery(cmd *cobra.Command, args []string) error {
	shape, err := geo.ParseShape(args[1])
	if err != nil {
		return err
	}

	store := tryOpenStore()
	if store != nil {
		defer store.Close()
	}

	sc, err := loadScene(args[0], store)
	if err != nil {
		return err
	}
	r, err := sc.Build(scene.WithSeed(app.cfg.Runtime.Seed), scene.WithLogger(app.logger))
	if err != nil {
		return err
	}

	runner := sim.NewRunner(r)
	for range queryFrames {
		runner.Step()
	}

	var hits []collision.Result
	switch {
	case queryName != "":
		var res *collision.Result
		res, err = collision.CollidesName(r, shape, queryName)
		if res != nil {
			hits = append(hits, *res)
		}
	case len(queryGroups) > 0:
		hits, err = collision.CollidesGroups(r, shape, queryGroups)
	case querySolid:
		hits, err = collision.CollidesSolid(r, shape)
	case queryFirst:
		var res *collision.Result
		res, err = collision.CollidesFirst(r, shape)
		if res != nil {
			hits = append(hits, *res)
		}
	default:
		hits, err = collision.CollidesMultiple(r, shape)
	}

	// Hits found alongside undecidable pairs are still worth printing.
	printHits(cmd, hits)
	return err
}

func printHits(cmd *cobra.Command, hits []collision.Result) {
	out := cmd.OutOrStdout()
	if len(hits) == 0 {
		fmt.Fprintln(out, "no hits")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENTITY\tTEST\tSHAPE\tGROUPS")
	for _, res := range hits {
		e := res.Entity
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, res.Name(), geo.Format(e.Shape), e.Group())
	}
	w.Flush()
}
