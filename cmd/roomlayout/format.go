package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/RoomLayout/internal/engine"
	"github.com/piwi3910/RoomLayout/internal/model"
)

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "WARNINGS (%d):\n", len(warnings))
	for _, msg := range warnings {
		fmt.Fprintf(w, "  * %s\n", msg)
	}
	fmt.Fprintln(w)
}

func printPlacement(w io.Writer, res model.PlacementResult) {
	fmt.Fprintf(w, "Layout %s: room %gx%g, strategy %s, anchor (%.2f, %.2f)\n",
		res.ID, res.Room.Width, res.Room.Height, res.Strategy, res.Anchor.X, res.Anchor.Y)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tX\tY\tWIDTH\tHEIGHT")
	for i, p := range res.Placements {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%g\t%g\n", i+1, p.Kind, p.X, p.Y, p.Width, p.Height)
	}
	tw.Flush()

	for _, u := range res.Unplaced {
		fmt.Fprintf(w, "Not placed: %s (item %d) after %d attempts\n", u.Kind, u.Index+1, u.Attempts)
	}
	for _, name := range res.Ignored {
		fmt.Fprintf(w, "Ignored: %s\n", name)
	}
	if res.IgnoredObstacles > 0 {
		fmt.Fprintf(w, "Ignored obstacles: %d\n", res.IgnoredObstacles)
	}
	fmt.Fprintf(w, "Placed %d of %d items, %.1f%% floor coverage, %d attempts\n",
		len(res.Placements), len(res.Furniture), res.Coverage(), res.Attempts)
}

func printComparison(w io.Writer, results []engine.ComparisonResult, seed int64) {
	fmt.Fprintf(w, "Scenario comparison (seed %d)\n", seed)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tPLACED\tUNPLACED\tATTEMPTS\tCOVERAGE")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t%v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f%%\n", r.Scenario.Name, r.PlacedCount, r.UnplacedCount, r.Attempts, r.Coverage)
	}
	tw.Flush()
}

func printCapacity(w io.Writer, est model.CapacityEstimate) {
	fmt.Fprintf(w, "Room area:      %.2f\n", est.RoomArea)
	fmt.Fprintf(w, "Allowed area:   %.2f (%.0f%%)\n", est.AllowedArea, est.Fraction*100)
	fmt.Fprintf(w, "Furniture area: %.2f (%d items)\n", est.FurnitureArea, est.ItemCount)
	fmt.Fprintf(w, "Remaining area: %.2f\n", est.RemainingArea)
	fmt.Fprintf(w, "Utilization:    %.1f%%\n", est.UtilizationPct)
	if est.Fits() {
		fmt.Fprintln(w, "Result: FITS")
	} else {
		fmt.Fprintln(w, "Result: DOES NOT FIT")
	}
}

func printCatalog(w io.Writer, catalog model.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tWIDTH\tHEIGHT\tAREA")
	for _, k := range catalog.Kinds() {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\n", k.Name, k.Width, k.Height, k.Area())
	}
	tw.Flush()
}

func printTemplates(w io.Writer, ts model.TemplateStore) {
	if len(ts.Templates) == 0 {
		fmt.Fprintln(w, "No templates saved.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROOM\tITEMS\tOBSTACLES\tSTRATEGY")
	for _, t := range ts.Templates {
		fmt.Fprintf(tw, "%s\t%s\t%gx%g\t%d\t%d\t%s\n",
			t.ID, t.Name, t.Room.Width, t.Room.Height, len(t.Furniture), len(t.Obstacles), t.Settings.Strategy)
	}
	tw.Flush()
}
