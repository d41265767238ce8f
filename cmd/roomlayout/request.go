package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomLayout/internal/importer"
	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/project"
)

// requestFlags are the flags shared by every command that builds a
// placement request.
type requestFlags struct {
	room          string
	furniture     string
	obstacles     string
	requestFile   string
	furnitureFile string
	floorPlan     string
	template      string
	templateStore string
	seed          int64
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.room, "room", "", "room size as WIDTHxHEIGHT, e.g. 12x10")
	fs.StringVar(&f.furniture, "furniture", "", "comma separated furniture kinds, e.g. Bed,Chair")
	fs.StringVar(&f.obstacles, "obstacles", "", "obstacle points as x,y;x,y")
	fs.StringVar(&f.requestFile, "request", "", "YAML request file")
	fs.StringVar(&f.furnitureFile, "furniture-file", "", "CSV or Excel furniture list (Kind, Quantity)")
	fs.StringVar(&f.floorPlan, "floor-plan", "", "DXF floor plan giving the room and obstacles")
	fs.StringVar(&f.template, "template", "", "name of a saved room template")
	fs.StringVar(&f.templateStore, "templates", project.DefaultTemplatePath(), "room template store")
	fs.Int64Var(&f.seed, "seed", 0, "random seed for a reproducible layout")
}

// build assembles the request. The room comes from exactly one of
// --request, --template, --floor-plan or --room; furniture and obstacles
// from flags and files are appended to it. A template also supplies its
// settings, returned as non-nil.
func (f *requestFlags) build(cmd *cobra.Command, catalog model.Catalog) (model.PlacementRequest, *model.Settings, []string, error) {
	var (
		req      model.PlacementRequest
		settings *model.Settings
		warnings []string
	)

	sources := 0
	for _, s := range []string{f.requestFile, f.template, f.floorPlan, f.room} {
		if s != "" {
			sources++
		}
	}
	switch {
	case sources == 0:
		return req, nil, nil, fmt.Errorf("one of --room, --request, --template or --floor-plan is required")
	case sources > 1:
		return req, nil, nil, fmt.Errorf("--room, --request, --template and --floor-plan are mutually exclusive")
	}

	switch {
	case f.requestFile != "":
		r, w, err := importer.LoadRequest(f.requestFile)
		if err != nil {
			return req, nil, nil, err
		}
		req = r
		warnings = append(warnings, w...)

	case f.template != "":
		store, err := project.LoadTemplates(f.templateStore)
		if err != nil {
			return req, nil, nil, fmt.Errorf("loading templates: %w", err)
		}
		t := store.FindByName(f.template)
		if t == nil {
			return req, nil, nil, fmt.Errorf("no template named %q in %s", f.template, f.templateStore)
		}
		req = t.ToRequest()
		s := t.Settings
		settings = &s

	case f.floorPlan != "":
		res := importer.ImportRoomDXF(f.floorPlan)
		if len(res.Errors) > 0 {
			return req, nil, nil, fmt.Errorf("floor plan %s: %s", f.floorPlan, strings.Join(res.Errors, "; "))
		}
		warnings = append(warnings, res.Warnings...)
		req.Room = res.Room
		req.Obstacles = res.Obstacles

	default:
		room, err := parseRoom(f.room)
		if err != nil {
			return req, nil, nil, err
		}
		req.Room = room
	}

	if f.furniture != "" {
		names, w := importer.ParseFurniture(f.furniture, catalog)
		req.Furniture = append(req.Furniture, names...)
		warnings = append(warnings, w...)
	}
	if f.furnitureFile != "" {
		res := importer.ImportFile(f.furnitureFile, catalog)
		if len(res.Errors) > 0 {
			return req, nil, nil, fmt.Errorf("furniture list %s: %s", f.furnitureFile, strings.Join(res.Errors, "; "))
		}
		req.Furniture = append(req.Furniture, res.Furniture...)
		warnings = append(warnings, res.Warnings...)
	}
	if f.obstacles != "" {
		points, w := importer.ParseObstacles(f.obstacles)
		req.Obstacles = append(req.Obstacles, points...)
		warnings = append(warnings, w...)
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		req.Seed = &seed
	}

	return req, settings, warnings, nil
}

// parseRoom reads WIDTHxHEIGHT.
func parseRoom(s string) (model.Room, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return model.Room{}, fmt.Errorf("room must be WIDTHxHEIGHT, got %q", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.Room{}, fmt.Errorf("room width: %w", err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.Room{}, fmt.Errorf("room height: %w", err)
	}
	room := model.Room{Width: w, Height: h}
	if !room.Valid() {
		return model.Room{}, fmt.Errorf("room must have positive width and height, got %q", s)
	}
	return room, nil
}

// settingsFlags override the configured engine settings per invocation.
type settingsFlags struct {
	strategy string
	policy   string
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "placement strategy: anchor, zone or uniform")
	cmd.Flags().StringVar(&f.policy, "policy", "", "exhaustion policy: skip or fail-fast")
}

func (f *settingsFlags) apply(s model.Settings) (model.Settings, error) {
	if f.strategy != "" {
		st, err := model.ParseStrategy(f.strategy)
		if err != nil {
			return s, err
		}
		s = s.WithStrategy(st)
	}
	if f.policy != "" {
		p, err := model.ParsePolicy(f.policy)
		if err != nil {
			return s, err
		}
		s.Policy = p
	}
	return s, nil
}
