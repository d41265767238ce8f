package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomLayout/internal/api"
	"github.com/piwi3910/RoomLayout/internal/engine"
	"github.com/piwi3910/RoomLayout/internal/export"
	"github.com/piwi3910/RoomLayout/internal/logging"
	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/project"
)

// outputFlags name the files place writes the result to.
type outputFlags struct {
	pdf    string
	tags   string
	xlsx   string
	dxf    string
	layout string
	json   bool
}

func placeCmd(a *app) *cobra.Command {
	var (
		rf  requestFlags
		sf  settingsFlags
		out outputFlags
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place furniture in a room and export the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, tmplSettings, warnings, err := rf.build(cmd, a.catalog)
			if err != nil {
				return err
			}
			settings := a.cfg.Layout.ToSettings()
			if tmplSettings != nil {
				settings = *tmplSettings
			}
			if settings, err = sf.apply(settings); err != nil {
				return err
			}
			return runPlace(cmd, a, req, settings, warnings, out)
		},
	}

	rf.register(cmd)
	sf.register(cmd)
	cmd.Flags().StringVar(&out.pdf, "pdf", "", "write the layout drawing to a PDF file")
	cmd.Flags().StringVar(&out.tags, "tags", "", "write QR furniture tags to a PDF file")
	cmd.Flags().StringVar(&out.xlsx, "xlsx", "", "write the placements to an Excel file")
	cmd.Flags().StringVar(&out.dxf, "dxf", "", "write the layout to a DXF file")
	cmd.Flags().StringVar(&out.layout, "save", "", "save request, settings and result as a layout file")
	cmd.Flags().BoolVar(&out.json, "json", false, "print the result as JSON")
	return cmd
}

func runPlace(cmd *cobra.Command, a *app, req model.PlacementRequest, settings model.Settings, warnings []string, out outputFlags) error {
	opt, err := a.optimizer(settings)
	if err != nil {
		return err
	}

	res, err := opt.Optimize(cmd.Context(), req)
	if err != nil {
		return err
	}
	res.ID = model.NewResultID()

	w := cmd.OutOrStdout()
	if out.json {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(w, string(data))
	} else {
		printWarnings(w, warnings)
		printPlacement(w, res)
	}

	exports := []struct {
		path string
		what string
		fn   func(string) error
	}{
		{out.pdf, "layout drawing", func(p string) error { return export.ExportPDF(p, res, settings) }},
		{out.tags, "furniture tags", func(p string) error { return export.ExportTags(p, res) }},
		{out.xlsx, "spreadsheet", func(p string) error { return export.ExportXLSX(p, res) }},
		{out.dxf, "DXF drawing", func(p string) error { return export.ExportDXF(p, res, settings) }},
		{out.layout, "layout", func(p string) error {
			layout := model.NewLayout(layoutName(p), req, settings)
			layout.Result = &res
			return project.SaveLayout(p, layout)
		}},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.fn(e.path); err != nil {
			return fmt.Errorf("writing %s: %w", e.what, err)
		}
		a.logger.Info().Str("path", e.path).Msgf("wrote %s", e.what)
	}
	return nil
}

// layoutName derives a layout name from its file name.
func layoutName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, project.LayoutExt)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func compareCmd(a *app) *cobra.Command {
	var (
		rf requestFlags
		sf settingsFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the same request under alternative settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, tmplSettings, warnings, err := rf.build(cmd, a.catalog)
			if err != nil {
				return err
			}
			settings := a.cfg.Layout.ToSettings()
			if tmplSettings != nil {
				settings = *tmplSettings
			}
			if settings, err = sf.apply(settings); err != nil {
				return err
			}

			p, err := a.cfg.Predictor.Build()
			if err != nil {
				return err
			}
			seed := a.cfg.Layout.Seed
			if req.Seed != nil {
				seed = *req.Seed
				req.Seed = nil
			}
			if seed == 0 {
				seed = 42
			}

			results := engine.CompareScenarios(cmd.Context(), engine.BuildDefaultScenarios(settings), a.catalog, p, req, seed)
			printWarnings(cmd.OutOrStdout(), warnings)
			printComparison(cmd.OutOrStdout(), results, seed)
			return nil
		},
	}

	rf.register(cmd)
	sf.register(cmd)
	return cmd
}

func capacityCmd(a *app) *cobra.Command {
	var (
		rf       requestFlags
		fraction float64
	)

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Check whether the furniture fits the room's allowed floor area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, _, warnings, err := rf.build(cmd, a.catalog)
			if err != nil {
				return err
			}
			if fraction == 0 {
				fraction = a.cfg.Layout.AreaGateFraction
			}
			if fraction <= 0 || fraction > 1 {
				return fmt.Errorf("fraction must be in (0, 1], got %v", fraction)
			}

			kinds, unknown := a.catalog.Resolve(req.Furniture)
			for _, name := range unknown {
				warnings = append(warnings, fmt.Sprintf("unknown furniture kind %q ignored", name))
			}
			est := model.CalculateCapacity(req.Room, kinds, fraction)

			printWarnings(cmd.OutOrStdout(), warnings)
			printCapacity(cmd.OutOrStdout(), est)
			if !est.Fits() {
				return engine.ErrCapacity
			}
			return nil
		},
	}

	rf.register(cmd)
	cmd.Flags().Float64Var(&fraction, "fraction", 0, "allowed share of the floor (default layout.area_gate_fraction)")
	return cmd
}

func catalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the furniture kinds and their footprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printCatalog(cmd.OutOrStdout(), a.catalog)
			return nil
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the placement engine over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			opt, err := a.optimizer(a.cfg.Layout.ToSettings())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.New(opt, cfg, logging.Component("api")).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return cmd
}
