package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/project"
)

func templatesCmd(a *app) *cobra.Command {
	var store string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage saved room templates",
	}
	cmd.PersistentFlags().StringVar(&store, "store", project.DefaultTemplatePath(), "room template store")

	cmd.AddCommand(templatesSaveCmd(a, &store))
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := project.LoadTemplates(store)
			if err != nil {
				return err
			}
			printTemplates(cmd.OutOrStdout(), ts)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a template by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := project.LoadTemplates(store)
			if err != nil {
				return err
			}
			t := ts.FindByName(args[0])
			if t == nil {
				return fmt.Errorf("no template named %q", args[0])
			}
			ts.Remove(t.ID)
			return project.SaveTemplates(store, ts)
		},
	})
	return cmd
}

func templatesSaveCmd(a *app, store *string) *cobra.Command {
	var (
		rf          requestFlags
		sf          settingsFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a room, its furniture and obstacles as a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rf.template != "" {
				return fmt.Errorf("--template cannot be used when saving a template")
			}
			req, _, warnings, err := rf.build(cmd, a.catalog)
			if err != nil {
				return err
			}
			settings, err := sf.apply(a.cfg.Layout.ToSettings())
			if err != nil {
				return err
			}

			ts, err := project.LoadTemplates(*store)
			if err != nil {
				return err
			}
			if ts.FindByName(args[0]) != nil {
				return fmt.Errorf("a template named %q already exists", args[0])
			}
			t := model.NewRoomTemplate(args[0], description, req, settings)
			ts.Add(t)
			if err := project.SaveTemplates(*store, ts); err != nil {
				return err
			}

			printWarnings(cmd.OutOrStdout(), warnings)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q (%s)\n", t.Name, t.ID)
			return nil
		},
	}

	rf.register(cmd)
	sf.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func backupCmd(a *app) *cobra.Command {
	var (
		store      string
		layoutsDir string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import templates and saved layouts",
	}
	cmd.PersistentFlags().StringVar(&store, "store", project.DefaultTemplatePath(), "room template store")
	cmd.PersistentFlags().StringVar(&layoutsDir, "layouts", filepath.Join(project.DataDir(), "layouts"), "saved layouts directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "export FILE",
		Short: "Write all templates and layouts to one backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := project.LoadTemplates(store)
			if err != nil {
				return err
			}
			paths, err := project.ListLayouts(layoutsDir)
			if err != nil {
				return err
			}
			layouts := make([]model.Layout, 0, len(paths))
			for _, p := range paths {
				l, err := project.LoadLayout(p)
				if err != nil {
					a.logger.Warn().Err(err).Str("path", p).Msg("skipping unreadable layout")
					continue
				}
				layouts = append(layouts, l)
			}

			if err := project.ExportAllData(args[0], ts, layouts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d templates and %d layouts to %s\n", len(ts.Templates), len(layouts), args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import FILE",
		Short: "Restore templates and layouts from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			ts, err := project.LoadTemplates(store)
			if err != nil {
				return err
			}
			added := 0
			for _, t := range data.Templates.Templates {
				if ts.FindByID(t.ID) != nil {
					continue
				}
				ts.Add(t)
				added++
			}
			if err := project.SaveTemplates(store, ts); err != nil {
				return err
			}

			if err := os.MkdirAll(layoutsDir, 0755); err != nil {
				return err
			}
			for _, l := range data.Layouts {
				path := filepath.Join(layoutsDir, fileSafe(l.Name)+project.LayoutExt)
				if err := project.SaveLayout(path, l); err != nil {
					return fmt.Errorf("restoring layout %q: %w", l.Name, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d templates and %d layouts\n", added, len(data.Layouts))
			return nil
		},
	})
	return cmd
}

// fileSafe replaces path separators and spaces in a layout name.
func fileSafe(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(name)
}
