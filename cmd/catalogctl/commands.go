package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/eduproject/catalog/admin"
	"github.com/eduproject/catalog/models"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show projects, resources and the profile settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printView(a, a.session.View())
			return nil
		},
	}
}

func newRefreshCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch everything and report the connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.session.Refresh(ctxOf(cmd))
			fmt.Fprintf(a.term.out, "status: %s\n", a.session.View().Status)
			return err
		},
	}
}

func newAddProjectCmd(a *app) *cobra.Command {
	var p models.Project
	var internal bool

	cmd := &cobra.Command{
		Use:   "add-project",
		Short: "Create a project placed after the existing ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := a.session.NewProject()
			if err != nil {
				return err
			}

			draft.Project.Title = p.Title
			draft.Project.Description = p.Description
			draft.Project.ImageURL = p.ImageURL
			draft.Project.ExternalURL = p.ExternalURL
			draft.Project.DetailContent = p.DetailContent
			draft.Project.DetailGallery = p.DetailGallery
			draft.Project.DetailVideo = p.DetailVideo
			if cmd.Flags().Changed("category") {
				draft.Project.Category = p.Category
			}
			if cmd.Flags().Changed("order") {
				draft.Project.Order = p.Order
			}
			if internal {
				draft.Project.ActionType = models.ActionInternal
			}

			if err := a.session.UpdateDraft(draft); err != nil {
				return err
			}
			if err := a.session.Submit(ctxOf(cmd)); err != nil {
				a.session.Cancel()
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.Title, "title", "", "project title")
	f.StringVar(&p.Description, "description", "", "short description")
	f.StringVar(&p.ImageURL, "image", "", "cover image URL")
	f.StringVar(&p.ExternalURL, "url", "", "external project URL")
	f.StringVar(&p.Category, "category", "", "category (default Edukasi)")
	f.IntVar(&p.Order, "order", 0, "display order (default after the last project)")
	f.BoolVar(&internal, "internal", false, "open the detail page instead of the external URL")
	f.StringVar(&p.DetailContent, "content", "", "long-form detail content")
	f.StringVar(&p.DetailGallery, "gallery", "", "comma separated gallery image URLs")
	f.StringVar(&p.DetailVideo, "video", "", "embedded video URL")
	return cmd
}

func newDeleteProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-project ID",
		Short: "Delete a project after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.DeleteProject(ctxOf(cmd), args[0])
		},
	}
}

func newDeleteResourceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-resource ID",
		Short: "Delete a downloadable resource after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.DeleteResource(ctxOf(cmd), args[0])
		},
	}
}

func newLayoutCmd(a *app) *cobra.Command {
	var preset string
	var desktop, tablet, mobile, gap int
	var autoFit bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Change the listing grid; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			var patch models.LayoutPatch
			if f.Changed("preset") {
				p := models.LayoutPreset(preset)
				patch.Preset = &p
			}
			if f.Changed("desktop") {
				patch.ColumnsDesktop = &desktop
			}
			if f.Changed("tablet") {
				patch.ColumnsTablet = &tablet
			}
			if f.Changed("mobile") {
				patch.ColumnsMobile = &mobile
			}
			if f.Changed("gap") {
				patch.Gap = &gap
			}
			if f.Changed("autofit") {
				patch.IsAutoFit = &autoFit
			}
			if patch == (models.LayoutPatch{}) {
				return fmt.Errorf("nothing to change")
			}
			return a.session.UpdateLayout(ctxOf(cmd), patch)
		},
	}

	f := cmd.Flags()
	f.StringVar(&preset, "preset", "", "standard, adaptive, masonry or custom")
	f.IntVar(&desktop, "desktop", 0, "columns on desktop")
	f.IntVar(&tablet, "tablet", 0, "columns on tablet")
	f.IntVar(&mobile, "mobile", 0, "columns on mobile")
	f.IntVar(&gap, "gap", 0, "gap between cards")
	f.BoolVar(&autoFit, "autofit", false, "fit as many cards per row as possible")
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	var patch models.ThemePatch
	colors := map[string]**string{
		"primary":   &patch.PrimaryColor,
		"secondary": &patch.SecondaryColor,
		"accent":    &patch.AccentColor,
		"text":      &patch.TextColor,
		"bg":        &patch.BackgroundColor,
		"card":      &patch.CardColor,
		"radius":    &patch.BorderRadius,
	}
	values := make(map[string]*string, len(colors))

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Change theme colors; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed := false
			for name, dst := range colors {
				if cmd.Flags().Changed(name) {
					*dst = values[name]
					changed = true
				}
			}
			if !changed {
				return fmt.Errorf("nothing to change")
			}
			return a.session.UpdateTheme(ctxOf(cmd), patch)
		},
	}

	for name := range colors {
		values[name] = cmd.Flags().String(name, "", name+" value")
	}
	return cmd
}

func printView(a *app, v admin.View) {
	w := tabwriter.NewWriter(a.term.out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "status:\t%s\n\n", v.Status)

	fmt.Fprintln(w, "ORDER\tID\tTITLE\tCATEGORY\tACTION")
	for _, p := range v.Projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.Order, p.ID, p.Title, p.Category, p.ActionType)
	}

	fmt.Fprintln(w, "\nORDER\tID\tTITLE\tTYPE\tURL")
	for _, r := range v.Resources {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.Order, r.ID, r.Title, r.FileType, r.FileURL)
	}

	l := v.Profile.LayoutSettings
	t := v.Profile.ThemeSettings
	fmt.Fprintf(w, "\nprofile:\t%s (%s)\n", v.Profile.Name, v.Profile.Role)
	fmt.Fprintf(w, "layout:\t%s %d/%d/%d gap %d autofit %t\n",
		l.Preset, l.ColumnsDesktop, l.ColumnsTablet, l.ColumnsMobile, l.Gap, l.IsAutoFit)
	fmt.Fprintf(w, "theme:\tprimary %s accent %s bg %s radius %s\n",
		t.PrimaryColor, t.AccentColor, t.BackgroundColor, t.BorderRadius)
	w.Flush()
}
