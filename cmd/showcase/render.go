package main

import (
	"encoding/json"
	"io"

	"showcase/internal/modkit"
	"showcase/internal/platform/config"
	perr "showcase/internal/platform/errors"
	"showcase/internal/platform/session"
	"showcase/internal/services/showcase/card"
	showcasemod "showcase/internal/services/showcase/module"
	"showcase/internal/services/showcase/widget"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "List, render and enrich once, then print to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "html" && format != "json" {
				return perr.InvalidArgf("unknown format %q, want html or json", format)
			}
			m, err := showcasemod.New(modkit.Deps{}, showcasemod.FromConfig(config.New()))
			if err != nil {
				return fail(err, "invalid showcase configuration")
			}
			return render(cmd, m, format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or json")
	return cmd
}

func render(cmd *cobra.Command, m *showcasemod.Module, format string, out io.Writer) error {
	ctx := cmd.Context()
	w, ok := modkit.PortOf[*widget.Widget](m)
	if !ok {
		return perr.Internalf("showcase module exposes no widget")
	}

	var l card.List
	if err := w.Render(ctx, session.NewMemory(), &l); err != nil {
		return fail(err, "listing failed")
	}

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l.Snapshots())
	}
	return card.RenderPage(out, card.PageData{Profile: w.Profile(ctx), Cards: l.Snapshots()})
}
