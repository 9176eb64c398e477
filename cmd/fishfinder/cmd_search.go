package main

import (
	"fmt"
	"strings"

	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/tui"

	"github.com/spf13/cobra"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var mode, policy string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search fish by name, spot or lure",
		Long: `Busca en el catálogo. Por nombre y señuelo es una subcadena sin
distinguir mayúsculas; por spot la consulta es un número de spot (0 o texto
no numérico no devuelven nada).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := fish.ParseMode(mode)
			if err != nil {
				return err
			}
			var p fish.SpotPolicy
			if m == fish.ModeSpot {
				if p, err = fish.ParsePolicy(policy); err != nil {
					return err
				}
			}

			svc, closeFn, err := opts.loadService(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}

			q := fish.Query{Mode: m, Text: strings.Join(args, " "), Policy: p}
			items := svc.Search(q)

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No fish found.")
				return nil
			}
			fmt.Fprint(out, tui.RenderTable(items, tui.DefaultStyles()))
			fmt.Fprintf(out, "%d result(s)\n", len(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(fish.ModeName), "Search mode: name, spot, lure")
	cmd.Flags().StringVarP(&policy, "policy", "p", string(fish.PolicyIncludeAny), "Spot policy: include-any, specific-only")
	return cmd
}

func newTableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the full catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := opts.loadService(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}

			items := svc.Table()
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "Catalog is empty.")
				return nil
			}
			fmt.Fprint(out, tui.RenderTable(items, tui.DefaultStyles()))
			fmt.Fprintf(out, "%d fish\n", len(items))
			return nil
		},
	}
}
