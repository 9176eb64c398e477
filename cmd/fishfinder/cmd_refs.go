package main

import (
	"fmt"

	"fishing-finder/internal/domain/references"

	"github.com/spf13/cobra"
)

func newRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs [map|info]",
		Short: "List reference images",
		Long:  "Sin argumento lista todas las imágenes; con un toggle, las que ese botón muestra.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imgs := references.All()
			if len(args) == 1 {
				var err error
				if imgs, err = references.ForToggle(references.Toggle(args[0])); err != nil {
					return fmt.Errorf("%w: %q", err, args[0])
				}
			}

			out := cmd.OutOrStdout()
			for _, img := range imgs {
				fmt.Fprintf(out, "%-7s %-22s %s\n", img.Kind, img.Path, img.Alt)
			}
			return nil
		},
	}
}
