package main

import (
	"errors"
	"fmt"
	"os"

	"fishing-finder/internal/adapters/storage/sqlite"
	"fishing-finder/internal/domain/fish"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded catalog as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := opts.loadService(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}
			// exportar un catálogo vacío por error de carga sería engañoso
			if !svc.Loaded() {
				return svc.LoadErr()
			}

			raw, err := fish.EncodeDocument(svc.Table())
			if err != nil {
				return err
			}
			raw = append(raw, '\n')

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			return os.WriteFile(outPath, raw, 0o644)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the catalog and seed it into a sqlite database",
		Long: `Carga el catálogo desde la fuente configurada (por defecto el documento
JSON) y lo escribe en la tabla fish de un archivo sqlite, reemplazando lo
que hubiera. Después se puede servir con --driver sqlite.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.New("--db is required")
			}

			svc, closeFn, err := opts.loadService(cmd.Context())
			defer func() { _ = closeFn() }()
			if err != nil {
				return err
			}
			if !svc.Loaded() {
				return svc.LoadErr()
			}

			db, err := sqlite.Open(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			records := svc.Table()
			if err := sqlite.Seed(cmd.Context(), db, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d fish into %s\n", len(records), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "sqlite database file")
	return cmd
}
