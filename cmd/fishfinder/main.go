package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fishing-finder/internal/adapters/catalog"
	"fishing-finder/internal/domain/fish"
	"fishing-finder/internal/platform/config"
	"fishing-finder/internal/platform/logger"

	"github.com/spf13/cobra"
)

// rootOptions son los flags globales.
type rootOptions struct {
	verbose bool
	catalog string
	driver  string
	timeout time.Duration

	log logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "fishfinder",
		Short: "Hay Day Fishing Finder",
		Long: `Buscador del catálogo de peces de Hay Day.

Busca por nombre, spot o señuelo, muestra la tabla completa y las imágenes
de referencia. Sin subcomando abre la interfaz de terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logger.Warn
			if opts.verbose {
				level = logger.Debug
			}
			l, err := logger.New(logger.Options{
				Level:  level,
				Format: logger.FormatText,
				Output: "stderr",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.catalog, "catalog", "c", "", "Catalog path, URL or DSN (default: CATALOG_PATH / CATALOG_URL / DB_DSN)")
	root.PersistentFlags().StringVarP(&opts.driver, "driver", "d", "", "Catalog driver: file, http, s3, postgres, sqlite, memory (default: CATALOG_DRIVER)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Catalog load timeout (default: CATALOG_TIMEOUT)")

	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newTableCmd(opts))
	root.AddCommand(newRefsCmd())
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newTUICmd(opts))

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// catalogConfig parte de la config de entorno y aplica los flags.
func (o *rootOptions) catalogConfig() (config.Catalog, error) {
	cfg, err := config.LoadWith(o.applyFlags)
	if err != nil {
		return config.Catalog{}, err
	}
	return cfg.Catalog, nil
}

// applyFlags vuelca --driver, --timeout y --catalog sobre la config. El
// significado de --catalog depende del driver.
func (o *rootOptions) applyFlags(cfg *config.Config) error {
	c := &cfg.Catalog
	if o.driver != "" {
		c.Driver = strings.ToLower(strings.TrimSpace(o.driver))
	}
	if o.timeout > 0 {
		c.Timeout = o.timeout
	}
	if o.catalog == "" {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case config.DriverHTTP:
		c.URL = o.catalog
	case config.DriverPostgres:
		c.DSN = o.catalog
	case config.DriverS3:
		bucket, key := parseS3Location(o.catalog)
		if bucket != "" {
			c.S3.Bucket = bucket
		}
		c.S3.Key = key
	case config.DriverMemory:
		return fmt.Errorf("--catalog no aplica al driver %q", c.Driver)
	default:
		c.Path = o.catalog
	}
	return nil
}

// parseS3Location acepta "s3://bucket/key" o solo la key.
func parseS3Location(v string) (bucket, key string) {
	rest, ok := strings.CutPrefix(v, "s3://")
	if !ok {
		return "", strings.TrimPrefix(v, "/")
	}
	bucket, key, _ = strings.Cut(rest, "/")
	return bucket, key
}

// loadService carga el catálogo. Un fallo de carga no es error: el servicio
// queda vacío y las búsquedas devuelven cero resultados.
func (o *rootOptions) loadService(ctx context.Context) (*fish.Service, func() error, error) {
	cfg, err := o.catalogConfig()
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return catalog.LoadService(ctx, cfg, o.log.With(map[string]any{"driver": cfg.Driver}))
}
