package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/prodcat/internal/adapters/outbound/config"
	"github.com/abdidvp/prodcat/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		backend string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .prodcat.yaml configuration file",
		Long:  "Create a .prodcat.yaml with the default store, latency and log settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			b := domain.StoreBackend(backend)
			if !isKnownBackend(b) {
				return fmt.Errorf("unknown store backend %q (valid: %s)", backend, backendList())
			}

			if err := os.WriteFile(dest, []byte(generateConfig(b)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", string(domain.BackendFile), "Store backend ("+backendList()+")")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}

func isKnownBackend(b domain.StoreBackend) bool {
	for _, vb := range domain.ValidBackends {
		if b == vb {
			return true
		}
	}
	return false
}

func backendList() string {
	names := make([]string, len(domain.ValidBackends))
	for i, b := range domain.ValidBackends {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}

func generateConfig(backend domain.StoreBackend) string {
	cfg := domain.DefaultConfig()

	var b strings.Builder
	b.WriteString("# prodcat configuration\n\n")

	b.WriteString("store:\n")
	fmt.Fprintf(&b, "  backend: %s\n", backend)
	fmt.Fprintf(&b, "  dir: %s\n", cfg.Store.Dir)
	fmt.Fprintf(&b, "  key: %s\n", cfg.Store.Key)
	if backend == domain.BackendPostgres {
		b.WriteString("  dsn: ${PRODCAT_DSN}\n")
	} else {
		b.WriteString("  # dsn: ${PRODCAT_DSN}\n")
	}

	b.WriteString("\nlatency:\n")
	fmt.Fprintf(&b, "  list: %s\n", cfg.Latency.List)
	fmt.Fprintf(&b, "  add: %s\n", cfg.Latency.Add)
	fmt.Fprintf(&b, "  update: %s\n", cfg.Latency.Update)
	fmt.Fprintf(&b, "  delete: %s\n", cfg.Latency.Delete)

	b.WriteString("\nlog:\n")
	fmt.Fprintf(&b, "  level: %s\n", cfg.Log.Level)
	fmt.Fprintf(&b, "  format: %s\n", cfg.Log.Format)

	return b.String()
}
