package main

import (
	"fmt"
	"io"
	"os"

	partnerapp "github.com/flexo/backend/internal/application/partner"
	"github.com/flexo/backend/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-load records from CSV exports",
	}
	cmd.AddCommand(importCustomersCmd())
	return cmd
}

func importCustomersCmd() *cobra.Command {
	var opts partnerapp.CustomerImportOptions

	cmd := &cobra.Command{
		Use:   "customers FILE",
		Short: "Import customers from a CSV file (';' or ',' separated, UTF-8 or Windows-1252)",
		Example: `  flexoctl import customers clientes.csv --dry-run
  flexoctl import customers - --skip-existing < clientes.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			customers := partnerapp.NewCustomerService(
				persistence.NewGormCustomerRepository(db.DB),
				persistence.NewGormTransportRepository(db.DB),
				persistence.NewGormServiceOrderRepository(db.DB),
				persistence.NewGormPrinterRepository(db.DB),
				persistence.NewGormDieCutBlockRepository(db.DB),
				nil,
			)
			res, err := customers.Import(cmd.Context(), src, opts)
			if err != nil {
				return err
			}
			log.Info("Customer import finished",
				zap.Int("rows", res.Rows),
				zap.Int("imported", res.Imported),
				zap.Int("skipped", res.Skipped),
				zap.Int("failed", res.Failed),
				zap.Bool("dry_run", res.DryRun),
			)
			return printImport(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "validate every row without saving")
	cmd.Flags().BoolVar(&opts.SkipExisting, "skip-existing", false, "skip rows whose document is already registered")
	cmd.Flags().IntVar(&opts.MaxErrors, "max-errors", 100, "row errors to list")
	return cmd
}

func printImport(out io.Writer, res *partnerapp.CustomerImportResult) error {
	verb := "imported"
	if res.DryRun {
		verb = "valid"
	}
	fmt.Fprintf(out, "rows=%d %s=%d skipped=%d failed=%d\n", res.Rows, verb, res.Imported, res.Skipped, res.Failed)
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  %s [%s]\n", e.Error(), e.Code)
	}
	if res.Truncated {
		fmt.Fprintf(out, "  ... %d more\n", res.Failed-len(res.Errors))
	}
	if res.Failed > 0 && !res.DryRun {
		return fmt.Errorf("%d row(s) failed", res.Failed)
	}
	return nil
}
