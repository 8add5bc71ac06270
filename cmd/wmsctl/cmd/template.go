package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	custRepoImp "wms/pkg/customer/repositoryImp"
	"wms/pkg/importer"
	ltRepoImp "wms/pkg/leadtime/repositoryImp"
	schedRepoImp "wms/pkg/schedule/repositoryImp"
)

var (
	templateCustomers  []string
	templateOutDir     string
	templatePrintMacro bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a ShippingSchedule template prefilled from the database",
	Example: `
  # Blank sample template
  wmsctl template

  # Prefilled for two customers
  wmsctl template --customers C001,C002 -o ./out

  # Print the VBA source to compile into TEMPLATE_VBA_PROJECT
  wmsctl template --print-macro > ShippingSchedule.bas
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if templatePrintMacro {
			_, err := fmt.Fprint(cmd.OutOrStdout(), importer.MacroSource)
			return err
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		vba, err := cfg.LoadVBAProject()
		if err != nil {
			return err
		}
		var codes []string
		for _, c := range templateCustomers {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
		b := importer.NewTemplateBuilder(custRepoImp.New(db), ltRepoImp.New(db), schedRepoImp.New(db), vba)
		tpl, err := b.Build(context.Background(), codes, time.Now())
		if err != nil {
			return err
		}
		path := filepath.Join(templateOutDir, tpl.FileName)
		if err := os.WriteFile(path, tpl.Body, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringSliceVar(&templateCustomers, "customers", nil, "Customer codes to prefill (comma separated)")
	templateCmd.Flags().StringVarP(&templateOutDir, "output", "o", ".", "Directory to write the workbook to")
	templateCmd.Flags().BoolVar(&templatePrintMacro, "print-macro", false, "Print the template VBA source and exit")
}
