package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	custRepoImp "wms/pkg/customer/repositoryImp"
	"wms/pkg/importer"
	ltRepoImp "wms/pkg/leadtime/repositoryImp"
	schedRepoImp "wms/pkg/schedule/repositoryImp"
)

var importOperator string

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx|xlsm>",
	Short: "Import a ShippingSchedule workbook into customers, lead times and schedules",
	Example: `
  # Import a filled-in template
  wmsctl import ./ShippingSchedule_C001_20260105.xlsm

  # Import against another database
  wmsctl import --db ./staging.db schedules.xlsx
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ext := strings.ToLower(filepath.Ext(args[0]))
		if ext != ".xlsx" && ext != ".xlsm" {
			return fmt.Errorf("only .xlsx or .xlsm files are supported")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		db, err := openDB()
		if err != nil {
			return err
		}
		op := importOperator
		if op == "" {
			op = cfg.ImportOperator
		}
		rec := importer.NewReconciler(custRepoImp.New(db), ltRepoImp.New(db), schedRepoImp.New(db), op)
		res := rec.Import(context.Background(), f)

		out := cmd.OutOrStdout()
		for _, w := range res.Warnings {
			fmt.Fprintln(out, "warning:", w)
		}
		for _, e := range res.Errors {
			fmt.Fprintln(out, "error:", e)
		}
		fmt.Fprintf(out, "Customers: %d, Leadtimes: %d, Shipping schedules: %d\n",
			res.CustomersAdded, res.LeadtimesAdded, res.SchedulesAdded)
		if !res.Success() {
			return fmt.Errorf("import finished with %d error(s)", len(res.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importOperator, "operator", "", "Name stamped on created/updated records (default IMPORT_OPERATOR)")
}
