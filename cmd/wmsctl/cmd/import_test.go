package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"wms/config"
	"wms/database"
	custRepoImp "wms/pkg/customer/repositoryImp"
	"wms/pkg/importer"
	schedRepoImp "wms/pkg/schedule/repositoryImp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dbDriver, dbPath, importOperator = "", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", importer.SheetName))
	header := []any{"Customer Code", "Customer Name", "TransCode", "Collect", "Prepare", "Loading", "Day of the week", "CutOffTime"}
	require.NoError(t, f.SetSheetRow(importer.SheetName, fmt.Sprintf("A%d", importer.HeaderRow), &header))
	for i, r := range rows {
		row := r
		require.NoError(t, f.SetSheetRow(importer.SheetName, fmt.Sprintf("A%d", importer.FirstDataRow+i), &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestImportCmd_WritesWorkbookToDatabase(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "wms.db")
	book := filepath.Join(dir, "schedules.xlsx")
	writeWorkbook(t, book, [][]any{
		{"C1", "Customer One", "T1", 10, 5, 20, 2, "08:00"},
	})

	out, err := run(t, "import", "--db", dbFile, "--operator", "cli", book)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Customers: 1, Leadtimes: 1, Shipping schedules: 1")

	db, err := database.Open(config.AppConfig{DBDriver: "sqlite", DBPath: dbFile})
	require.NoError(t, err)
	c, err := custRepoImp.New(db).GetByCode(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "cli", c.CreatedBy)
	scs, err := schedRepoImp.New(db).GetAllByCustomer(context.Background(), "C1")
	require.NoError(t, err)
	assert.Len(t, scs, 1)

	out, err = run(t, "import", "--db", dbFile, book)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Customers: 0, Leadtimes: 0, Shipping schedules: 0")
}

func TestImportCmd_ReportsRowErrors(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	dir := t.TempDir()
	book := filepath.Join(dir, "schedules.xlsx")
	writeWorkbook(t, book, [][]any{
		{"C1", "", "T1", 10, 5, 20, 2, "08:00"},
	})

	out, err := run(t, "import", "--db", filepath.Join(dir, "wms.db"), book)
	require.EqualError(t, err, "import finished with 1 error(s)")
	assert.Contains(t, out, "error: Row 4: Missing required fields: Customer Name.")
	assert.Contains(t, out, "Customers: 0, Leadtimes: 0, Shipping schedules: 0")
}

func TestImportCmd_RejectsOtherExtensions(t *testing.T) {
	_, err := run(t, "import", "--db", filepath.Join(t.TempDir(), "wms.db"), "schedules.csv")
	assert.EqualError(t, err, "only .xlsx or .xlsm files are supported")
}
