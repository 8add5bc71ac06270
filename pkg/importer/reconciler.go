package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"wms/entities"
	custRepo "wms/pkg/customer/repository"
	ltRepo "wms/pkg/leadtime/repository"
	schedRepo "wms/pkg/schedule/repository"
)

// Reconciler merges a ShippingSchedule worksheet into the customer,
// lead-time and schedule tables. Writes are per record with no enclosing
// transaction; a failed write is reported and the rest of the batch
// continues.
type Reconciler struct {
	customers custRepo.CustomerRepository
	leadtimes ltRepo.LeadtimeRepository
	schedules schedRepo.ScheduleRepository
	operator  string
}

func NewReconciler(c custRepo.CustomerRepository, l ltRepo.LeadtimeRepository, s schedRepo.ScheduleRepository, operator string) *Reconciler {
	if operator == "" {
		operator = "ExcelImport"
	}
	return &Reconciler{customers: c, leadtimes: l, schedules: s, operator: operator}
}

type importRow struct {
	line         int
	customerCode string
	customerName string
	transCd      string
	collect      decimal.Decimal
	prepare      decimal.Decimal
	loading      decimal.Decimal
	excelWeekday int
	cutOff       datatypes.Time
}

type ltKey struct{ customer, trans string }

type schedKey struct {
	customer string
	trans    string
	weekday  time.Weekday
}

func (k schedKey) String() string { return fmt.Sprintf("%s-%s-%d", k.customer, k.trans, k.weekday) }

// importContext carries one import through its passes.
type importContext struct {
	context.Context
	result *Result

	rows          []importRow
	customerCodes []string
	ltKeys        map[ltKey]bool
	schedKeys     map[schedKey]bool

	customers map[string]entities.Customer
	leadtimes map[ltKey]entities.LeadtimeMaster
	schedules map[schedKey]entities.ShippingSchedule
}

// Import reads a workbook and reconciles it. Every problem, including an
// unreadable file, ends up in the result's Errors.
func (r *Reconciler) Import(ctx context.Context, src io.Reader) *Result {
	res := &Result{Errors: []string{}, Warnings: []string{}}
	f, err := excelize.OpenReader(src)
	if err != nil {
		res.errorf("Error processing file: %v", err)
		return res
	}
	defer f.Close()
	r.ImportFile(ctx, f, res)
	return res
}

// ImportFile reconciles an already opened workbook into res.
func (r *Reconciler) ImportFile(ctx context.Context, f *excelize.File, res *Result) {
	sheet, ok := FindSheet(f)
	if !ok {
		res.errorf("Sheet '%s' not found. Please use a single sheet named '%s'.", SheetName, SheetName)
		return
	}
	grid, err := LoadGrid(f, sheet)
	if err != nil {
		res.errorf("Error processing file: %v", err)
		return
	}
	ic := &importContext{
		Context:   ctx,
		result:    res,
		ltKeys:    map[ltKey]bool{},
		schedKeys: map[schedKey]bool{},
	}
	if !r.parse(ic, grid) {
		return
	}
	if err := r.fetch(ic); err != nil {
		res.errorf("Error processing file: %v", err)
		return
	}
	r.reconcile(ic)

	logrus.WithFields(logrus.Fields{
		"rows":      len(ic.rows),
		"customers": res.CustomersAdded,
		"leadtimes": res.LeadtimesAdded,
		"schedules": res.SchedulesAdded,
		"errors":    len(res.Errors),
		"warnings":  len(res.Warnings),
	}).Info("schedule import finished")
}

// parse validates every non-empty data row and collects the keys to load.
func (r *Reconciler) parse(ic *importContext, g *Grid) bool {
	last := g.LastDataRow()
	if last < FirstDataRow {
		ic.result.errorf("No data rows found (only header or empty sheet).")
		return false
	}
	seen := map[string]bool{}
	for line := FirstDataRow; line <= last; line++ {
		if g.RowEmpty(line) {
			continue
		}
		row, ok := parseRow(ic.result, g, line)
		if !ok {
			continue
		}
		ic.rows = append(ic.rows, row)
		if !seen[row.customerCode] {
			seen[row.customerCode] = true
			ic.customerCodes = append(ic.customerCodes, row.customerCode)
		}
		ic.ltKeys[ltKey{row.customerCode, row.transCd}] = true
		ic.schedKeys[schedKey{row.customerCode, row.transCd, DBWeekday(row.excelWeekday)}] = true
	}
	if len(ic.rows) == 0 {
		if ic.result.Success() {
			ic.result.errorf("No valid data rows found.")
		}
		return false
	}
	return true
}

func parseRow(res *Result, g *Grid, line int) (importRow, bool) {
	row := importRow{
		line:         line,
		customerCode: strings.TrimSpace(g.Merged(line, colCustomerCode).Text),
		customerName: strings.TrimSpace(g.Merged(line, colCustomerName).Text),
		transCd:      strings.TrimSpace(g.Merged(line, colTransCd).Text),
	}
	var missing []string
	if row.customerCode == "" {
		missing = append(missing, "Customer Code")
	}
	if row.customerName == "" {
		missing = append(missing, "Customer Name")
	}
	if row.transCd == "" {
		missing = append(missing, "TransCode")
	}
	var ok bool
	if row.collect, ok = ParseDuration(g.Merged(line, colCollect)); !ok {
		missing = append(missing, "CollectTimePerPallet")
	}
	if row.prepare, ok = ParseDuration(g.Merged(line, colPrepare)); !ok {
		missing = append(missing, "PrepareTimePerPallet")
	}
	if row.loading, ok = ParseDuration(g.Merged(line, colLoading)); !ok {
		missing = append(missing, "LoadingTimePerPallet")
	}

	wdCell := g.Cell(line, colWeekday)
	badWeekday := false
	if wdCell.Blank() {
		missing = append(missing, "Day of the week")
	} else if wd, ok := ParseExcelWeekday(wdCell); ok && wd >= 1 && wd <= 7 {
		row.excelWeekday = wd
	} else {
		res.errorf("Row %d: Invalid weekday '%s' (Text='%s'). Expected 2-7 for Thứ 2-7 (or 1 for CN), or day name.",
			line, strings.TrimSpace(wdCell.Raw), strings.TrimSpace(wdCell.Text))
		badWeekday = true
	}
	if len(missing) > 0 {
		res.errorf("Row %d: Missing required fields: %s.", line, strings.Join(missing, ", "))
		return row, false
	}
	if badWeekday {
		return row, false
	}

	cutCell := g.Cell(line, colCutOff)
	cut := ParseCutOff(cutCell)
	if !cut.Parsed {
		res.warnf("Row %d: Invalid cutOffTime '%s' (Text='%s'). Set to default 00:00.",
			line, strings.TrimSpace(cutCell.Raw), strings.TrimSpace(cutCell.Text))
	}
	row.cutOff = cut.Time
	return row, true
}

// fetch loads the existing records for every collected key in three queries.
func (r *Reconciler) fetch(ic *importContext) error {
	stored, err := r.customers.GetByCodes(ic, ic.customerCodes)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	wantCodes := make(map[string]bool, len(ic.customerCodes))
	for _, code := range ic.customerCodes {
		wantCodes[code] = true
	}
	custs := make([]entities.Customer, 0, len(stored))
	for _, c := range stored {
		custs = append(custs, c)
	}
	ic.customers = matchStored(wantCodes, custs,
		func(c entities.Customer) string { return c.CustomerCode }, foldCode)

	lts, err := r.leadtimes.GetAllByCustomers(ic, ic.customerCodes)
	if err != nil {
		return fmt.Errorf("load leadtimes: %w", err)
	}
	ic.leadtimes = matchStored(ic.ltKeys, lts,
		func(lt entities.LeadtimeMaster) ltKey { return ltKey{lt.CustomerCode, lt.TransCd} }, ltKey.fold)

	scs, err := r.schedules.GetAllByCustomers(ic, ic.customerCodes)
	if err != nil {
		return fmt.Errorf("load schedules: %w", err)
	}
	ic.schedules = matchStored(ic.schedKeys, scs,
		func(s entities.ShippingSchedule) schedKey { return schedKey{s.CustomerCode, s.TransCd, s.Weekday} }, schedKey.fold)
	return nil
}

// matchStored indexes the stored records under the keys the sheet asked for.
// An exact key wins. Otherwise a record whose folded key matches is used:
// the database only returns such a record when its collation already treats
// the two codes as equal.
func matchStored[K comparable, V any](want map[K]bool, stored []V, key func(V) K, fold func(K) K) map[K]V {
	exact := make(map[K]V, len(stored))
	folded := make(map[K]V, len(stored))
	for _, v := range stored {
		k := key(v)
		exact[k] = v
		folded[fold(k)] = v
	}
	out := make(map[K]V, len(want))
	for k := range want {
		if v, ok := exact[k]; ok {
			out[k] = v
		} else if v, ok := folded[fold(k)]; ok {
			out[k] = v
		}
	}
	return out
}

// foldCode normalises a code the way a case-insensitive PAD SPACE collation
// compares it.
func foldCode(s string) string { return strings.ToLower(strings.TrimRight(s, " ")) }

func (k ltKey) fold() ltKey { return ltKey{foldCode(k.customer), foldCode(k.trans)} }

func (k schedKey) fold() schedKey {
	return schedKey{foldCode(k.customer), foldCode(k.trans), k.weekday}
}

// reconcile walks the rows in file order. Customers and lead times are
// handled once per key; for schedules the first row of a key wins.
func (r *Reconciler) reconcile(ic *importContext) {
	doneCustomers := map[string]bool{}
	doneLeadtimes := map[ltKey]bool{}
	doneSchedules := map[schedKey]bool{}

	for _, row := range ic.rows {
		if !doneCustomers[row.customerCode] {
			r.upsertCustomer(ic, row)
			doneCustomers[row.customerCode] = true
		}
		lk := ltKey{row.customerCode, row.transCd}
		if !doneLeadtimes[lk] {
			r.upsertLeadtime(ic, row, lk)
			doneLeadtimes[lk] = true
		}
		sk := schedKey{row.customerCode, row.transCd, DBWeekday(row.excelWeekday)}
		if doneSchedules[sk] {
			continue
		}
		r.upsertSchedule(ic, row, sk)
		doneSchedules[sk] = true
	}
}

func (r *Reconciler) upsertCustomer(ic *importContext, row importRow) {
	existing, found := ic.customers[row.customerCode]
	if found {
		if existing.CustomerName == row.customerName {
			return
		}
		existing.CustomerName = row.customerName
		existing.UpdatedBy = r.operator
		if err := r.customers.UpdateByCode(ic, row.customerCode, &existing); err != nil {
			r.writeFailed(ic, err, "Failed to update customer %s.", row.customerCode)
			return
		}
		ic.customers[row.customerCode] = existing
		ic.result.CustomersAdded++
		return
	}
	c := entities.Customer{
		CustomerCode: row.customerCode,
		CustomerName: row.customerName,
		CreatedBy:    r.operator,
		UpdatedBy:    r.operator,
	}
	if err := r.customers.Create(ic, &c); err != nil {
		r.writeFailed(ic, err, "Failed to create customer %s.", row.customerCode)
		return
	}
	ic.customers[row.customerCode] = c
	ic.result.CustomersAdded++
}

func (r *Reconciler) upsertLeadtime(ic *importContext, row importRow, k ltKey) {
	incoming := entities.LeadtimeMaster{
		CustomerCode:         row.customerCode,
		TransCd:              row.transCd,
		CollectTimePerPallet: row.collect,
		PrepareTimePerPallet: row.prepare,
		LoadingTimePerColumn: row.loading,
		CreatedBy:            r.operator,
		UpdatedBy:            r.operator,
	}
	existing, found := ic.leadtimes[k]
	if found {
		if existing.SameDurations(incoming) {
			return
		}
		if err := r.leadtimes.UpdateByKey(ic, k.customer, k.trans, &incoming); err != nil {
			r.writeFailed(ic, err, "Failed to update leadtime %s-%s.", k.customer, k.trans)
			return
		}
	} else if err := r.leadtimes.Create(ic, &incoming); err != nil {
		r.writeFailed(ic, err, "Failed to create leadtime %s-%s.", k.customer, k.trans)
		return
	}
	ic.leadtimes[k] = incoming
	ic.result.LeadtimesAdded++
}

func (r *Reconciler) upsertSchedule(ic *importContext, row importRow, k schedKey) {
	existing, found := ic.schedules[k]
	if found {
		if existing.CutOffTime == row.cutOff || IsMidnight(row.cutOff) {
			return
		}
		existing.CutOffTime = row.cutOff
		existing.UpdatedBy = r.operator
		if err := r.schedules.UpdateByKey(ic, k.customer, k.trans, k.weekday, &existing); err != nil {
			r.writeFailed(ic, err, "Failed to update shipping schedule %s (Excel Weekday=%d).", k, row.excelWeekday)
			return
		}
		ic.schedules[k] = existing
		ic.result.SchedulesAdded++
		return
	}
	s := entities.ShippingSchedule{
		CustomerCode: k.customer,
		TransCd:      k.trans,
		Weekday:      k.weekday,
		CutOffTime:   row.cutOff,
		CreatedBy:    r.operator,
		UpdatedBy:    r.operator,
	}
	if err := r.schedules.Create(ic, &s); err != nil {
		r.writeFailed(ic, err, "Failed to create shipping schedule %s (Excel Weekday=%d).", k, row.excelWeekday)
		return
	}
	ic.schedules[k] = s
	ic.result.SchedulesAdded++
}

func (r *Reconciler) writeFailed(ic *importContext, err error, format string, args ...any) {
	ic.result.errorf(format, args...)
	logrus.WithError(err).Warnf(format, args...)
}
