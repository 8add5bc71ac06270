package importer

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"wms/entities"
	custRepo "wms/pkg/customer/repository"
	ltRepo "wms/pkg/leadtime/repository"
	schedRepo "wms/pkg/schedule/repository"
)

// MacroSource is the VBA behind the template's double-click helpers. It is
// compiled into a vbaProject.bin outside this service.
//
//go:embed macro.bas
var MacroSource string

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeXLSM = "application/vnd.ms-excel.sheet.macroEnabled.12"

	sampleCode  = "SAMPLE"
	sampleName  = "Sample Customer"
	defaultTrns = "TRANS_DEFAULT"
)

var ErrNoCustomers = errors.New("no valid customers found")

var templateHeaders = []string{
	"Customer Code", "Customer Name", "TransCode",
	"CollectTimePerPallet (minute)", "PrepareTimePerPallet (minute)", "LoadingTimePerPallet (minute)",
	"Day of the week", "CutOffTime",
}

// Template is a generated workbook ready to send.
type Template struct {
	FileName    string
	ContentType string
	Body        []byte
}

type TemplateBuilder struct {
	customers  custRepo.CustomerRepository
	leadtimes  ltRepo.LeadtimeRepository
	schedules  schedRepo.ScheduleRepository
	vbaProject []byte
}

// NewTemplateBuilder returns a builder. With a non-empty vbaProject the
// workbook is macro-enabled (.xlsm); otherwise it is a plain .xlsx.
func NewTemplateBuilder(c custRepo.CustomerRepository, l ltRepo.LeadtimeRepository, s schedRepo.ScheduleRepository, vbaProject []byte) *TemplateBuilder {
	return &TemplateBuilder{customers: c, leadtimes: l, schedules: s, vbaProject: vbaProject}
}

func (b *TemplateBuilder) MacroEnabled() bool { return len(b.vbaProject) > 0 }

// Build renders the template for codes, prefilled from the stored lead
// times and schedules. No codes yields a sample template; unknown codes are
// skipped and ErrNoCustomers is returned when none remain.
func (b *TemplateBuilder) Build(ctx context.Context, codes []string, now time.Time) (*Template, error) {
	customers, err := b.resolve(ctx, codes)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f}

	w.title(titleFor(codes, customers))
	w.headers()
	row := FirstDataRow
	for _, c := range customers {
		lts, scs, err := b.existing(ctx, c.CustomerCode)
		if err != nil {
			return nil, err
		}
		row = w.customer(row, c, lts, scs)
	}
	w.finish(row - 1)
	if w.err != nil {
		return nil, w.err
	}

	name := fileNameFor(codes, customers, now)
	ext, ctype := ".xlsx", ContentTypeXLSX
	if b.MacroEnabled() {
		ext, ctype = ".xlsm", ContentTypeXLSM
		codeName := "Sheet1"
		if err := f.SetSheetProps(SheetName, &excelize.SheetPropsOptions{CodeName: &codeName}); err != nil {
			return nil, err
		}
		if err := f.AddVBAProject(b.vbaProject); err != nil {
			return nil, fmt.Errorf("attach vba project: %w", err)
		}
	}
	// WriteTo picks the package content type from the path extension.
	f.Path = name + ext
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return &Template{FileName: name + ext, ContentType: ctype, Body: buf.Bytes()}, nil
}

func (b *TemplateBuilder) resolve(ctx context.Context, codes []string) ([]entities.Customer, error) {
	if len(codes) == 0 {
		return []entities.Customer{{CustomerCode: sampleCode, CustomerName: sampleName}}, nil
	}
	found, err := b.customers.GetByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(codes))
	for _, code := range codes {
		if c, ok := found[code]; ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoCustomers
	}
	return out, nil
}

func (b *TemplateBuilder) existing(ctx context.Context, code string) ([]entities.LeadtimeMaster, []entities.ShippingSchedule, error) {
	if code == sampleCode {
		return nil, nil, nil
	}
	lts, err := b.leadtimes.GetAllByCustomer(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	scs, err := b.schedules.GetAllByCustomer(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	return lts, scs, nil
}

func titleFor(codes []string, customers []entities.Customer) string {
	switch {
	case len(codes) == 0:
		return "SHIPPING SCHEDULE TEMPLATE"
	case len(customers) == 1:
		return fmt.Sprintf("CUSTOMER SHIPPING SCHEDULE - %s (%s)", customers[0].CustomerName, customers[0].CustomerCode)
	default:
		return "MULTIPLE CUSTOMER SHIPPING SCHEDULES"
	}
}

func fileNameFor(codes []string, customers []entities.Customer, now time.Time) string {
	switch {
	case len(codes) == 0:
		return "ShippingSchedule_Template"
	case len(customers) == 1:
		return fmt.Sprintf("ShippingSchedule_%s_%s", customers[0].CustomerCode, now.Format("20060102"))
	default:
		return "ShippingSchedules_Multiple_" + now.Format("20060102")
	}
}

// sheetWriter keeps the first excelize error so the layout code reads
// straight through.
type sheetWriter struct {
	f      *excelize.File
	err    error
	border []excelize.Border
}

func (w *sheetWriter) do(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *sheetWriter) set(col, row int, v any) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.do(err)
		return
	}
	w.do(w.f.SetCellValue(SheetName, cell, v))
}

func (w *sheetWriter) style(s *excelize.Style, fromCol, fromRow, toCol, toRow int) {
	id, err := w.f.NewStyle(s)
	if err != nil {
		w.do(err)
		return
	}
	from, _ := excelize.CoordinatesToCellName(fromCol, fromRow)
	to, _ := excelize.CoordinatesToCellName(toCol, toRow)
	w.do(w.f.SetCellStyle(SheetName, from, to, id))
}

func (w *sheetWriter) merge(col, fromRow, toRow int) {
	if fromRow >= toRow {
		return
	}
	from, _ := excelize.CoordinatesToCellName(col, fromRow)
	to, _ := excelize.CoordinatesToCellName(col, toRow)
	w.do(w.f.MergeCell(SheetName, from, to))
}

func (w *sheetWriter) title(text string) {
	w.set(1, 1, text)
	w.do(w.f.MergeCell(SheetName, "A1", "H1"))
	w.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"ADD8E6"}},
	}, 1, 1, ColumnCount, 1)
}

func (w *sheetWriter) headers() {
	w.border = []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	for i, h := range templateHeaders {
		w.set(i+1, HeaderRow, h)
	}
	w.style(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Border:    w.border,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}, 1, HeaderRow, ColumnCount, HeaderRow)
}

// customer writes one block of six weekday rows (Monday to Saturday) per
// transport code and returns the next free row.
func (w *sheetWriter) customer(row int, c entities.Customer, lts []entities.LeadtimeMaster, scs []entities.ShippingSchedule) int {
	byTrans := map[string]entities.LeadtimeMaster{}
	for _, lt := range lts {
		if _, ok := byTrans[lt.TransCd]; !ok {
			byTrans[lt.TransCd] = lt
		}
	}
	type dayKey struct {
		trans string
		day   time.Weekday
	}
	cutoffs := map[dayKey]time.Duration{}
	transSet := map[string]bool{}
	for t := range byTrans {
		transSet[t] = true
	}
	for _, s := range scs {
		k := dayKey{s.TransCd, s.Weekday}
		if _, ok := cutoffs[k]; !ok {
			cutoffs[k] = time.Duration(s.CutOffTime)
		}
		transSet[s.TransCd] = true
	}
	trans := make([]string, 0, len(transSet))
	for t := range transSet {
		trans = append(trans, t)
	}
	sort.Strings(trans)
	if len(trans) == 0 {
		trans = []string{defaultTrns}
	}

	custStart := row
	w.set(colCustomerCode, row, c.CustomerCode)
	w.set(colCustomerName, row, c.CustomerName)
	for _, t := range trans {
		lt, ok := byTrans[t]
		if !ok {
			lt = entities.LeadtimeMaster{}
		}
		transStart := row
		w.set(colTransCd, row, t)
		w.set(colCollect, row, durationCell(lt.CollectTimePerPallet))
		w.set(colPrepare, row, durationCell(lt.PrepareTimePerPallet))
		w.set(colLoading, row, durationCell(lt.LoadingTimePerColumn))
		for day := time.Monday; day <= time.Saturday; day++ {
			w.set(colWeekday, row, ExcelWeekday(day))
			cut, ok := cutoffs[dayKey{t, day}]
			if !ok {
				cut = 12 * time.Hour
			}
			w.set(colCutOff, row, cut.Hours()/24)
			row++
		}
		for col := colTransCd; col <= colLoading; col++ {
			w.merge(col, transStart, row-1)
		}
	}
	w.merge(colCustomerCode, custStart, row-1)
	w.merge(colCustomerName, custStart, row-1)
	return row
}

func durationCell(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func (w *sheetWriter) finish(lastRow int) {
	widths := []float64{15, 30, 20, 30, 30, 30, 15, 15}
	for i, wd := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		w.do(w.f.SetColWidth(SheetName, col, col, wd))
	}
	if lastRow < FirstDataRow {
		return
	}
	middle := &excelize.Alignment{Vertical: "center"}
	w.style(&excelize.Style{Border: w.border, Alignment: middle}, colCustomerCode, FirstDataRow, colTransCd, lastRow)
	twoDp := "0.00"
	w.style(&excelize.Style{Border: w.border, Alignment: middle, CustomNumFmt: &twoDp}, colCollect, FirstDataRow, colLoading, lastRow)
	w.style(&excelize.Style{Border: w.border, Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"}}, colWeekday, FirstDataRow, colWeekday, lastRow)
	clock := "hh:mm"
	w.style(&excelize.Style{Border: w.border, Alignment: middle, CustomNumFmt: &clock}, colCutOff, FirstDataRow, colCutOff, lastRow)

	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("G%d:G%d", FirstDataRow, lastRow)
	w.do(dv.SetRange(1, 7, excelize.DataValidationTypeWhole, excelize.DataValidationOperatorBetween))
	w.do(w.f.AddDataValidation(SheetName, dv))
	w.do(w.f.SetPageLayout(SheetName, &excelize.PageLayoutOptions{Orientation: strPtr("landscape")}))
}

func strPtr(s string) *string { return &s }
