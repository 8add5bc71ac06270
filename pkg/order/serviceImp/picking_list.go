package serviceImp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"wms/entities"
	svc "wms/pkg/order/service"
)

const pickingSheet = "Picking List"

var pickingHeaders = []string{
	"Part No", "Pallet Size", "Quantity", "Total Pallets", "Warehouse", "Pallet No", "PL Status", "Collected Date",
}

// PLStatusText is the label printed for a pallet status.
func PLStatusText(s entities.PLStatus) string {
	switch s {
	case entities.PLNone:
		return "None"
	case entities.PLCollected:
		return "Đã Thu Thập"
	case entities.PLExported:
		return "Đã Check 3 điểm"
	case entities.PLDelivered:
		return "Đã Load lên Cont"
	case entities.PLCanceled:
		return "Bị Huỷ"
	default:
		return fmt.Sprintf("Unknown (%d)", s)
	}
}

func (s *service) PickingList(ctx context.Context, id uuid.UUID) (*svc.File, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details := o.OrderDetails
	if len(details) == 0 {
		if details, err = s.details.GetByOrderID(ctx, id); err != nil {
			return nil, err
		}
	}
	body, err := renderPickingList(*o, details)
	if err != nil {
		return nil, fmt.Errorf("render picking list: %w", err)
	}
	return &svc.File{
		FileName:    fmt.Sprintf("PickingList_Order_%s_%s.xlsx", o.UId, o.ShipDate.Format("20060102")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        body,
	}, nil
}

func renderPickingList(o entities.Order, details []entities.OrderDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", pickingSheet); err != nil {
		return nil, err
	}
	var firstErr error
	check := func(err error) {
		if firstErr == nil && err != nil {
			firstErr = err
		}
	}
	styleID := func(st *excelize.Style) int {
		id, err := f.NewStyle(st)
		check(err)
		return id
	}
	setRow := func(row int, vals []any) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		check(f.SetSheetRow(pickingSheet, cell, &vals))
	}
	fill := func(hex string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}}
	}
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	lastCol := len(pickingHeaders)
	lastColName, _ := excelize.ColumnNumberToName(lastCol)

	check(f.SetCellValue(pickingSheet, "A1", "ORDER INFORMATION"))
	check(f.MergeCell(pickingSheet, "A1", lastColName+"1"))
	check(f.SetCellStyle(pickingSheet, "A1", lastColName+"1", styleID(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: fill("4472C4"),
	})))

	setRow(3, []any{
		"Order UId:", o.UId.String(),
		"Customer:", o.CustomerCode,
		"Ship Date:", o.ShipDate.Format("2006-01-02"),
		"Total Pallets:", fmt.Sprint(o.TotalPallet),
	})
	check(f.SetCellStyle(pickingSheet, "A3", lastColName+"3", styleID(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: fill("ECF0F1"),
	})))

	header := make([]any, len(pickingHeaders))
	for i, h := range pickingHeaders {
		header[i] = h
	}
	setRow(5, header)
	check(f.SetCellStyle(pickingSheet, "A5", lastColName+"5", styleID(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   fill("3498DB"),
		Border: thin,
	})))

	plain := styleID(&excelize.Style{Border: thin})
	done := styleID(&excelize.Style{Border: thin, Fill: fill("90EE90")})
	canceled := styleID(&excelize.Style{Border: thin, Fill: fill("FFB6C1")})

	row := 6
	for _, d := range details {
		if len(d.ShoppingLists) == 0 {
			setRow(row, []any{d.PartNo, d.PalletSize, d.Quantity, d.TotalPallet, d.Warehouse, "No Pallets", "N/A", "N/A"})
			check(f.SetCellStyle(pickingSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastColName, row), plain))
			row++
			continue
		}
		for _, sl := range d.ShoppingLists {
			collected := "N/A"
			if sl.CollectedDate != nil {
				collected = sl.CollectedDate.Format("2006-01-02 15:04")
			}
			setRow(row, []any{d.PartNo, d.PalletSize, d.Quantity, d.TotalPallet, d.Warehouse, sl.PalletNo, PLStatusText(sl.PLStatus), collected})
			check(f.SetCellStyle(pickingSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastColName, row), plain))
			switch {
			case sl.PLStatus.Reached(entities.PLCollected):
				check(f.SetCellStyle(pickingSheet, fmt.Sprintf("G%d", row), fmt.Sprintf("H%d", row), done))
			case sl.PLStatus == entities.PLCanceled:
				check(f.SetCellStyle(pickingSheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), canceled))
			}
			row++
		}
	}
	check(f.SetColWidth(pickingSheet, "A", lastColName, 18))
	if firstErr != nil {
		return nil, firstErr
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
