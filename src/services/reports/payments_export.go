package reports

import (
	"bytes"
	"fmt"

	"summer-camp-server/src/models"

	"github.com/xuri/excelize/v2"
)

const PaymentsSheet = "Payments"

var paymentHeaders = []string{"Payment ID", "Email", "Class ID", "Class", "Price", "Transaction ID", "Date"}

// PaymentsWorkbook สร้างไฟล์ xlsx ของรายการชำระเงินทั้งหมด (หนึ่งแถวต่อหนึ่งรายการ)
func PaymentsWorkbook(payments []models.Payment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PaymentsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, header := range paymentHeaders {
		if err := setCell(f, col+1, 1, header); err != nil {
			return nil, err
		}
	}

	var total float64
	for i, p := range payments {
		row := i + 2
		values := []interface{}{p.ID.Hex(), p.MyEmail, p.ClassID, p.ClassName, p.Price, p.TransactionID, p.Date}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
		total += p.Price
	}

	totalRow := len(payments) + 2
	if err := setCell(f, 4, totalRow, "Total"); err != nil {
		return nil, err
	}
	if err := setCell(f, 5, totalRow, total); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(PaymentsSheet, cell, value)
}
