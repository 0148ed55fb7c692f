package handler

import (
	"fmt"
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/xuri/excelize/v2"
)

const paymentsSheet = "Payments"

var paymentExportHeader = []string{
	"ID",
	"Type",
	"Status",
	"Amount",
	"Currency",
	"Description",
	"Client",
	"Team Member",
	"Project",
	"Stripe Session",
	"Created At",
	"Updated At",
}

var paymentExportWidths = []float64{38, 10, 12, 12, 10, 32, 24, 24, 24, 40, 28, 28}

// GeneratePaymentsExport строит книгу XLSX: одна строка на платеж в порядке списка
func GeneratePaymentsExport(payments []*domain.PaymentDetails) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(paymentsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range paymentExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(paymentsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(paymentsSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}

		colName, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(paymentsSheet, colName, colName, paymentExportWidths[col]); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, p := range payments {
		row := []any{
			p.ID,
			string(p.PaymentType),
			string(p.PaymentStatus),
			p.Amount,
			p.Currency,
			deref(p.Description),
			deref(p.ClientName),
			deref(p.TeamMemberName),
			deref(p.ProjectName),
			deref(p.ProviderSessionID),
			formatTime(p.CreatedAt),
			formatTime(p.UpdatedAt),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(paymentsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (h *Handler) ExportPayments(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	payments, err := h.paymentService.List(r.Context(), owner)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	data, err := GeneratePaymentsExport(payments)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=payments.xlsx")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
