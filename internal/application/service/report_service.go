package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/cancha-central/pos-api/internal/domain/enum"
	"github.com/cancha-central/pos-api/internal/domain/repository"
	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

// Transaction is the normalized shape every report row is reduced to,
// regardless of which log it came from. Expense amounts are negative so the
// running balance is a plain sum.
type Transaction struct {
	Date   time.Time            `json:"date"`
	Type   enum.TransactionType `json:"type"`
	Method enum.PaymentMethod   `json:"method"`
	Detail string               `json:"detail"`
	Amount int64                `json:"-"` // cents
	Cost   int64                `json:"-"` // cents
	Margin int64                `json:"-"` // cents
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
		Cost   float64 `json:"cost"`
		Margin float64 `json:"margin"`
	}{
		Alias:  Alias(t),
		Amount: float64(t.Amount) / 100,
		Cost:   float64(t.Cost) / 100,
		Margin: float64(t.Margin) / 100,
	})
}

// ReportTotals summarizes the filtered transaction set.
type ReportTotals struct {
	GrossIncome   int64 `json:"-"`
	TotalExpenses int64 `json:"-"`
	NetBalance    int64 `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (t ReportTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		GrossIncome   float64 `json:"gross_income"`
		TotalExpenses float64 `json:"total_expenses"`
		NetBalance    float64 `json:"net_balance"`
	}{
		GrossIncome:   float64(t.GrossIncome) / 100,
		TotalExpenses: float64(t.TotalExpenses) / 100,
		NetBalance:    float64(t.NetBalance) / 100,
	})
}

// Report is the consolidated financial view
type Report struct {
	Transactions []Transaction `json:"transactions"`
	Totals       ReportTotals  `json:"totals"`
}

// ReportFilter contains filtering parameters for the consolidated report
type ReportFilter struct {
	Type      *enum.TransactionType
	Method    *enum.PaymentMethod
	StartDate *time.Time
	EndDate   *time.Time
}

// ReportService merges the income ledger, the paid order log and the expense
// ledger into one transaction list with cost-of-goods and margin per row.
type ReportService struct {
	orderRepo  repository.PaidOrderRepository
	ledgerRepo repository.LedgerRepository
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.PaidOrderRepository, ledgerRepo repository.LedgerRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo, ledgerRepo: ledgerRepo}
}

// BuildReport fetches all four sources, normalizes, filters and totals them.
func (s *ReportService) BuildReport(ctx context.Context, filter *ReportFilter) (*Report, error) {
	if filter == nil {
		filter = &ReportFilter{}
	}

	var transactions []Transaction

	incomes, err := s.ledgerRepo.ListForReport(ctx, enum.LedgerKindIncome, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	for _, e := range incomes {
		detail := e.Concept
		if e.CourtName != nil && *e.CourtName != "" {
			detail = fmt.Sprintf("%s (%s)", e.Concept, *e.CourtName)
		}
		transactions = append(transactions, Transaction{
			Date:   e.EntryDate,
			Type:   enum.TransactionTypeRental,
			Method: e.PaymentMethod,
			Detail: detail,
			Amount: e.Amount,
			Cost:   0,
			Margin: e.Amount,
		})
	}

	orders, err := s.orderRepo.ListForReport(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		txType := enum.TransactionTypeTabOrder
		if o.Channel == enum.SaleChannelAccessory {
			txType = enum.TransactionTypeAccessorySale
		}
		cost := o.LineCost()
		transactions = append(transactions, Transaction{
			Date:   o.PaidAt,
			Type:   txType,
			Method: o.PaymentMethod,
			Detail: fmt.Sprintf("%s %s", o.ReceiptNo, o.TabName),
			Amount: o.Total,
			Cost:   cost,
			Margin: o.Total - cost,
		})
	}

	expenses, err := s.ledgerRepo.ListForReport(ctx, enum.LedgerKindExpense, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		transactions = append(transactions, Transaction{
			Date:   e.EntryDate,
			Type:   enum.TransactionTypeExpense,
			Method: e.PaymentMethod,
			Detail: e.Concept,
			Amount: -e.Amount,
			Cost:   0,
			Margin: -e.Amount,
		})
	}

	filtered := transactions[:0]
	for _, tx := range transactions {
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		if filter.Method != nil && tx.Method != *filter.Method {
			continue
		}
		filtered = append(filtered, tx)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	var totals ReportTotals
	for _, tx := range filtered {
		if tx.Type == enum.TransactionTypeExpense {
			totals.TotalExpenses += -tx.Amount
		} else {
			totals.GrossIncome += tx.Amount
		}
	}
	totals.NetBalance = totals.GrossIncome - totals.TotalExpenses

	return &Report{Transactions: filtered, Totals: totals}, nil
}

// ExportCSV renders the report as CSV, one row per transaction.
func (s *ReportService) ExportCSV(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Date", "Type", "Method", "Detail", "Amount", "Cost", "Margin"})
	for _, tx := range report.Transactions {
		w.Write([]string{
			tx.Date.Format("2006-01-02 15:04"),
			tx.Type.String(),
			tx.Method.String(),
			tx.Detail,
			fmt.Sprintf("%.2f", float64(tx.Amount)/100),
			fmt.Sprintf("%.2f", float64(tx.Cost)/100),
			fmt.Sprintf("%.2f", float64(tx.Margin)/100),
		})
	}
	w.Write([]string{""})
	w.Write([]string{"Gross Income", fmt.Sprintf("%.2f", float64(report.Totals.GrossIncome)/100)})
	w.Write([]string{"Total Expenses", fmt.Sprintf("%.2f", float64(report.Totals.TotalExpenses)/100)})
	w.Write([]string{"Net Balance", fmt.Sprintf("%.2f", float64(report.Totals.NetBalance)/100)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the report as an Excel workbook.
func (s *ReportService) ExportXLSX(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Type", "Method", "Detail", "Amount", "Cost", "Margin"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for row, tx := range report.Transactions {
		values := []interface{}{
			tx.Date.Format("2006-01-02 15:04"),
			tx.Type.String(),
			tx.Method.String(),
			tx.Detail,
			float64(tx.Amount) / 100,
			float64(tx.Cost) / 100,
			float64(tx.Margin) / 100,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	totalsRow := len(report.Transactions) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalsRow), "Gross Income")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalsRow), float64(report.Totals.GrossIncome)/100)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalsRow+1), "Total Expenses")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalsRow+1), float64(report.Totals.TotalExpenses)/100)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalsRow+2), "Net Balance")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", totalsRow+2), float64(report.Totals.NetBalance)/100)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the report as a landscape A4 PDF table.
// truncateDetail shortens free text for the fixed-width PDF detail column,
// cutting on rune boundaries so accented characters are not split mid-byte.
func truncateDetail(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func (s *ReportService) ExportPDF(report *Report) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Consolidated Financial Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(32, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(32, 7, "Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Method", "1", 0, "C", true, 0, "")
	pdf.CellFormat(101, 7, "Detail", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Cost", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Margin", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, tx := range report.Transactions {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}

		detail := truncateDetail(tx.Detail, 55)

		pdf.CellFormat(32, 6, tx.Date.Format("02-Jan-2006 15:04"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(32, 6, tx.Type.String(), "1", 0, "C", true, 0, "")
		pdf.CellFormat(22, 6, tx.Method.String(), "1", 0, "C", true, 0, "")
		pdf.CellFormat(101, 6, detail, "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", float64(tx.Amount)/100), "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", float64(tx.Cost)/100), "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", float64(tx.Margin)/100), "1", 1, "R", true, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(92, 8, fmt.Sprintf("Gross Income: %.2f", float64(report.Totals.GrossIncome)/100), "1", 0, "C", true, 0, "")
	pdf.CellFormat(92, 8, fmt.Sprintf("Total Expenses: %.2f", float64(report.Totals.TotalExpenses)/100), "1", 0, "C", true, 0, "")
	pdf.CellFormat(93, 8, fmt.Sprintf("Net Balance: %.2f", float64(report.Totals.NetBalance)/100), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
