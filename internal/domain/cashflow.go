package domain

import "time"

// CashFlowType classifies a cash flow entry
type CashFlowType string

const (
	CashFlowIncome  CashFlowType = "income"
	CashFlowExpense CashFlowType = "expense"
)

// CashFlowEntry represents one movement of money
type CashFlowEntry struct {
	ID          int64
	Type        CashFlowType
	Category    string
	Description string
	Amount      float64 // always positive; Type carries the sign
	Date        time.Time
	InvoiceID   *int64 // set when the entry was recorded by an invoice payment

	CreatedAt time.Time
}

// CashFlowFilter defines the period for listing entries
type CashFlowFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *CashFlowType
}

// CashFlowSummary aggregates a period of entries
type CashFlowSummary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}
