// Package billing implements the pricing engine: pure bill computation over
// resolved catalog lines, and rendering of printable receipts.
package billing

import "github.com/shopspring/decimal"

// DefaultTaxRate is the GST rate applied to restaurant items (5%). It is the
// configuration default, not a constant of the engine; callers pass the rate
// in effect.
var DefaultTaxRate = decimal.NewFromFloat(0.05)

// Line is one resolved order line: a catalog item at the price in effect at
// call time, with the requested quantity. Quantities are validated upstream.
type Line struct {
	ItemID    int64           `json:"itemId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// BillItem is a priced line within a bill.
type BillItem struct {
	ItemID    int64           `json:"itemId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Bill is the computed pricing summary for a set of lines. It is transient;
// only the aggregate and per-line totals are persisted.
type Bill struct {
	Items      []BillItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxRate    decimal.Decimal `json:"taxRate"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// Calculate produces a Bill for the given lines at the given tax rate.
// Line totals are unit price times quantity, the subtotal is their sum in
// encounter order, tax is subtotal times rate, and the grand total is
// subtotal plus tax. Decimal arithmetic keeps every identity exact; rounding
// to two places happens only at persistence and rendering.
//
// Calculate has no side effects and performs no catalog access: callers
// resolve items first and drop the ones they could not resolve.
func Calculate(lines []Line, taxRate decimal.Decimal) Bill {
	bill := Bill{
		Items:    make([]BillItem, 0, len(lines)),
		Subtotal: decimal.Zero,
		TaxRate:  taxRate,
	}

	for _, line := range lines {
		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		bill.Items = append(bill.Items, BillItem{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		bill.Subtotal = bill.Subtotal.Add(lineTotal)
	}

	bill.TaxAmount = bill.Subtotal.Mul(taxRate)
	bill.GrandTotal = bill.Subtotal.Add(bill.TaxAmount)

	return bill
}

// Reconstruct rebuilds the bill of a past sale from its persisted figures:
// the recorded line totals and the recorded grand total. The tax amount is
// the difference between the two, and the rate is derived from it, so the
// result reflects the sale as it was charged even if the configured rate has
// changed since.
func Reconstruct(items []BillItem, grandTotal decimal.Decimal) Bill {
	bill := Bill{
		Items:      items,
		Subtotal:   decimal.Zero,
		GrandTotal: grandTotal,
	}

	for _, item := range items {
		bill.Subtotal = bill.Subtotal.Add(item.LineTotal)
	}

	bill.TaxAmount = grandTotal.Sub(bill.Subtotal)
	if bill.Subtotal.IsPositive() {
		bill.TaxRate = bill.TaxAmount.Div(bill.Subtotal)
	} else {
		bill.TaxRate = decimal.Zero
	}

	return bill
}
