package billing

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

const receiptWidth = 60

var hundred = decimal.NewFromInt(100)

// ReceiptFileName returns the canonical file name for an order's receipt.
func ReceiptFileName(orderID int64) string {
	return fmt.Sprintf("receipt_%d.txt", orderID)
}

// WriteReceipt renders a human-readable, fixed-width receipt for the bill.
// The layout is stable: callers may diff receipts across runs.
func WriteReceipt(w io.Writer, orderID int64, bill Bill) error {
	rule := strings.Repeat("=", receiptWidth)
	thin := strings.Repeat("-", receiptWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(center("CAFE - INVOICE") + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Order ID: #%d\n", orderID)
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "%-35s %-5s %-10s %-10s\n", "Item", "Qty", "Price", "Total")
	b.WriteString(thin + "\n")

	for _, item := range bill.Items {
		fmt.Fprintf(&b, "%-35s %-5d Rs.%-8s Rs.%-8s\n",
			truncate(item.Name, 35),
			item.Quantity,
			item.UnitPrice.StringFixed(2),
			item.LineTotal.StringFixed(2),
		)
	}

	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%-50s Rs.%s\n", "Subtotal:", bill.Subtotal.StringFixed(2))
	taxLabel := fmt.Sprintf("GST (%s%%):", bill.TaxRate.Mul(hundred).String())
	fmt.Fprintf(&b, "%-50s Rs.%s\n", taxLabel, bill.TaxAmount.StringFixed(2))
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-50s Rs.%s\n", "GRAND TOTAL:", bill.GrandTotal.StringFixed(2))
	b.WriteString(rule + "\n\n")
	b.WriteString(center("Thank you for visiting Cafe!") + "\n")
	b.WriteString(center("Please visit again! :)") + "\n")
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
