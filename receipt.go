package banco

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

type Operation string

const (
	OpAtmWithdrawal     Operation = "atm_withdrawal"
	OpOwnTransfer       Operation = "own_transfer"
	OpCardPayment       Operation = "card_payment"
	OpInterbankTransfer Operation = "interbank_transfer"
)

// Receipt describes the monetary effect of one permitted operation.
// Balance is the source account's balance after the operation;
// DestinationBalance is nil when no destination was credited by this core.
type Receipt struct {
	Operation          Operation
	Amount             Money
	Fee                Money
	Balance            Money
	DestinationBalance *Money
	At                 time.Time
}

// Total is what left the source account.
func (r Receipt) Total() Money {
	t, err := r.Amount.Add(r.Fee)
	if err != nil {
		return r.Amount
	}
	return t
}

func WriteReceiptPDF(w io.Writer, r Receipt) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Operation receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Operation", string(r.Operation)},
		{"Date", r.At.UTC().Format(time.RFC3339)},
		{"Amount", r.Amount.String()},
		{"Fee", r.Fee.String()},
		{"Total charged", r.Total().String()},
		{"Balance after", r.Balance.String()},
	}
	if r.DestinationBalance != nil {
		rows = append(rows, [2]string{"Destination balance after", r.DestinationBalance.String()})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(55, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row[1], "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering receipt: %w", err)
	}
	return nil
}
