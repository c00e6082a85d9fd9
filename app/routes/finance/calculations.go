package finance

import (
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

// StatementRow is one itemized line of a ledger statement with the balance
// after applying it. Exactly one of InAmount and OutAmount is non-zero,
// matching the two-column layout of a printed passbook.
type StatementRow struct {
	ID             string                 `json:"id"`
	TxDate         string                 `json:"tx_date"`
	Type           models.TransactionType `json:"transaction_type"`
	Mode           models.TransactionMode `json:"transaction_mode"`
	Amount         float64                `json:"amount"`
	InAmount       float64                `json:"in_amount"`
	OutAmount      float64                `json:"out_amount"`
	Category       string                 `json:"category,omitempty"`
	Description    string                 `json:"description,omitempty"`
	RunningBalance float64                `json:"running_balance"`
}

// Statement is the computed ledger report for one account and date range.
type Statement struct {
	OpeningBalance float64        `json:"opening_balance"`
	TotalIn        float64        `json:"total_in"`
	TotalOut       float64        `json:"total_out"`
	ClosingBalance float64        `json:"closing_balance"`
	Rows           []StatementRow `json:"rows"`
}

// BuildStatement derives a statement from the account's fixed baseline, the
// signed sum of transactions dated strictly before the window, and the
// in-window transactions in ledger order. Closing always equals opening
// plus total in minus total out.
func BuildStatement(baseline, priorSum float64, txs []*models.FinanceTransaction) *Statement {
	st := &Statement{
		OpeningBalance: baseline + priorSum,
		Rows:           make([]StatementRow, 0, len(txs)),
	}

	running := st.OpeningBalance
	for _, t := range txs {
		row := StatementRow{
			ID:          t.ID,
			TxDate:      t.TxDate.Format("2006-01-02"),
			Type:        t.Type,
			Mode:        t.Mode,
			Amount:      t.Amount,
			Category:    t.Category,
			Description: t.Description,
		}
		if t.Type.IsInflow() {
			st.TotalIn += t.Amount
			row.InAmount = t.Amount
		} else {
			st.TotalOut += t.Amount
			row.OutAmount = t.Amount
		}
		running += t.SignedAmount()
		row.RunningBalance = running

		st.Rows = append(st.Rows, row)
	}

	st.ClosingBalance = st.OpeningBalance + st.TotalIn - st.TotalOut
	return st
}
