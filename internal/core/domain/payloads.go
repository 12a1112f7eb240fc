package domain

// Canned demo outputs, one shape per tool. The field names and nesting are
// the public contract of the demo; the literals are illustrative only and
// intentionally not cross-checked (totals are not recomputed from items).

type BankTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
}

type BankStatementData struct {
	AccountName   string            `json:"account_name"`
	AccountNumber string            `json:"account_number"`
	Currency      string            `json:"currency"`
	Transactions  []BankTransaction `json:"transactions"`
}

type CardTransaction struct {
	Date     string  `json:"date"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type CreditCardData struct {
	Cardholder   string            `json:"cardholder"`
	Last4        string            `json:"last4"`
	Currency     string            `json:"currency"`
	Transactions []CardTransaction `json:"transactions"`
}

type InvoiceItem struct {
	Description string  `json:"description"`
	Qty         int     `json:"qty"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

type InvoiceData struct {
	Merchant      string        `json:"merchant"`
	InvoiceNumber string        `json:"invoice_number"`
	IssueDate     string        `json:"issue_date"`
	DueDate       string        `json:"due_date"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	GrandTotal    float64       `json:"grand_total"`
}

type ReceiptItem struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type ReceiptData struct {
	Merchant string        `json:"merchant"`
	Date     string        `json:"date"`
	Items    []ReceiptItem `json:"items"`
	Total    float64       `json:"total"`
}

type SalaryEarnings struct {
	Basic float64 `json:"basic"`
	HRA   float64 `json:"hra"`
	Bonus float64 `json:"bonus"`
}

type SalaryDeductions struct {
	Tax       float64 `json:"tax"`
	Insurance float64 `json:"insurance"`
}

type SalarySlipData struct {
	Employee   string           `json:"employee"`
	Month      string           `json:"month"`
	Earnings   SalaryEarnings   `json:"earnings"`
	Deductions SalaryDeductions `json:"deductions"`
	NetPay     float64          `json:"net_pay"`
}

type ExtractedTable struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type TableExtractData struct {
	Tables []ExtractedTable `json:"tables"`
}

// DemoPayload returns the canned extraction output for a valid job type.
// Unknown types yield nil; callers validate via ParseJobType first.
func DemoPayload(t JobType) any {
	switch t {
	case JobBankStatement:
		return BankStatementData{
			AccountName:   "Demo Account",
			AccountNumber: "XXXX-1234",
			Currency:      "USD",
			Transactions: []BankTransaction{
				{Date: "2025-01-04", Description: "Coffee Shop", Debit: 4.5, Credit: 0.0, Balance: 1025.5},
				{Date: "2025-01-06", Description: "Salary", Debit: 0.0, Credit: 3000.0, Balance: 4025.5},
			},
		}
	case JobCreditCard:
		return CreditCardData{
			Cardholder: "Demo User",
			Last4:      "4242",
			Currency:   "USD",
			Transactions: []CardTransaction{
				{Date: "2025-01-03", Merchant: "Online Store", Amount: -89.99, Category: "Shopping"},
				{Date: "2025-01-07", Merchant: "Airline", Amount: -240.0, Category: "Travel"},
			},
		}
	case JobInvoice:
		return InvoiceData{
			Merchant:      "Acme Corp",
			InvoiceNumber: "INV-1001",
			IssueDate:     "2025-01-02",
			DueDate:       "2025-01-16",
			Items: []InvoiceItem{
				{Description: "Widget A", Qty: 2, Price: 49.99, Total: 99.98},
				{Description: "Service Fee", Qty: 1, Price: 15.0, Total: 15.0},
			},
			Subtotal:   114.98,
			Tax:        9.2,
			GrandTotal: 124.18,
		}
	case JobReceipt:
		return ReceiptData{
			Merchant: "Corner Market",
			Date:     "2025-01-05",
			Items: []ReceiptItem{
				{Name: "Bananas", Qty: 3, UnitPrice: 0.59, Total: 1.77},
				{Name: "Milk", Qty: 1, UnitPrice: 2.49, Total: 2.49},
			},
			Total: 4.26,
		}
	case JobSalarySlip:
		return SalarySlipData{
			Employee:   "Demo Employee",
			Month:      "2025-01",
			Earnings:   SalaryEarnings{Basic: 2500.0, HRA: 800.0, Bonus: 200.0},
			Deductions: SalaryDeductions{Tax: 450.0, Insurance: 50.0},
			NetPay:     3000.0,
		}
	case JobTableExtract:
		return TableExtractData{
			Tables: []ExtractedTable{
				{
					Name:    "Table 1",
					Columns: []string{"Date", "Description", "Amount"},
					Rows: [][]string{
						{"2025-01-01", "Opening Balance", "1000.00"},
						{"2025-01-02", "Subscription", "-12.00"},
					},
				},
			},
		}
	default:
		return nil
	}
}
