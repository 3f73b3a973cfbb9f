package models

// Invoice is a member invoice. Amount is held in minor units (paise, cents).
type Invoice struct {
	ID       string `bson:"id" json:"id"`
	Member   string `bson:"member" json:"member"`
	Amount   int64  `bson:"amount" json:"amount"`
	Currency string `bson:"currency" json:"currency"`
	DueDate  string `bson:"dueDate" json:"dueDate"`
	Status   string `bson:"status" json:"status"` // Paid, Pending, Overdue
	Plan     string `bson:"plan" json:"plan"`
}

// InvoiceView adds presentation fields to an invoice.
type InvoiceView struct {
	Invoice
	Display    string     `json:"display"`
	Affordance Affordance `json:"affordance"`
}

type BillingStats struct {
	Currency           string `json:"currency"`
	Collected          int64  `json:"collected"`
	Outstanding        int64  `json:"outstanding"`
	OutstandingCount   int    `json:"outstandingCount"`
	OverdueCount       int    `json:"overdueCount"`
	Processed          int64  `json:"processed"`
	CollectedDisplay   string `json:"collectedDisplay"`
	OutstandingDisplay string `json:"outstandingDisplay"`
	ProcessedDisplay   string `json:"processedDisplay"`
}
