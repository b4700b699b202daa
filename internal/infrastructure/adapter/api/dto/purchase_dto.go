package dto

// PurchaseRequest represents the API request to run the purchase workflow
type PurchaseRequest struct {
	Email       string `json:"email" binding:"required"`
	AmountCents int64  `json:"amountCents" binding:"required"`
}

// PurchaseResponse represents the API response after a successful purchase
type PurchaseResponse struct {
	InvoiceID uint64 `json:"invoiceId"`
}
