package domain

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

// PaymentRequest is what the payment service accepts at POST /v1/payments.
type PaymentRequest struct {
	BookingID          int64   `json:"bookingId"`
	Amount             float64 `json:"amount"`
	PaymentMethod      string  `json:"paymentMethod"` // CREDIT_CARD|UPI|BANK_TRANSFER
	Status             string  `json:"status"`
	CustomerEmail      string  `json:"customerEmail"`
	CustomerName       string  `json:"customerName"`
	Description        string  `json:"description"`
	CardLastFourDigits string  `json:"cardLastFourDigits,omitempty"`
	CardType           string  `json:"cardType,omitempty"`
}

type PaymentRecord struct {
	ID            string  `json:"id"`
	BookingID     int64   `json:"bookingId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transactionId,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}
