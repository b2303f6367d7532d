package domain

import (
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrMissingFields marks a form rejected before any network call.
var ErrMissingFields = errors.New("required fields missing")

const dateLayout = "2006-01-02"

// Payment method selector values. The selector gates which sub-fields apply.
const (
	MethodCard       = "card"
	MethodUPI        = "upi"
	MethodNetBanking = "netbanking"
)

// BookingForm is the per-page booking state: never persisted, discarded when
// the caller moves on.
type BookingForm struct {
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	SpecialRequests string `json:"specialRequests"`
}

// Validate checks field presence only. It deliberately does not check that
// check-out falls after check-in; see Nights.
func (f BookingForm) Validate() error {
	var missing []string
	if f.CheckIn == "" {
		missing = append(missing, "checkIn")
	}
	if f.CheckOut == "" {
		missing = append(missing, "checkOut")
	}
	if f.Guests <= 0 {
		missing = append(missing, "guests")
	}
	if len(missing) > 0 {
		return errors.Wrap(ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// Nights returns the ceiling of the stay length in whole days. An inverted or
// empty range yields zero or a negative count, which callers surface rather
// than silently clamping to one night.
func (f BookingForm) Nights() int {
	return NightsBetween(f.CheckIn, f.CheckOut)
}

// Total is nights times the nightly rate.
func (f BookingForm) Total(ratePerNight float64) float64 {
	return float64(f.Nights()) * ratePerNight
}

// NightsBetween computes nights for two YYYY-MM-DD dates. Unparseable input
// counts as zero nights.
func NightsBetween(checkIn, checkOut string) int {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// PaymentForm is the per-page payment state, submitted once and discarded.
type PaymentForm struct {
	Method     string `json:"paymentMethod"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	CardName   string `json:"cardName,omitempty"`
	UPIID      string `json:"upiId,omitempty"`
	BankName   string `json:"bankName,omitempty"`
}

// Validate presence-checks the sub-fields of the selected method. No Luhn
// check, no expiry-validity check.
func (f PaymentForm) Validate() error {
	var missing []string
	switch f.Method {
	case MethodUPI:
		if f.UPIID == "" {
			missing = append(missing, "upiId")
		}
	case MethodNetBanking:
		if f.BankName == "" {
			missing = append(missing, "bankName")
		}
	default: // card is the default selection
		if digitsOnly(f.CardNumber) == "" {
			missing = append(missing, "cardNumber")
		}
		if f.ExpiryDate == "" {
			missing = append(missing, "expiryDate")
		}
		if f.CVV == "" {
			missing = append(missing, "cvv")
		}
		if f.CardName == "" {
			missing = append(missing, "cardName")
		}
	}
	if len(missing) > 0 {
		return errors.Wrap(ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// MethodCode maps the selector value to the payment service's enum.
func (f PaymentForm) MethodCode() string {
	switch f.Method {
	case MethodUPI:
		return "UPI"
	case MethodNetBanking:
		return "BANK_TRANSFER"
	default:
		return "CREDIT_CARD"
	}
}

// CardLastFour returns the last four digits of the card number, ignoring
// grouping spaces.
func (f PaymentForm) CardLastFour() string {
	d := digitsOnly(f.CardNumber)
	if len(d) <= 4 {
		return d
	}
	return d[len(d)-4:]
}

// CardType sniffs the network from the leading digit for display purposes.
func (f PaymentForm) CardType() string {
	d := digitsOnly(f.CardNumber)
	if d == "" {
		return ""
	}
	switch d[0] {
	case '4':
		return "VISA"
	case '5':
		return "MASTERCARD"
	case '3':
		return "AMEX"
	default:
		return "CARD"
	}
}

// FormatCardNumber regroups the digits in blocks of four as the user types,
// capped at 16 digits. Fewer than four digits pass through unformatted.
func FormatCardNumber(input string) string {
	d := digitsOnly(input)
	if len(d) < 4 {
		return d
	}
	if len(d) > 16 {
		d = d[:16]
	}
	var parts []string
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		parts = append(parts, d[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry inserts the MM/YY separator once two digits are present.
func FormatExpiry(input string) string {
	d := digitsOnly(input)
	if len(d) < 2 {
		return d
	}
	if len(d) > 4 {
		d = d[:4]
	}
	return d[:2] + "/" + d[2:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
