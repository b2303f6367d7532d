package domain

// Reservation statuses as the booking service reports them.
const (
	ReservationPending    = "PENDING"
	ReservationConfirmed  = "CONFIRMED"
	ReservationCheckedIn  = "CHECKED_IN"
	ReservationCheckedOut = "CHECKED_OUT"
	ReservationCancelled  = "CANCELLED"
	ReservationNoShow     = "NO_SHOW"
)

// Reservation is the display shape assembled from a booking record. The
// confirmation number may be generated client-side when the backend omits one;
// it is a display artifact, not a durable identifier.
type Reservation struct {
	ID                 int64   `json:"id"`
	ConfirmationNumber string  `json:"confirmationNumber"`
	HotelName          string  `json:"hotelName"`
	RoomNumber         string  `json:"roomNumber"`
	RoomType           string  `json:"roomType"`
	GuestName          string  `json:"guestName"`
	GuestEmail         string  `json:"guestEmail"`
	GuestPhone         string  `json:"guestPhone,omitempty"`
	CheckInDate        string  `json:"checkInDate"`
	CheckOutDate       string  `json:"checkOutDate"`
	NumberOfGuests     int     `json:"numberOfGuests"`
	NumberOfNights     int     `json:"numberOfNights"`
	Status             string  `json:"status"`
	TotalAmount        float64 `json:"totalAmount"`
	PaidAmount         float64 `json:"paidAmount"`
	SpecialRequests    string  `json:"specialRequests,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
}

// BookingRecord is the raw booking-service payload.
type BookingRecord struct {
	ID              int64       `json:"id"`
	Room            *RoomRecord `json:"room,omitempty"`
	GuestName       string      `json:"guestName"`
	GuestEmail      string      `json:"guestEmail"`
	GuestPhone      string      `json:"guestPhone"`
	CheckInDate     string      `json:"checkInDate"`
	CheckOutDate    string      `json:"checkOutDate"`
	NumberOfGuests  int         `json:"numberOfGuests"`
	NumberOfNights  int         `json:"numberOfNights"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	PaidAmount      float64     `json:"paidAmount"`
	SpecialRequests string      `json:"specialRequests"`
	CreatedAt       string      `json:"createdAt"`
}

type CreateBookingRequest struct {
	RoomID          int64   `json:"roomId"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	TotalAmount     float64 `json:"totalAmount"`
	SpecialRequests string  `json:"specialRequests"`
}
