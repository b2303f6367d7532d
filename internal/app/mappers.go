package app

import (
	"strings"

	"hotel_portal/internal/domain"
)

// amenity defaults when the room service sends an empty amenity string
var (
	listRoomAmenities   = []string{"WiFi", "AC"}
	detailRoomAmenities = []string{"WiFi", "AC", "TV"}
)

// splitAmenities turns the service's comma-joined amenity string into a list,
// falling back to defaults when it is empty.
func splitAmenities(raw string, defaults []string) []string {
	if strings.TrimSpace(raw) == "" {
		out := make([]string, len(defaults))
		copy(out, defaults)
		return out
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// mapRoom reshapes a raw room record into the display model. Child occupancy
// is derived from capacity: rooms sleeping more than two get one child slot.
func mapRoom(rec domain.RoomRecord, amenityDefaults []string) domain.Room {
	children := 0
	if rec.Capacity > 2 {
		children = 1
	}
	return domain.Room{
		ID:            rec.ID,
		RoomNumber:    rec.RoomNumber,
		RoomType:      rec.RoomType,
		PricePerNight: rec.PricePerNight,
		Occupancy:     domain.Occupancy{Adults: rec.Capacity, Children: children},
		Amenities:     splitAmenities(rec.Amenities, amenityDefaults),
		Images:        []string{roomImage},
		Description:   rec.Description,
		Status:        rec.Status,
		Area:          rec.Area,
		FloorNumber:   rec.FloorNumber,
		View:          rec.View,
	}
}

// synthesizeHotelList wraps the full room inventory under the single fixed
// hotel identity the listing page shows.
func synthesizeHotelList(records []domain.RoomRecord) []domain.Hotel {
	rooms := make([]domain.Room, 0, len(records))
	available := 0
	for _, rec := range records {
		if rec.Status == domain.RoomAvailable {
			available++
		}
		rooms = append(rooms, mapRoom(rec, listRoomAmenities))
	}
	return []domain.Hotel{{
		ID:             1,
		Name:           hotelName,
		Description:    "Luxury hotel with various room types",
		Address:        "123 Main Street",
		City:           "Mumbai",
		State:          "Maharashtra",
		Country:        "India",
		StarRating:     5,
		Amenities:      []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant"},
		Images:         []string{hotelListImage},
		PriceRange:     &domain.PriceRange{Min: 89.99, Max: 299.99},
		TotalRooms:     len(records),
		AvailableRooms: available,
		Rooms:          rooms,
	}}
}

// synthesizeHotelDetail is the single-hotel shape with full room detail.
func synthesizeHotelDetail(id int64, records []domain.RoomRecord) domain.Hotel {
	rooms := make([]domain.Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, mapRoom(rec, detailRoomAmenities))
	}
	return domain.Hotel{
		ID:          id,
		Name:        hotelName,
		Description: "Luxury 5-star hotel in the heart of the city with world-class amenities and exceptional service.",
		Address:     "123 Main Street",
		City:        "Mumbai",
		State:       "Maharashtra",
		Country:     "India",
		StarRating:  5,
		Amenities:   []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant", "Room Service", "Concierge"},
		Images:      []string{hotelListImage, hotelDetailImage},
		Rooms:       rooms,
	}
}

// reservationFromBooking reshapes a raw booking record for display. When the
// backend carries no confirmation number the display one is generated here.
func reservationFromBooking(rec domain.BookingRecord) domain.Reservation {
	roomNumber, roomType := "N/A", "STANDARD"
	if rec.Room != nil {
		if rec.Room.RoomNumber != "" {
			roomNumber = rec.Room.RoomNumber
		}
		if rec.Room.RoomType != "" {
			roomType = rec.Room.RoomType
		}
	}
	nights := rec.NumberOfNights
	if nights == 0 {
		nights = domain.NightsBetween(rec.CheckInDate, rec.CheckOutDate)
	}
	return domain.Reservation{
		ID:                 rec.ID,
		ConfirmationNumber: displayConfirmation(rec.ID),
		HotelName:          hotelName,
		RoomNumber:         roomNumber,
		RoomType:           roomType,
		GuestName:          rec.GuestName,
		GuestEmail:         rec.GuestEmail,
		GuestPhone:         rec.GuestPhone,
		CheckInDate:        rec.CheckInDate,
		CheckOutDate:       rec.CheckOutDate,
		NumberOfGuests:     rec.NumberOfGuests,
		NumberOfNights:     nights,
		Status:             rec.Status,
		TotalAmount:        rec.TotalAmount,
		PaidAmount:         rec.PaidAmount,
		SpecialRequests:    rec.SpecialRequests,
		CreatedAt:          rec.CreatedAt,
	}
}
