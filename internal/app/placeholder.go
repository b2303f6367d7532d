package app

import "hotel_portal/internal/domain"

// Fixed demo records substituted when a live call fails under the placeholder
// policy. Values are stable so pages stay consistent between visits.

const (
	hotelName        = "Grand Palace Hotel"
	hotelListImage   = "https://images.unsplash.com/photo-1566073771259-6a8506099945"
	hotelDetailImage = "https://images.unsplash.com/photo-1564501049412-61c2a3083791"
	roomImage        = "https://images.unsplash.com/photo-1631049307264-da0ec9d70304"
	suiteImage       = "https://images.unsplash.com/photo-1618773928121-c32242e63f39"
)

func placeholderHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:             1,
			Name:           hotelName,
			Description:    "Luxury 5-star hotel in the heart of the city",
			Address:        "123 Main Street",
			City:           "Mumbai",
			State:          "Maharashtra",
			Country:        "India",
			StarRating:     5,
			Amenities:      []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant"},
			Images:         []string{hotelListImage},
			PriceRange:     &domain.PriceRange{Min: 5000, Max: 15000},
			TotalRooms:     100,
			AvailableRooms: 45,
		},
		{
			ID:             2,
			Name:           "Ocean View Resort",
			Description:    "Beachfront resort with stunning ocean views",
			Address:        "456 Beach Road",
			City:           "Goa",
			State:          "Goa",
			Country:        "India",
			StarRating:     4,
			Amenities:      []string{"WiFi", "Pool", "Beach Access", "Restaurant"},
			Images:         []string{"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9"},
			PriceRange:     &domain.PriceRange{Min: 3000, Max: 8000},
			TotalRooms:     80,
			AvailableRooms: 32,
		},
	}
}

func placeholderHotelDetail(id int64) domain.Hotel {
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
		Rooms: []domain.Room{
			{
				ID:            1,
				RoomNumber:    "101",
				RoomType:      "DELUXE",
				PricePerNight: 8000,
				Occupancy:     domain.Occupancy{Adults: 2, Children: 1},
				Amenities:     []string{"WiFi", "AC", "TV", "Minibar"},
				Images:        []string{roomImage},
				Description:   "Spacious deluxe room with city view",
				Status:        domain.RoomAvailable,
				Area:          35,
				FloorNumber:   1,
				View:          "City",
			},
			{
				ID:            2,
				RoomNumber:    "201",
				RoomType:      "SUITE",
				PricePerNight: 15000,
				Occupancy:     domain.Occupancy{Adults: 4, Children: 2},
				Amenities:     []string{"WiFi", "AC", "TV", "Minibar", "Living Area", "Balcony"},
				Images:        []string{suiteImage},
				Description:   "Luxury suite with premium amenities",
				Status:        domain.RoomAvailable,
				Area:          75,
				FloorNumber:   2,
				View:          "Ocean",
			},
		},
	}
}

func placeholderReservations(nowISO string) []domain.Reservation {
	return []domain.Reservation{
		{
			ID:                 1,
			ConfirmationNumber: "HTL12345",
			HotelName:          hotelName,
			RoomNumber:         "101",
			RoomType:           "DELUXE",
			GuestName:          "Sample Guest",
			GuestEmail:         "guest@example.com",
			CheckInDate:        "2025-09-15",
			CheckOutDate:       "2025-09-18",
			NumberOfGuests:     2,
			NumberOfNights:     3,
			Status:             domain.ReservationConfirmed,
			TotalAmount:        24000,
			PaidAmount:         24000,
			CreatedAt:          nowISO,
		},
	}
}
