package domain

// Hotel is a display shape only: the room service has no hotel entity, so the
// catalog wraps its raw room records under one fixed hotel identity.
type Hotel struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	Country        string      `json:"country"`
	StarRating     int         `json:"starRating"`
	Amenities      []string    `json:"amenities"`
	Images         []string    `json:"images"`
	PriceRange     *PriceRange `json:"priceRange,omitempty"`
	TotalRooms     int         `json:"totalRooms,omitempty"`
	AvailableRooms int         `json:"availableRooms,omitempty"`
	Rooms          []Room      `json:"rooms,omitempty"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Occupancy struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Room statuses as the room service reports them.
const (
	RoomAvailable   = "AVAILABLE"
	RoomOccupied    = "OCCUPIED"
	RoomMaintenance = "MAINTENANCE"
	RoomOutOfOrder  = "OUT_OF_ORDER"
)

type Room struct {
	ID            int64     `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	Occupancy     Occupancy `json:"occupancy"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Area          float64   `json:"area,omitempty"`
	FloorNumber   int       `json:"floorNumber,omitempty"`
	View          string    `json:"view,omitempty"`
}

// RoomRecord is the raw room-service payload before synthesis. Amenities come
// over the wire as one comma-joined string.
type RoomRecord struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
	Amenities     string  `json:"amenities"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	Area          float64 `json:"area"`
	FloorNumber   int     `json:"floorNumber"`
	View          string  `json:"view"`
}
