// internal/models/hotel.go
package models

// HotelProfile describes the property the bot answers questions about.
type HotelProfile struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Website      string   `json:"website"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities"`
	CheckInTime  string   `json:"checkInTime"`
	CheckOutTime string   `json:"checkOutTime"`
}

// Room is one bookable room category with its current availability.
type Room struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Price       int      `json:"price"`
	Capacity    int      `json:"capacity"`
	Size        string   `json:"size"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Available   int      `json:"available"`
}

// DomainSnapshot is a point-in-time read of the hotel profile and room
// inventory. Response synthesis reads from a snapshot supplied per call and
// never mutates it or assumes it is stable across calls.
type DomainSnapshot struct {
	Hotel HotelProfile `json:"hotel"`
	Rooms []Room       `json:"rooms"`
}

// AvailableRooms returns the rooms with at least one unit left.
func (s DomainSnapshot) AvailableRooms() []Room {
	out := make([]Room, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.Available > 0 {
			out = append(out, r)
		}
	}
	return out
}
