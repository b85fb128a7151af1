package store

import "hotel-voicebot/internal/models"

// Sample property data used until a property-management integration feeds
// the store.
func seedHotel() models.HotelProfile {
	return models.HotelProfile{
		Name:        "Simplotel Grand Hotel",
		Address:     "MG Road, Bangalore, Karnataka 560001, India",
		Phone:       "+91-80-12345678",
		Email:       "info@simplotelgrand.com",
		Website:     "www.simplotelgrand.com",
		Description: "A luxury hotel in the heart of Bangalore, offering world-class amenities and services.",
		Amenities: []string{
			"Free High-Speed WiFi",
			"Swimming Pool",
			"24/7 Fitness Center",
			"Spa & Wellness Center",
			"Multi-Cuisine Restaurant",
			"Bar & Lounge",
			"Conference Rooms",
			"Business Center",
			"Airport Shuttle Service",
			"Valet Parking",
			"Concierge Service",
			"Room Service 24/7",
			"Laundry Service",
			"Travel Desk",
		},
		CheckInTime:  "2:00 PM",
		CheckOutTime: "11:00 AM",
	}
}

func seedRooms() []models.Room {
	return []models.Room{
		{
			ID:          "R001",
			Type:        "Deluxe Room",
			Price:       3500,
			Capacity:    2,
			Size:        "300 sq ft",
			Description: "Comfortable room with modern amenities, perfect for couples",
			Amenities:   []string{"King Size Bed", "City View", "Work Desk", "Smart TV", "Mini Bar"},
			Available:   5,
		},
		{
			ID:          "R002",
			Type:        "Executive Suite",
			Price:       6500,
			Capacity:    3,
			Size:        "500 sq ft",
			Description: "Spacious suite with separate living area, ideal for business travelers",
			Amenities:   []string{"King Size Bed", "Living Room", "City View", "Work Station", "Smart TV", "Mini Bar", "Coffee Maker"},
			Available:   3,
		},
		{
			ID:          "R003",
			Type:        "Family Room",
			Price:       5000,
			Capacity:    4,
			Size:        "450 sq ft",
			Description: "Perfect for families with extra beds and kid-friendly amenities",
			Amenities:   []string{"2 Queen Beds", "City View", "Smart TV", "Mini Fridge", "Extra Bedding"},
			Available:   4,
		},
		{
			ID:          "R004",
			Type:        "Presidential Suite",
			Price:       12000,
			Capacity:    4,
			Size:        "1000 sq ft",
			Description: "Luxurious suite with premium amenities and stunning city views",
			Amenities:   []string{"Master Bedroom", "Living Room", "Dining Area", "Panoramic View", "Jacuzzi", "Butler Service", "Premium Bar"},
			Available:   1,
		},
	}
}
