// internal/responder/responder_test.go
package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-voicebot/internal/common/config"
	"hotel-voicebot/internal/models"
)

func testSnapshot() models.DomainSnapshot {
	return models.DomainSnapshot{
		Hotel: models.HotelProfile{
			Name:         "Simplotel Grand Hotel",
			Address:      "MG Road, Bangalore",
			Phone:        "+91-80-12345678",
			Email:        "info@simplotelgrand.com",
			Amenities:    []string{"Swimming Pool", "Free High-Speed WiFi"},
			CheckInTime:  "2:00 PM",
			CheckOutTime: "11:00 AM",
		},
		Rooms: []models.Room{
			{ID: "R001", Type: "Deluxe Room", Price: 3500, Capacity: 2, Size: "300 sq ft", Description: "Comfortable room", Available: 5},
			{ID: "R002", Type: "Executive Suite", Price: 6500, Capacity: 3, Size: "500 sq ft", Description: "Spacious suite", Available: 0},
			{ID: "R003", Type: "Family Room", Price: 5000, Capacity: 4, Size: "450 sq ft", Description: "Family friendly", Available: 4},
		},
	}
}

func newTestResponder() *Responder {
	return New(config.Default().Hotel)
}

// ==========================
// Totality
// ==========================

func TestResponder_EveryIntentHasAReply(t *testing.T) {
	r := newTestResponder()
	snap := testSnapshot()

	for _, intent := range models.AllIntents {
		t.Run(string(intent), func(t *testing.T) {
			reply := r.Respond(intent, snap, "test message")
			assert.NotEmpty(t, reply)
		})
	}
}

func TestResponder_UnknownIntentUsesFallback(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(models.Intent("no-such-intent"), testSnapshot(), "strange input")

	assert.Contains(t, reply, `"strange input"`)
}

// ==========================
// Intent branches
// ==========================

func TestResponder_Greeting(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(models.IntentGreeting, testSnapshot(), "")

	assert.Contains(t, reply, "Simplotel Grand Hotel")
	assert.Contains(t, reply, "How can I help you today?")
}

func TestResponder_Booking_ListsOnlyAvailableRooms(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(models.IntentBooking, testSnapshot(), "")

	assert.Contains(t, reply, "Deluxe Room")
	assert.Contains(t, reply, "Family Room")
	assert.NotContains(t, reply, "Executive Suite")
	assert.Contains(t, reply, "+91-80-12345678")
}

func TestResponder_Availability(t *testing.T) {
	r := newTestResponder()

	t.Run("rooms available", func(t *testing.T) {
		reply := r.Respond(models.IntentAvailability, testSnapshot(), "")
		assert.Contains(t, reply, "Deluxe Room")
		assert.Contains(t, reply, "₹3500")
		assert.NotContains(t, reply, "Executive Suite")
	})

	t.Run("fully booked", func(t *testing.T) {
		snap := testSnapshot()
		for i := range snap.Rooms {
			snap.Rooms[i].Available = 0
		}
		reply := r.Respond(models.IntentAvailability, snap, "")
		assert.Contains(t, reply, "fully booked")
		assert.Contains(t, reply, "waitlist")
	})
}

func TestResponder_Pricing_EnumeratesAllRooms(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(models.IntentPricing, testSnapshot(), "")

	// Pricing lists the full catalog, including sold-out room types.
	assert.Contains(t, reply, "Deluxe Room")
	assert.Contains(t, reply, "Executive Suite")
	assert.Contains(t, reply, "Family Room")
	assert.Contains(t, reply, "₹3500")
	assert.Contains(t, reply, "₹6500")
}

func TestResponder_Amenities(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(models.IntentAmenities, testSnapshot(), "")

	assert.Contains(t, reply, "Swimming Pool")
	assert.Contains(t, reply, "Free High-Speed WiFi")
}

func TestResponder_Location_UsesConfiguredDistances(t *testing.T) {
	cfg := config.Default().Hotel
	cfg.Proximity.AirportKM = 42
	r := New(cfg)

	reply := r.Respond(models.IntentLocation, testSnapshot(), "")

	assert.Contains(t, reply, "MG Road, Bangalore")
	assert.Contains(t, reply, "Airport: 42 km")
}

func TestResponder_Checkout_FallsBackWhenTimeMissing(t *testing.T) {
	r := newTestResponder()

	snap := testSnapshot()
	snap.Hotel.CheckOutTime = ""
	reply := r.Respond(models.IntentCheckout, snap, "")

	assert.Contains(t, reply, "11:00 AM")
}

func TestResponder_CurrencySymbolIsConfigurable(t *testing.T) {
	cfg := config.Default().Hotel
	cfg.CurrencySymbol = "$"
	r := New(cfg)

	reply := r.Respond(models.IntentPricing, testSnapshot(), "")

	assert.Contains(t, reply, "$3500")
	assert.NotContains(t, reply, "₹")
}

func TestResponder_Fallback_EchoesUtterance(t *testing.T) {
	r := newTestResponder()

	reply := r.Respond(models.IntentDefault, testSnapshot(), "can you walk my dog")

	assert.Contains(t, reply, `"can you walk my dog"`)
	assert.Contains(t, reply, "+91-80-12345678")
	assert.Contains(t, reply, "info@simplotelgrand.com")
}
