// Package responder turns a resolved intent and a domain snapshot into a
// natural-language reply. Every intent, including ones unreachable through
// normal resolution, maps to a builder; synthesis is total and pure.
package responder

import (
	"fmt"
	"strings"

	"hotel-voicebot/internal/common/config"
	"hotel-voicebot/internal/models"
)

// Builder constructs the reply for one intent from a point-in-time snapshot.
// The utterance is only used by the default branch, which echoes it back.
type Builder func(snap models.DomainSnapshot, utterance string) string

type Responder struct {
	currency  string
	proximity config.ProximityConfig
	builders  map[models.Intent]Builder
}

// New builds a responder parameterized by the hotel locale configuration.
func New(cfg config.HotelConfig) *Responder {
	r := &Responder{
		currency:  cfg.CurrencySymbol,
		proximity: cfg.Proximity,
	}
	r.builders = map[models.Intent]Builder{
		models.IntentGreeting:     r.greeting,
		models.IntentBooking:      r.booking,
		models.IntentAvailability: r.availability,
		models.IntentPricing:      r.pricing,
		models.IntentAmenities:    r.amenities,
		models.IntentCancellation: r.cancellation,
		models.IntentLocation:     r.location,
		models.IntentCheckout:     r.checkout,
		models.IntentHelp:         r.help,
		models.IntentRoomTypes:    r.roomTypes,
		models.IntentDefault:      r.fallback,
	}
	return r
}

// Respond dispatches to the intent's builder. Unknown intents use the
// default builder so synthesis can never fail.
func (r *Responder) Respond(intent models.Intent, snap models.DomainSnapshot, utterance string) string {
	build, ok := r.builders[intent]
	if !ok {
		build = r.fallback
	}
	return build(snap, utterance)
}

func (r *Responder) price(amount int) string {
	return fmt.Sprintf("%s%d", r.currency, amount)
}

func (r *Responder) greeting(snap models.DomainSnapshot, _ string) string {
	return fmt.Sprintf("Hello! Welcome to %s. I'm your virtual assistant. How can I help you today? "+
		"You can ask about room bookings, availability, pricing, amenities, or our location.",
		snap.Hotel.Name)
}

func (r *Responder) booking(snap models.DomainSnapshot, _ string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I'd be happy to help you book a room at %s! We have several room types available:\n\n", snap.Hotel.Name)
	for _, room := range snap.Rooms {
		if room.Available > 0 {
			fmt.Fprintf(&b, "%s - %s per night (%d available)\n", room.Type, r.price(room.Price), room.Available)
		}
	}
	fmt.Fprintf(&b, "\nTo complete your booking, please provide:\n- Check-in and check-out dates\n- Number of guests\n- Room preference\n\n")
	fmt.Fprintf(&b, "You can also call us at %s or email %s", snap.Hotel.Phone, snap.Hotel.Email)
	return b.String()
}

func (r *Responder) availability(snap models.DomainSnapshot, _ string) string {
	available := snap.AvailableRooms()
	if len(available) == 0 {
		return "I apologize, but we're currently fully booked. However, I can help you with:\n" +
			"- Joining our waitlist\n- Checking availability for alternative dates\n- Recommending nearby partner hotels\n\n" +
			"When would you like to visit?"
	}

	var b strings.Builder
	b.WriteString("Yes! We currently have the following rooms available:\n\n")
	for _, room := range available {
		fmt.Fprintf(&b, "✓ %s: %d rooms available at %s/night\n", room.Type, room.Available, r.price(room.Price))
	}
	b.WriteString("\nWould you like to make a reservation?")
	return b.String()
}

func (r *Responder) pricing(snap models.DomainSnapshot, _ string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are our current room rates at %s:\n\n", snap.Hotel.Name)
	for _, room := range snap.Rooms {
		fmt.Fprintf(&b, "%s:\n- %s per night\n- %s\n\n", room.Type, r.price(room.Price), room.Description)
	}
	b.WriteString("Note: Rates may vary based on season and availability. Special discounts available for:\n" +
		"- Extended stays (7+ nights)\n- Corporate bookings\n- Advance bookings (30+ days)\n\n" +
		"Would you like to know more about any specific room type?")
	return b.String()
}

func (r *Responder) amenities(snap models.DomainSnapshot, _ string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s offers a wide range of amenities to make your stay comfortable:\n\n", snap.Hotel.Name)
	for _, amenity := range snap.Hotel.Amenities {
		fmt.Fprintf(&b, "✓ %s\n", amenity)
	}
	b.WriteString("\nAll rooms include:\n- Complimentary WiFi\n- Air conditioning\n- 24/7 room service\n- Daily housekeeping\n\n" +
		"Is there a specific amenity you'd like to know more about?")
	return b.String()
}

func (r *Responder) cancellation(snap models.DomainSnapshot, _ string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Our cancellation policy at %s:\n\n", snap.Hotel.Name)
	b.WriteString("✓ Free cancellation up to 48 hours before check-in\n")
	b.WriteString("✓ 50% refund for cancellations between 24-48 hours\n")
	b.WriteString("✓ No refund for cancellations within 24 hours of check-in\n")
	b.WriteString("✓ Full refund in case of emergencies (documentation required)\n\n")
	fmt.Fprintf(&b, "To cancel your booking:\n1. Call us at %s\n2. Email us at %s\n3. Use the booking reference number\n\n", snap.Hotel.Phone, snap.Hotel.Email)
	b.WriteString("Need to cancel a booking?")
	return b.String()
}

func (r *Responder) location(snap models.DomainSnapshot, _ string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is located at:\n\n", snap.Hotel.Name)
	fmt.Fprintf(&b, "📍 %s\n\n", snap.Hotel.Address)
	b.WriteString("We're conveniently located near:\n")
	fmt.Fprintf(&b, "- City center: %d km\n", r.proximity.CityCenterKM)
	fmt.Fprintf(&b, "- Airport: %d km\n", r.proximity.AirportKM)
	fmt.Fprintf(&b, "- Railway station: %d km\n", r.proximity.RailwayStationKM)
	fmt.Fprintf(&b, "- Major shopping areas: %d km\n\n", r.proximity.ShoppingKM)
	fmt.Fprintf(&b, "Contact us:\n📞 %s\n📧 %s\n\n", snap.Hotel.Phone, snap.Hotel.Email)
	b.WriteString("Would you like directions or transportation assistance?")
	return b.String()
}

func (r *Responder) checkout(snap models.DomainSnapshot, _ string) string {
	checkOutTime := snap.Hotel.CheckOutTime
	if checkOutTime == "" {
		checkOutTime = "11:00 AM"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Check-out information for %s:\n\n", snap.Hotel.Name)
	fmt.Fprintf(&b, "⏰ Standard check-out time: %s\n", checkOutTime)
	b.WriteString("⏰ Late check-out available until 2:00 PM (subject to availability, additional charges may apply)\n\n")
	b.WriteString("Before check-out:\n")
	b.WriteString("✓ Return all room keys\n")
	b.WriteString("✓ Clear any outstanding bills\n")
	b.WriteString("✓ Check for personal belongings\n\n")
	b.WriteString("Express check-out available! Just drop your key at the reception.\n\n")
	b.WriteString("Need a late check-out or have questions about your bill?")
	return b.String()
}

func (r *Responder) help(_ models.DomainSnapshot, _ string) string {
	return "I'm here to help! I can assist you with:\n\n" +
		"🏨 Room Bookings & Reservations\n" +
		"📅 Check Availability\n" +
		"💰 Pricing & Special Offers\n" +
		"🎯 Hotel Amenities & Services\n" +
		"📍 Location & Directions\n" +
		"❌ Cancellation Policy\n" +
		"⏰ Check-in/Check-out Times\n\n" +
		"Simply ask me anything, or choose a topic you'd like to know more about!"
}

func (r *Responder) roomTypes(snap models.DomainSnapshot, _ string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are the room types available at %s:\n\n", snap.Hotel.Name)
	for _, room := range snap.Rooms {
		fmt.Fprintf(&b, "🏨 *%s*\n", room.Type)
		fmt.Fprintf(&b, "• Price: %s per night\n", r.price(room.Price))
		fmt.Fprintf(&b, "• Capacity: %d guests\n", room.Capacity)
		fmt.Fprintf(&b, "• Size: %s\n", room.Size)
		fmt.Fprintf(&b, "• Description: %s\n", room.Description)
		fmt.Fprintf(&b, "• Available: %d rooms\n\n", room.Available)
	}
	b.WriteString("If you'd like details about a specific room, you can ask:\n")
	b.WriteString("- \"Tell me about the Deluxe Room\"\n")
	b.WriteString("- \"How much is the Executive Suite?\"\n")
	b.WriteString("- \"What facilities does the Family Room have?\"\n\n")
	b.WriteString("Which room would you like to know more about?")
	return b.String()
}

func (r *Responder) fallback(snap models.DomainSnapshot, utterance string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your query! I understand you're asking about %q. ", utterance)
	b.WriteString("While I can help with bookings, availability, pricing, amenities, and general hotel information, " +
		"I'd be happy to connect you with our staff for more specific requests.\n\n")
	fmt.Fprintf(&b, "You can reach us at:\n📞 %s\n📧 %s\n\n", snap.Hotel.Phone, snap.Hotel.Email)
	b.WriteString("Is there anything else I can help you with?")
	return b.String()
}
