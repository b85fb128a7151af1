package nlu

import "hotel-voicebot/internal/models"

// TrainingExample is one (utterance, intent) pair in the training corpus.
type TrainingExample struct {
	Text  string
	Label models.Intent
}

// DefaultCorpus returns the fixed training corpus. The checkout and default
// intents intentionally have no examples: checkout is reachable only through
// the keyword path, and default is the resolver's terminal fallback.
func DefaultCorpus() []TrainingExample {
	return []TrainingExample{
		// Booking intent
		{"I want to book a room", models.IntentBooking},
		{"Make a reservation", models.IntentBooking},
		{"Reserve a room for two nights", models.IntentBooking},
		{"Book a suite", models.IntentBooking},

		// Availability intent
		{"Do you have rooms available", models.IntentAvailability},
		{"Are there any vacant rooms", models.IntentAvailability},
		{"Check availability", models.IntentAvailability},

		// Pricing intent
		{"What are your room rates", models.IntentPricing},
		{"How much does a room cost", models.IntentPricing},
		{"What is the price", models.IntentPricing},
		{"Room pricing", models.IntentPricing},

		// Amenities intent
		{"What amenities do you offer", models.IntentAmenities},
		{"What facilities are available", models.IntentAmenities},
		{"Tell me about your services", models.IntentAmenities},

		// Cancellation intent
		{"How can I cancel my booking", models.IntentCancellation},
		{"Cancellation policy", models.IntentCancellation},
		{"Can I get a refund", models.IntentCancellation},

		// Location intent
		{"Where is the hotel located", models.IntentLocation},
		{"Hotel address", models.IntentLocation},
		{"How to reach", models.IntentLocation},

		// Greeting intent
		{"Hello", models.IntentGreeting},
		{"Hi there", models.IntentGreeting},
		{"Good morning", models.IntentGreeting},

		// Help intent
		{"Can you help me", models.IntentHelp},
		{"I need assistance", models.IntentHelp},
		{"Please assist me with something", models.IntentHelp},

		// Room type intent
		{"Tell me about the deluxe room", models.IntentRoomTypes},
		{"Give me details of the deluxe room", models.IntentRoomTypes},
		{"What is the price of the deluxe room", models.IntentRoomTypes},

		{"Tell me about the executive suite", models.IntentRoomTypes},
		{"Give me details of the executive suite", models.IntentRoomTypes},
		{"What is the cost of the executive suite", models.IntentRoomTypes},

		{"Tell me about the family room", models.IntentRoomTypes},
		{"Give me details of the family room", models.IntentRoomTypes},
		{"How much is the family room", models.IntentRoomTypes},

		{"Tell me about the presidential suite", models.IntentRoomTypes},
		{"Give me details of the presidential suite", models.IntentRoomTypes},
		{"What is the price of the presidential suite", models.IntentRoomTypes},
	}
}
