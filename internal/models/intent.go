// internal/models/intent.go
package models

// Intent is the classified purpose of an utterance.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentBooking      Intent = "booking"
	IntentAvailability Intent = "availability"
	IntentPricing      Intent = "pricing"
	IntentAmenities    Intent = "amenities"
	IntentCancellation Intent = "cancellation"
	IntentLocation     Intent = "location"
	IntentCheckout     Intent = "checkout"
	IntentHelp         Intent = "help"
	IntentRoomTypes    Intent = "roomTypes"

	// IntentDefault is the terminal fallback. It is never produced by the
	// trained model, only by the resolver when nothing else matches.
	IntentDefault Intent = "default"
)

// AllIntents lists every valid intent tag, fallback included.
var AllIntents = []Intent{
	IntentGreeting,
	IntentBooking,
	IntentAvailability,
	IntentPricing,
	IntentAmenities,
	IntentCancellation,
	IntentLocation,
	IntentCheckout,
	IntentHelp,
	IntentRoomTypes,
	IntentDefault,
}

// Valid reports whether i is one of the closed intent tags.
func (i Intent) Valid() bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}

// Entities holds the values extracted from free text by the pattern rules.
// A zero value means the corresponding rule produced no match.
type Entities struct {
	Date    string   `json:"date,omitempty"`
	Numbers []string `json:"numbers,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
}

// IsEmpty reports whether no rule matched.
func (e Entities) IsEmpty() bool {
	return e.Date == "" && len(e.Numbers) == 0 && e.Email == "" && e.Phone == ""
}

// PipelineResult is the structured output of one pipeline invocation.
type PipelineResult struct {
	Intent     Intent   `json:"intent"`
	Entities   Entities `json:"entities"`
	Confidence float64  `json:"confidence"`
	Response   string   `json:"response"`
}
