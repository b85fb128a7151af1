// internal/nlu/extractor_test.go
package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-voicebot/internal/models"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		name     string
		text     string
		expected models.Entities
	}{
		{
			name: "numeric date with slashes",
			text: "Book a room for 12/05/2025 please",
			expected: models.Entities{
				Date:    "12/05/2025",
				Numbers: []string{"12", "05", "2025"},
			},
		},
		{
			name: "numeric date with dashes",
			text: "arriving 3-11-24",
			expected: models.Entities{
				Date:    "3-11-24",
				Numbers: []string{"3", "11", "24"},
			},
		},
		{
			name: "month name date keeps original casing",
			text: "I will arrive on 15 March 2025",
			expected: models.Entities{
				Date:    "15 March 2025",
				Numbers: []string{"15", "2025"},
			},
		},
		{
			name: "standalone numbers",
			text: "We are 2 adults and 3 kids",
			expected: models.Entities{
				Numbers: []string{"2", "3"},
			},
		},
		{
			name: "email address",
			text: "Send the confirmation to guest@example.com",
			expected: models.Entities{
				Email: "guest@example.com",
			},
		},
		{
			name: "plain ten digit phone",
			text: "call me on 9876543210",
			expected: models.Entities{
				Numbers: []string{"9876543210"},
				Phone:   "9876543210",
			},
		},
		{
			name: "formatted phone",
			text: "my number is 555-123-4567",
			expected: models.Entities{
				Numbers: []string{"555", "123", "4567"},
				Phone:   "555-123-4567",
			},
		},
		{
			name:     "no entities",
			text:     "do you have a pool",
			expected: models.Entities{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.text)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractor_AllEntityKindsInOneUtterance(t *testing.T) {
	extractor := NewExtractor()

	got := extractor.Extract("Contact me at test@example.com or 98765-43210 on 12/05/2024")

	assert.Equal(t, "test@example.com", got.Email)
	assert.Equal(t, "12/05/2024", got.Date)
	// The phone pattern stops one digit short of the full run, same as the
	// source pattern it mirrors.
	assert.Equal(t, "98765-4321", got.Phone)
	assert.Equal(t, []string{"98765", "43210", "12", "05", "2024"}, got.Numbers)
}

func TestExtractor_FirstMatchOnly(t *testing.T) {
	extractor := NewExtractor()

	got := extractor.Extract("emails a@b.com and c@d.com, dates 1/2/2025 and 3/4/2025")

	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "1/2/2025", got.Date)
}

func TestExtractor_NumbersKeepOrderAndDuplicates(t *testing.T) {
	extractor := NewExtractor()

	got := extractor.Extract("2 rooms for 2 nights and 4 guests")

	assert.Equal(t, []string{"2", "2", "4"}, got.Numbers)
}

func TestEntities_IsEmpty(t *testing.T) {
	assert.True(t, models.Entities{}.IsEmpty())
	assert.False(t, models.Entities{Email: "a@b.com"}.IsEmpty())
	assert.False(t, models.Entities{Numbers: []string{"1"}}.IsEmpty())
}
