// Package store is the in-memory hotel database: profile, room inventory
// and bookings. Reads hand out copies so a snapshot taken by the pipeline
// stays stable even while bookings mutate availability underneath.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-voicebot/internal/common/errors"
	"hotel-voicebot/internal/models"
)

type Store struct {
	mu       sync.RWMutex
	hotel    models.HotelProfile
	rooms    []models.Room
	bookings []models.Booking
}

// New creates a store seeded with the sample property data.
func New() *Store {
	return NewWithData(seedHotel(), seedRooms())
}

// NewWithData creates a store with the given profile and inventory.
func NewWithData(hotel models.HotelProfile, rooms []models.Room) *Store {
	return &Store{
		hotel: hotel,
		rooms: rooms,
	}
}

// HotelInfo returns a copy of the hotel profile.
func (s *Store) HotelInfo() models.HotelProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := s.hotel
	info.Amenities = append([]string(nil), s.hotel.Amenities...)
	return info
}

// Rooms returns a copy of the current inventory.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyRooms()
}

// Snapshot returns a point-in-time view of profile and inventory together.
func (s *Store) Snapshot() models.DomainSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := s.hotel
	info.Amenities = append([]string(nil), s.hotel.Amenities...)
	return models.DomainSnapshot{Hotel: info, Rooms: s.copyRooms()}
}

// RoomByID returns the room with the given id.
func (s *Store) RoomByID(id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.ID == id {
			return copyRoom(r), nil
		}
	}
	return models.Room{}, errors.NewRoomNotFoundError(id)
}

// RoomByType returns the room whose type matches, case-insensitively.
func (s *Store) RoomByType(roomType string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if strings.EqualFold(r.Type, roomType) {
			return copyRoom(r), nil
		}
	}
	return models.Room{}, errors.NewRoomNotFoundError(roomType)
}

// AvailableRooms returns the rooms with at least one unit left.
func (s *Store) AvailableRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if r.Available > 0 {
			out = append(out, copyRoom(r))
		}
	}
	return out
}

// UpdateHotelInfo overwrites non-zero profile fields.
func (s *Store) UpdateHotelInfo(info models.HotelProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info.Name != "" {
		s.hotel.Name = info.Name
	}
	if info.Address != "" {
		s.hotel.Address = info.Address
	}
	if info.Phone != "" {
		s.hotel.Phone = info.Phone
	}
	if info.Email != "" {
		s.hotel.Email = info.Email
	}
	if info.Website != "" {
		s.hotel.Website = info.Website
	}
	if info.Description != "" {
		s.hotel.Description = info.Description
	}
	if len(info.Amenities) > 0 {
		s.hotel.Amenities = append([]string(nil), info.Amenities...)
	}
	if info.CheckInTime != "" {
		s.hotel.CheckInTime = info.CheckInTime
	}
	if info.CheckOutTime != "" {
		s.hotel.CheckOutTime = info.CheckOutTime
	}
}

// AddBooking records a booking and decrements the room's availability.
func (s *Store) AddBooking(b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != b.RoomID {
			continue
		}
		if s.rooms[i].Available <= 0 {
			return models.Booking{}, errors.NewRoomUnavailableError(b.RoomID)
		}
		s.rooms[i].Available--

		b.ID = uuid.NewString()
		b.Status = models.BookingStatusConfirmed
		b.CreatedAt = time.Now().UTC()
		s.bookings = append(s.bookings, b)
		return b, nil
	}
	return models.Booking{}, errors.NewRoomNotFoundError(b.RoomID)
}

// CancelBooking marks a booking cancelled and restores availability.
func (s *Store) CancelBooking(id string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if s.bookings[i].Status == models.BookingStatusCancelled {
			return s.bookings[i], nil
		}
		now := time.Now().UTC()
		s.bookings[i].Status = models.BookingStatusCancelled
		s.bookings[i].CancelledAt = &now

		for j := range s.rooms {
			if s.rooms[j].ID == s.bookings[i].RoomID {
				s.rooms[j].Available++
				break
			}
		}
		return s.bookings[i], nil
	}
	return models.Booking{}, errors.NewBookingNotFoundError(id)
}

// Bookings returns a copy of all bookings.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Booking(nil), s.bookings...)
}

func (s *Store) copyRooms() []models.Room {
	out := make([]models.Room, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = copyRoom(r)
	}
	return out
}

func copyRoom(r models.Room) models.Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	return r
}
