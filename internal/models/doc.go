// Package models defines the core domain models for a school track-and-field meet.
//
// # Roster
//
//   - School: a competing team
//   - Athlete: an individual entrant, owned by a School through SchoolID
//   - TrackEvent: one race or field event for a gender and age group
//   - RelayTeam: the named running order inside a school's relay entry
//
// # Competition
//
//   - Heat: a qualifying race (or a direct final) with up to eight lanes
//   - Lane: one slot of a heat, holding an EntrantRef
//   - FinalPositions: the ledger of recorded final placings
//
// # Entrants
//
// An entrant is an athlete in individual events and a school in relay events.
// EntrantRef carries that distinction explicitly instead of overloading a
// single id field; the kind always follows the owning event's type.
//
// # Persistence
//
// Snapshot groups every state slice. The JSON field names are the persisted
// contract of the key-value state store (see package storage).
package models
