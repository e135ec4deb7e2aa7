package testutils

import (
	"fmt"
	"time"

	"field-dispatch-backend/internal/database/models"
	"field-dispatch-backend/internal/scheduling"

	"github.com/google/uuid"
)

// Factories build persisted-ready model rows for integration suites.
// Day arguments are truncated to UTC midnight the same way the engine does.

// TaxonomyFactory creates the classification rows missions hang off.
type TaxonomyFactory struct{}

// NewTaxonomyFactory creates a new TaxonomyFactory
func NewTaxonomyFactory() *TaxonomyFactory {
	return &TaxonomyFactory{}
}

// MissionType creates a test mission type
func (f *TaxonomyFactory) MissionType(name string) *models.MissionType {
	t := &models.MissionType{
		Name:  name,
		Color: "#3366ff",
		Icon:  "wrench",
	}
	t.ID = uuid.New()
	return t
}

// MissionStatus creates a test mission status
func (f *TaxonomyFactory) MissionStatus(name string) *models.MissionStatus {
	s := &models.MissionStatus{
		Name:  name,
		Color: "#22aa55",
	}
	s.ID = uuid.New()
	return s
}

// OrderType creates a test order type
func (f *TaxonomyFactory) OrderType(name string) *models.OrderType {
	t := &models.OrderType{Name: name}
	t.ID = uuid.New()
	return t
}

// OrderStatus creates a test order status
func (f *TaxonomyFactory) OrderStatus(name string) *models.OrderStatus {
	s := &models.OrderStatus{Name: name}
	s.ID = uuid.New()
	return s
}

// UserFactory creates users and the teamleader role wiring.
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test user with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	u := &models.User{
		Email:     fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		FirstName: "Jean",
		LastName:  "Moreau",
		IsActive:  true,
	}
	u.ID = id
	return u
}

// TeamLeaderRole creates the role row dispatch operations look for
func (f *UserFactory) TeamLeaderRole() *models.Role {
	r := &models.Role{Name: models.RoleTeamLeader}
	r.ID = uuid.New()
	return r
}

// ClientFactory creates clients and orders.
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test client
func (f *ClientFactory) Create() *models.Client {
	c := &models.Client{
		CompanyName:  "Acme Logistics",
		ContactName:  "Claire Petit",
		ContactEmail: "claire@acme.test",
		Phone:        "+33 1 23 45 67 89",
	}
	c.ID = uuid.New()
	return c
}

// Order creates a test order under a client
func (f *ClientFactory) Order(clientID, typeID, statusID uuid.UUID) *models.Order {
	o := &models.Order{
		DisplayID: fmt.Sprintf("ORD-%06d", time.Now().UnixNano()%1000000),
		Name:      "Site refit",
		ClientID:  clientID,
		TypeID:    typeID,
		StatusID:  statusID,
	}
	o.ID = uuid.New()
	return o
}

// MissionFactory creates missions and assignments.
type MissionFactory struct {
	seq int
}

// NewMissionFactory creates a new MissionFactory
func NewMissionFactory() *MissionFactory {
	return &MissionFactory{}
}

// Create creates a test mission spanning [from, to]
func (f *MissionFactory) Create(typeID, statusID uuid.UUID, from, to time.Time) *models.Mission {
	f.seq++
	m := &models.Mission{
		DisplayID: fmt.Sprintf("MIS-%06d", f.seq),
		Name:      fmt.Sprintf("Mission %d", f.seq),
		TypeID:    typeID,
		StatusID:  statusID,
		DateFrom:  scheduling.DayOf(from),
		DateTo:    scheduling.EndOfDay(to),
	}
	m.ID = uuid.New()
	return m
}

// WithLeader sets the mission-level team leader
func (f *MissionFactory) WithLeader(m *models.Mission, leaderID uuid.UUID) *models.Mission {
	m.TeamLeaderID = &leaderID
	return m
}

// Assignment creates an assignment of a mission on a day
func (f *MissionFactory) Assignment(missionID uuid.UUID, leaderID *uuid.UUID, day time.Time, orderIndex int16) *models.Assignment {
	a := &models.Assignment{
		MissionID:    missionID,
		TeamLeaderID: leaderID,
		AssignedAt:   scheduling.DayOf(day),
		OrderIndex:   orderIndex,
	}
	a.ID = uuid.New()
	return a
}
