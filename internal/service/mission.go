package service

import (
	"errors"
	"fmt"
	"time"

	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/repository"
	"field-dispatch-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MissionService owns mission CRUD and the range reconciliation that keeps a
// mission's active assignment days equal to its [DateFrom, DateTo] range.
type MissionService struct {
	db          *gorm.DB
	missions    *repository.MissionRepository
	assignments *repository.AssignmentRepository
	orders      *repository.OrderRepository
	taxonomy    *repository.TaxonomyRepository
	forms       *repository.CustomFormRepository
	validator   *validator.Validate
	clock       scheduling.Clock
}

// NewMissionService creates a new mission service
func NewMissionService(
	db *gorm.DB,
	missions *repository.MissionRepository,
	assignments *repository.AssignmentRepository,
	orders *repository.OrderRepository,
	taxonomy *repository.TaxonomyRepository,
	forms *repository.CustomFormRepository,
	validator *validator.Validate,
	clock scheduling.Clock,
) *MissionService {
	return &MissionService{
		db:          db,
		missions:    missions,
		assignments: assignments,
		orders:      orders,
		taxonomy:    taxonomy,
		forms:       forms,
		validator:   validator,
		clock:       clock,
	}
}

// AddressInput carries an inline address on mission requests
type AddressInput struct {
	Street         string   `json:"street"`
	AdditionalInfo string   `json:"additional_info"`
	PostalCode     string   `json:"postal_code"`
	City           string   `json:"city"`
	Country        string   `json:"country"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// CreateMissionRequest represents the request to create a mission
type CreateMissionRequest struct {
	Name             string        `json:"name" validate:"required,min=1,max=100"`
	TypeID           uuid.UUID     `json:"type_id" validate:"required"`
	StatusID         uuid.UUID     `json:"status_id" validate:"required"`
	DateFrom         time.Time     `json:"date_from" validate:"required"`
	DateTo           time.Time     `json:"date_to" validate:"required"`
	TeamLeaderID     *uuid.UUID    `json:"team_leader_id,omitempty"`
	OrderID          *uuid.UUID    `json:"order_id,omitempty"`
	Address          *AddressInput `json:"address,omitempty"`
	Comments         string        `json:"comments,omitempty"`
	InternalComments string        `json:"internal_comments,omitempty"`
	IsHidden         bool          `json:"is_hidden,omitempty"`
}

// UpdateMissionRequest represents the full-replace mission update
type UpdateMissionRequest struct {
	Name             string        `json:"name" validate:"required,min=1,max=100"`
	TypeID           uuid.UUID     `json:"type_id" validate:"required"`
	StatusID         uuid.UUID     `json:"status_id" validate:"required"`
	DateFrom         time.Time     `json:"date_from" validate:"required"`
	DateTo           time.Time     `json:"date_to" validate:"required"`
	TeamLeaderID     *uuid.UUID    `json:"team_leader_id,omitempty"`
	Address          *AddressInput `json:"address,omitempty"`
	Comments         string        `json:"comments,omitempty"`
	InternalComments string        `json:"internal_comments,omitempty"`
}

// AssignmentResponse projects one assignment row
type AssignmentResponse struct {
	ID             uuid.UUID  `json:"id"`
	MissionID      uuid.UUID  `json:"mission_id"`
	TeamLeaderID   *uuid.UUID `json:"team_leader_id,omitempty"`
	TeamLeaderName string     `json:"team_leader_name,omitempty"`
	AssignedAt     string     `json:"assigned_at"`
	OrderIndex     int16      `json:"order_index"`
	IsHidden       bool       `json:"is_hidden"`
}

// MissionResponse projects a mission with its active assignments
type MissionResponse struct {
	ID               uuid.UUID            `json:"id"`
	DisplayID        string               `json:"display_id"`
	Name             string               `json:"name"`
	TypeID           uuid.UUID            `json:"type_id"`
	TypeName         string               `json:"type_name,omitempty"`
	TypeColor        string               `json:"type_color,omitempty"`
	StatusID         uuid.UUID            `json:"status_id"`
	StatusName       string               `json:"status_name,omitempty"`
	OrderID          *uuid.UUID           `json:"order_id,omitempty"`
	ClientName       string               `json:"client_name,omitempty"`
	TeamLeaderID     *uuid.UUID           `json:"team_leader_id,omitempty"`
	DateFrom         time.Time            `json:"date_from"`
	DateTo           time.Time            `json:"date_to"`
	Comments         string               `json:"comments,omitempty"`
	InternalComments string               `json:"internal_comments,omitempty"`
	IsHidden         bool                 `json:"is_hidden"`
	ArchivedAt       *time.Time           `json:"archived_at,omitempty"`
	Assignments      []AssignmentResponse `json:"assignments,omitempty"`
}

// Create creates a mission and seeds one assignment per calendar day of its
// range from today onward. Days already in the past are not seeded.
func (s *MissionService) Create(req *CreateMissionRequest) (*MissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dateFrom := req.DateFrom.UTC()
	dateTo := scheduling.EndOfDay(req.DateTo)
	if dateTo.Before(dateFrom) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.taxonomy.GetMissionTypeByID(req.TypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify mission type: %w", err)
	}
	if _, err := s.taxonomy.GetMissionStatusByID(req.StatusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionStatusNotFound
		}
		return nil, fmt.Errorf("failed to verify mission status: %w", err)
	}

	addressID, err := s.resolveAddress(req.Address, req.OrderID)
	if err != nil {
		return nil, err
	}

	today := scheduling.Today(s.clock)
	var mission models.Mission

	err = s.db.Transaction(func(tx *gorm.DB) error {
		missions := s.missions.WithTx(tx)
		assignments := s.assignments.WithTx(tx)
		forms := s.forms.WithTx(tx)

		displayID, err := missions.NextDisplayID()
		if err != nil {
			return err
		}

		mission = models.Mission{
			DisplayID:        displayID,
			Name:             req.Name,
			TypeID:           req.TypeID,
			StatusID:         req.StatusID,
			OrderID:          req.OrderID,
			TeamLeaderID:     req.TeamLeaderID,
			AddressID:        addressID,
			DateFrom:         dateFrom,
			DateTo:           dateTo,
			Comments:         req.Comments,
			InternalComments: req.InternalComments,
			IsHidden:         req.IsHidden,
		}
		if err := missions.Create(&mission); err != nil {
			return err
		}

		if err := s.seedFormResponses(forms, mission.ID, req.TypeID); err != nil {
			return err
		}

		seed := make([]models.Assignment, 0)
		for _, day := range scheduling.SeedDays(dateFrom, dateTo, today) {
			seed = append(seed, models.Assignment{
				MissionID:    mission.ID,
				TeamLeaderID: req.TeamLeaderID,
				AssignedAt:   day,
				OrderIndex:   0,
				IsHidden:     mission.IsHidden,
			})
		}
		return assignments.CreateBatch(seed)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"mission_id": mission.ID,
		"date_from":  dateFrom,
		"date_to":    dateTo,
	}).Info("mission created")

	return s.GetByID(mission.ID)
}

// Update applies a full mission update and reconciles the assignment days
// with the (possibly changed) date range inside one transaction.
func (s *MissionService) Update(id uuid.UUID, req *UpdateMissionRequest) (*MissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	today := scheduling.Today(s.clock)
	now := s.clock.Now()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		missions := s.missions.WithTx(tx)
		assignments := s.assignments.WithTx(tx)
		forms := s.forms.WithTx(tx)

		mission, err := missions.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMissionNotFound
			}
			return err
		}

		newFrom := req.DateFrom.UTC()
		newTo := mission.DateTo
		if !scheduling.SameDay(req.DateTo, mission.DateTo) {
			newTo = scheduling.EndOfDay(req.DateTo)
		}
		if newTo.Before(newFrom) {
			return apperrors.ErrInvalidDateRange
		}

		edit := scheduling.RangeEdit{
			OldFrom: mission.DateFrom,
			OldTo:   mission.DateTo,
			NewFrom: newFrom,
			NewTo:   newTo,
			Today:   today,
		}

		rangeChanged := !scheduling.SameDay(edit.OldFrom, edit.NewFrom) || !scheduling.SameDay(edit.OldTo, edit.NewTo)
		if rangeChanged {
			if edit.MovesStartIntoPast() {
				return apperrors.ErrRangeIntoPast
			}
			if _, err := assignments.ArchiveOutOfRange(mission.ID, newFrom, newTo, today, now); err != nil {
				return err
			}
			seed := make([]models.Assignment, 0)
			for _, day := range edit.DaysToAdd() {
				seed = append(seed, models.Assignment{
					MissionID:    mission.ID,
					TeamLeaderID: req.TeamLeaderID,
					AssignedAt:   day,
					OrderIndex:   0,
					IsHidden:     mission.IsHidden,
				})
			}
			if err := assignments.CreateBatch(seed); err != nil {
				return err
			}
		}

		// Default team leader change: archive the future days and reseed
		// them for the new leader. History before today is untouched.
		leaderChanged := !uuidPtrEqual(req.TeamLeaderID, mission.TeamLeaderID)
		if leaderChanged {
			if _, err := assignments.ArchiveFromDay(mission.ID, today, now); err != nil {
				return err
			}
			if req.TeamLeaderID != nil {
				seed := make([]models.Assignment, 0)
				for _, day := range scheduling.SeedDays(newFrom, newTo, today) {
					seed = append(seed, models.Assignment{
						MissionID:    mission.ID,
						TeamLeaderID: req.TeamLeaderID,
						AssignedAt:   day,
						OrderIndex:   0,
						IsHidden:     mission.IsHidden,
					})
				}
				if err := assignments.CreateBatch(seed); err != nil {
					return err
				}
			}
		}

		if req.TypeID != mission.TypeID {
			if err := s.seedFormResponses(forms, mission.ID, req.TypeID); err != nil {
				return err
			}
		}

		if req.Address != nil {
			addressID, err := upsertAddress(tx, mission.AddressID, req.Address)
			if err != nil {
				return err
			}
			mission.AddressID = addressID
		}

		mission.Name = req.Name
		mission.TypeID = req.TypeID
		mission.StatusID = req.StatusID
		mission.TeamLeaderID = req.TeamLeaderID
		mission.DateFrom = newFrom
		mission.DateTo = newTo
		mission.Comments = req.Comments
		mission.InternalComments = req.InternalComments

		return missions.Update(mission)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrMissionNotFound) ||
			errors.Is(err, apperrors.ErrRangeIntoPast) ||
			errors.Is(err, apperrors.ErrInvalidDateRange) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}

	return s.GetByID(id)
}

// GetByID returns the detailed mission projection
func (s *MissionService) GetByID(id uuid.UUID) (*MissionResponse, error) {
	mission, err := s.missions.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return missionToResponse(mission), nil
}

// Delete archives a mission and cascades the archive to its active
// assignments in the same transaction.
func (s *MissionService) Delete(id uuid.UUID) error {
	now := s.clock.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.missions.WithTx(tx).Archive(id, now); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMissionNotFound
			}
			return err
		}
		_, err := s.assignments.WithTx(tx).ArchiveAllByMission(id, now)
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrMissionNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	return nil
}

// Unarchive restores an archived mission. Its assignments stay archived;
// the board shows the mission without day coverage until re-planned.
func (s *MissionService) Unarchive(id uuid.UUID) error {
	if err := s.missions.Unarchive(id, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMissionNotFound
		}
		return fmt.Errorf("failed to unarchive mission: %w", err)
	}
	return nil
}

// Duplicate copies a mission under a new identity: same range, taxonomy and
// order, no leader and no assignments.
func (s *MissionService) Duplicate(id uuid.UUID) (*MissionResponse, error) {
	source, err := s.missions.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	var dup models.Mission
	err = s.db.Transaction(func(tx *gorm.DB) error {
		missions := s.missions.WithTx(tx)
		displayID, err := missions.NextDisplayID()
		if err != nil {
			return err
		}
		dup = models.Mission{
			DisplayID:        displayID,
			Name:             "Copie de " + source.Name,
			TypeID:           source.TypeID,
			StatusID:         source.StatusID,
			OrderID:          source.OrderID,
			AddressID:        source.AddressID,
			DateFrom:         source.DateFrom,
			DateTo:           source.DateTo,
			Comments:         source.Comments,
			InternalComments: source.InternalComments,
			IsHidden:         source.IsHidden,
		}
		if err := missions.Create(&dup); err != nil {
			return err
		}
		return s.seedFormResponses(s.forms.WithTx(tx), dup.ID, dup.TypeID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate mission: %w", err)
	}

	return s.GetByID(dup.ID)
}

// seedFormResponses inserts empty placeholder responses for every form of
// the mission type the mission does not answer yet.
func (s *MissionService) seedFormResponses(forms *repository.CustomFormRepository, missionID, typeID uuid.UUID) error {
	attached, err := forms.ListByMissionType(typeID)
	if err != nil {
		return err
	}
	if len(attached) == 0 {
		return nil
	}
	existing, err := forms.ListResponseFormIDs(missionID)
	if err != nil {
		return err
	}
	have := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}
	var responses []models.CustomFormResponse
	for _, form := range attached {
		if have[form.ID] {
			continue
		}
		responses = append(responses, models.CustomFormResponse{
			CustomFormID: form.ID,
			MissionID:    missionID,
			Data:         []byte(`{}`),
		})
	}
	return forms.CreateResponses(responses)
}

func (s *MissionService) resolveAddress(input *AddressInput, orderID *uuid.UUID) (*uuid.UUID, error) {
	if input != nil {
		address := addressFromInput(input)
		if err := s.db.Create(address).Error; err != nil {
			return nil, fmt.Errorf("failed to create address: %w", err)
		}
		return &address.ID, nil
	}
	if orderID != nil {
		order, err := s.orders.GetWithAddress(*orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOrderNotFound
			}
			return nil, fmt.Errorf("failed to get order: %w", err)
		}
		return order.AddressID, nil
	}
	return nil, nil
}

// upsertAddress saves the inline address over the current one, or creates a
// fresh row when the owner had none.
func upsertAddress(tx *gorm.DB, currentID *uuid.UUID, input *AddressInput) (*uuid.UUID, error) {
	address := addressFromInput(input)
	if currentID != nil {
		address.ID = *currentID
		if err := tx.Save(address).Error; err != nil {
			return nil, err
		}
		return currentID, nil
	}
	if err := tx.Create(address).Error; err != nil {
		return nil, err
	}
	return &address.ID, nil
}

func addressFromInput(input *AddressInput) *models.Address {
	return &models.Address{
		Street:         input.Street,
		AdditionalInfo: input.AdditionalInfo,
		PostalCode:     input.PostalCode,
		City:           input.City,
		Country:        input.Country,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
	}
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// missionToResponse projects a preloaded mission row
func missionToResponse(mission *models.Mission) *MissionResponse {
	resp := &MissionResponse{
		ID:               mission.ID,
		DisplayID:        mission.DisplayID,
		Name:             mission.Name,
		TypeID:           mission.TypeID,
		TypeName:         mission.Type.Name,
		TypeColor:        mission.Type.Color,
		StatusID:         mission.StatusID,
		StatusName:       mission.Status.Name,
		OrderID:          mission.OrderID,
		TeamLeaderID:     mission.TeamLeaderID,
		DateFrom:         mission.DateFrom,
		DateTo:           mission.DateTo,
		Comments:         mission.Comments,
		InternalComments: mission.InternalComments,
		IsHidden:         mission.IsHidden,
		ArchivedAt:       mission.ArchivedAt,
	}
	if mission.Order != nil {
		resp.ClientName = mission.Order.Client.CompanyName
	}
	for i := range mission.Assignments {
		resp.Assignments = append(resp.Assignments, assignmentToResponse(&mission.Assignments[i]))
	}
	return resp
}

// assignmentToResponse projects one assignment row
func assignmentToResponse(a *models.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:           a.ID,
		MissionID:    a.MissionID,
		TeamLeaderID: a.TeamLeaderID,
		AssignedAt:   a.AssignedAt.UTC().Format("2006-01-02"),
		OrderIndex:   a.OrderIndex,
		IsHidden:     a.IsHidden,
	}
	if a.TeamLeader != nil {
		resp.TeamLeaderName = a.TeamLeader.FirstName + " " + a.TeamLeader.LastName
	}
	return resp
}
