package service

import (
	"errors"
	"fmt"
	"time"

	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/repository"
	"field-dispatch-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DispatchService is the mutating surface of the scheduling engine: assign a
// mission day to a team leader, reorder a leader's day queue, unassign a day,
// flip visibility. Every operation runs inside one transaction holding an
// advisory lock on the touched bucket, so concurrent mutations of the same
// (team leader, day) queue serialize instead of racing the renumbering.
type DispatchService struct {
	db          *gorm.DB
	missions    *repository.MissionRepository
	assignments *repository.AssignmentRepository
	users       *repository.UserRepository
	clock       scheduling.Clock
}

// NewDispatchService creates a new dispatch service
func NewDispatchService(
	db *gorm.DB,
	missions *repository.MissionRepository,
	assignments *repository.AssignmentRepository,
	users *repository.UserRepository,
	clock scheduling.Clock,
) *DispatchService {
	return &DispatchService{
		db:          db,
		missions:    missions,
		assignments: assignments,
		users:       users,
		clock:       clock,
	}
}

// AssignResponse is returned by AssignDay
type AssignResponse struct {
	Mission    MissionResponse    `json:"mission"`
	Assignment AssignmentResponse `json:"assignment"`
}

// AssignDay assigns a mission's given calendar day to a team leader at the
// requested queue position. An existing assignment of that mission on that
// day is archived and replaced; the mission's range expands one-sidedly when
// the day lies outside it.
func (s *DispatchService) AssignDay(missionID, teamLeaderID uuid.UUID, day time.Time, requestedIndex int) (*AssignResponse, error) {
	today := scheduling.Today(s.clock)
	bucketDay := scheduling.DayOf(day)
	if bucketDay.Before(today) {
		return nil, apperrors.ErrPastDay
	}

	leader, err := s.users.GetActiveTeamLeader(teamLeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamLeaderNotFound
		}
		return nil, fmt.Errorf("failed to resolve team leader: %w", err)
	}

	now := s.clock.Now()
	var created models.Assignment

	err = s.db.Transaction(func(tx *gorm.DB) error {
		missions := s.missions.WithTx(tx)
		assignments := s.assignments.WithTx(tx)

		mission, err := missions.GetByID(missionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMissionNotFound
			}
			return err
		}
		if mission.IsArchived() {
			return apperrors.ErrMissionArchived
		}

		if err := assignments.LockBucket(&teamLeaderID, bucketDay); err != nil {
			return err
		}

		// One-sided range expansion; a bound never moves into the past.
		if bucketDay.After(mission.DateTo) {
			mission.DateTo = scheduling.EndOfDay(bucketDay)
			if err := missions.Update(mission); err != nil {
				return err
			}
		} else if bucketDay.Before(scheduling.DayOf(mission.DateFrom)) {
			mission.DateFrom = bucketDay
			if err := missions.Update(mission); err != nil {
				return err
			}
		}

		// Replace, not duplicate: any active assignment the mission already
		// holds on that day is archived first.
		if _, err := assignments.ArchiveByMissionAndDay(missionID, bucketDay, now); err != nil {
			return err
		}

		bucket, err := assignments.ListBucket(&teamLeaderID, bucketDay)
		if err != nil {
			return err
		}
		index := scheduling.ClampIndex(requestedIndex, len(bucket))
		if err := assignments.ShiftBucketFrom(&teamLeaderID, bucketDay, index, now); err != nil {
			return err
		}

		created = models.Assignment{
			MissionID:    missionID,
			TeamLeaderID: &teamLeaderID,
			AssignedAt:   bucketDay,
			OrderIndex:   int16(index),
			IsHidden:     mission.IsHidden,
		}
		return assignments.Create(&created)
	})
	if err != nil {
		return nil, dispatchError("assign", err)
	}

	logrus.WithFields(logrus.Fields{
		"mission_id":     missionID,
		"team_leader_id": teamLeaderID,
		"day":            bucketDay.Format("2006-01-02"),
		"order_index":    created.OrderIndex,
	}).Info("mission day assigned")

	missionResp, err := missionProjection(s.missions, missionID)
	if err != nil {
		return nil, err
	}
	created.TeamLeader = leader
	return &AssignResponse{
		Mission:    *missionResp,
		Assignment: assignmentToResponse(&created),
	}, nil
}

// Reorder moves an assignment to a new position in its bucket and renumbers
// the whole bucket densely, repairing any gaps left by earlier unassigns.
func (s *DispatchService) Reorder(assignmentID uuid.UUID, newIndex int) (uuid.UUID, error) {
	now := s.clock.Now()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		assignments := s.assignments.WithTx(tx)

		target, err := assignments.GetByID(assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAssignmentNotFound
			}
			return err
		}
		if target.IsArchived() {
			return apperrors.ErrAssignmentNotFound
		}
		if scheduling.DayOf(target.AssignedAt).Before(scheduling.Today(s.clock)) {
			return apperrors.ErrPastDay
		}

		if err := assignments.LockBucket(target.TeamLeaderID, target.AssignedAt); err != nil {
			return err
		}

		bucket, err := assignments.ListBucket(target.TeamLeaderID, target.AssignedAt)
		if err != nil {
			return err
		}
		ids := make([]uuid.UUID, len(bucket))
		for i := range bucket {
			ids[i] = bucket[i].ID
		}

		for position, id := range scheduling.Reorder(ids, assignmentID, newIndex) {
			if err := assignments.SetOrderIndex(id, position, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, dispatchError("reorder", err)
	}
	return assignmentID, nil
}

// Unassign archives an assignment. The rest of the bucket keeps its ranks;
// the gap is repaired lazily by the next AssignDay or Reorder on the bucket.
func (s *DispatchService) Unassign(assignmentID uuid.UUID) (uuid.UUID, error) {
	assignment, err := s.assignments.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrAssignmentNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment.IsArchived() {
		return uuid.Nil, apperrors.ErrAssignmentNotFound
	}
	if scheduling.DayOf(assignment.AssignedAt).Before(scheduling.Today(s.clock)) {
		return uuid.Nil, apperrors.ErrPastDay
	}

	now := s.clock.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		assignments := s.assignments.WithTx(tx)
		if err := assignments.LockBucket(assignment.TeamLeaderID, assignment.AssignedAt); err != nil {
			return err
		}
		return assignments.Archive(assignmentID, now)
	})
	if err != nil {
		return uuid.Nil, dispatchError("unassign", err)
	}

	logrus.WithField("assignment_id", assignmentID).Info("mission day unassigned")
	return assignmentID, nil
}

// SetMissionVisibility flips a mission's board-level visibility flag
func (s *DispatchService) SetMissionVisibility(missionID uuid.UUID, hidden bool) (bool, error) {
	if err := s.missions.SetHidden(missionID, hidden, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrMissionNotFound
		}
		return false, fmt.Errorf("failed to update mission visibility: %w", err)
	}
	return hidden, nil
}

// SetAssignmentVisibility flips one day's visibility flag, independent of
// the mission-level flag.
func (s *DispatchService) SetAssignmentVisibility(assignmentID uuid.UUID, hidden bool) (bool, error) {
	if err := s.assignments.SetHidden(assignmentID, hidden, s.clock.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrAssignmentNotFound
		}
		return false, fmt.Errorf("failed to update assignment visibility: %w", err)
	}
	return hidden, nil
}

// dispatchError passes through domain errors and wraps everything else as a
// generic transactional failure.
func dispatchError(op string, err error) error {
	if errors.Is(err, apperrors.ErrMissionNotFound) ||
		errors.Is(err, apperrors.ErrAssignmentNotFound) ||
		errors.Is(err, apperrors.ErrMissionArchived) ||
		apperrors.IsPastDate(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// missionProjection loads the detailed projection outside the write
// transaction.
func missionProjection(missions *repository.MissionRepository, id uuid.UUID) (*MissionResponse, error) {
	mission, err := missions.GetWithDetails(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload mission: %w", err)
	}
	return missionToResponse(mission), nil
}
