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
	"gorm.io/gorm"
)

// BoardService serves the read-only projections behind the planning board:
// the "needs dispatch" pool and the detailed window view. It never mutates.
type BoardService struct {
	missions    *repository.MissionRepository
	assignments *repository.AssignmentRepository
	taxonomy    *repository.TaxonomyRepository
	settings    *repository.SettingRepository
}

// NewBoardService creates a new board service
func NewBoardService(
	missions *repository.MissionRepository,
	assignments *repository.AssignmentRepository,
	taxonomy *repository.TaxonomyRepository,
	settings *repository.SettingRepository,
) *BoardService {
	return &BoardService{
		missions:    missions,
		assignments: assignments,
		taxonomy:    taxonomy,
		settings:    settings,
	}
}

// DetailedMissionResponse is a mission as the board renders it: its active
// assignments restricted to the queried window plus the derived flags the
// dispatch UI colors cards with.
type DetailedMissionResponse struct {
	MissionResponse
	MultiTeamLeader bool `json:"multi_team_leader"`
	HasHoles        bool `json:"has_holes"`
}

// UnassignedInWindow returns the missions intersecting the window that carry
// no leader-assigned day on any working day of it. With dateTo omitted the
// window is the single day dateFrom and weekends are not skipped.
func (s *BoardService) UnassignedInWindow(dateFrom time.Time, dateTo *time.Time) ([]MissionResponse, error) {
	from := scheduling.DayOf(dateFrom)
	to := from
	singleDay := dateTo == nil
	if !singleDay {
		to = scheduling.DayOf(*dateTo)
		if to.Before(from) {
			return nil, apperrors.ErrInvalidDateRange
		}
	}

	// Status does not matter here: the pool is defined by the window and the
	// absence of leader-assigned days alone.
	missions, err := s.missions.ListIntersecting(from, scheduling.EndOfDay(to), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	var days []time.Time
	if singleDay {
		days = []time.Time{from}
	} else {
		days = scheduling.WorkingDays(from, to, false)
	}

	responses := make([]MissionResponse, 0)
	for i := range missions {
		assignments, err := s.assignments.ListActiveByMission(missions[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list assignments: %w", err)
		}
		if !staffedOnAny(assignments, days) {
			responses = append(responses, *missionToResponse(&missions[i]))
		}
	}
	return responses, nil
}

// DetailedInWindow returns the missions intersecting [dateFrom, dateTo] with
// their active assignments restricted to the window and ranked, finished
// missions excluded unless asked for.
func (s *BoardService) DetailedInWindow(dateFrom, dateTo time.Time, includeFinished bool) ([]DetailedMissionResponse, error) {
	from := scheduling.DayOf(dateFrom)
	to := scheduling.DayOf(dateTo)
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	var excludeStatusID *uuid.UUID
	if !includeFinished {
		id, err := s.finishedStatusID()
		if err != nil {
			return nil, err
		}
		excludeStatusID = id
	}

	missions, err := s.missions.ListIntersecting(from, scheduling.EndOfDay(to), excludeStatusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	showWeekends, err := s.settings.ShowWeekends()
	if err != nil {
		return nil, fmt.Errorf("failed to read show_weekends: %w", err)
	}

	responses := make([]DetailedMissionResponse, 0, len(missions))
	for i := range missions {
		mission := &missions[i]
		assignments, err := s.assignments.ListActiveByMission(mission.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list assignments: %w", err)
		}

		resp := DetailedMissionResponse{
			MissionResponse: *missionToResponse(mission),
			MultiTeamLeader: distinctLeaders(assignments) > 1,
			HasHoles:        hasHoles(mission, assignments, showWeekends),
		}
		resp.Assignments = windowedAssignments(assignments, from, to)
		responses = append(responses, resp)
	}
	return responses, nil
}

// staffedOnAny reports whether any of the days carries an active assignment
// with a concrete leader.
func staffedOnAny(assignments []models.Assignment, days []time.Time) bool {
	for _, a := range assignments {
		if a.TeamLeaderID == nil {
			continue
		}
		for _, d := range days {
			if scheduling.SameDay(a.AssignedAt, d) {
				return true
			}
		}
	}
	return false
}

// distinctLeaders counts the distinct concrete leaders across the
// assignments.
func distinctLeaders(assignments []models.Assignment) int {
	seen := make(map[uuid.UUID]struct{})
	for _, a := range assignments {
		if a.TeamLeaderID != nil {
			seen[*a.TeamLeaderID] = struct{}{}
		}
	}
	return len(seen)
}

// hasHoles reports whether some working day of the mission's range lacks an
// active assignment. Weekends only count as holes when the board shows them.
func hasHoles(mission *models.Mission, assignments []models.Assignment, showWeekends bool) bool {
	covered := make(map[time.Time]struct{}, len(assignments))
	for _, a := range assignments {
		covered[scheduling.DayOf(a.AssignedAt)] = struct{}{}
	}
	for _, d := range scheduling.WorkingDays(mission.DateFrom, mission.DateTo, showWeekends) {
		if _, ok := covered[d]; !ok {
			return true
		}
	}
	return false
}

// windowedAssignments keeps the assignments whose day falls inside [from, to],
// ordered by day then rank as loaded.
func windowedAssignments(assignments []models.Assignment, from, to time.Time) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		day := scheduling.DayOf(assignments[i].AssignedAt)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, assignmentToResponse(&assignments[i]))
	}
	return out
}

// finishedStatusID resolves the terminal mission status used to filter board
// listings. A missing seed row disables the filter rather than failing reads.
func (s *BoardService) finishedStatusID() (*uuid.UUID, error) {
	status, err := s.taxonomy.GetMissionStatusByName(models.MissionStatusFinished)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve finished status: %w", err)
	}
	return &status.ID, nil
}
