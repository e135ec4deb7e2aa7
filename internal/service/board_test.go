//go:build integration
// +build integration

package service

import (
	"testing"
	"time"

	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/repository"
	"field-dispatch-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// BoardServiceTestSuite exercises the board projections against a real
// Postgres.
type BoardServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *BoardService
	assignments   *repository.AssignmentRepository
	settings      *repository.SettingRepository
	taxonomies    *testutils.TaxonomyFactory
	users         *testutils.UserFactory
	missions      *testutils.MissionFactory

	typeID     uuid.UUID
	statusID   uuid.UUID
	finishedID uuid.UUID
	leader     *models.User
}

func (suite *BoardServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.assignments = repository.NewAssignmentRepository(db)
	suite.settings = repository.NewSettingRepository(db)
	suite.service = NewBoardService(
		repository.NewMissionRepository(db),
		suite.assignments,
		repository.NewTaxonomyRepository(db),
		suite.settings,
	)
	suite.taxonomies = testutils.NewTaxonomyFactory()
	suite.users = testutils.NewUserFactory()
	suite.missions = testutils.NewMissionFactory()
}

func (suite *BoardServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *BoardServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	mt := suite.taxonomies.MissionType("maintenance")
	ms := suite.taxonomies.MissionStatus("planned")
	fin := suite.taxonomies.MissionStatus(models.MissionStatusFinished)
	suite.NoError(db.Create(mt).Error)
	suite.NoError(db.Create(ms).Error)
	suite.NoError(db.Create(fin).Error)
	suite.typeID = mt.ID
	suite.statusID = ms.ID
	suite.finishedID = fin.ID

	suite.leader = suite.users.Create()
	suite.NoError(db.Create(suite.leader).Error)
}

func (suite *BoardServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BoardServiceTestSuite) createMission(from, to time.Time) *models.Mission {
	m := suite.missions.Create(suite.typeID, suite.statusID, from, to)
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)
	return m
}

func (suite *BoardServiceTestSuite) assign(missionID uuid.UUID, leaderID *uuid.UUID, d time.Time) {
	a := suite.missions.Assignment(missionID, leaderID, d, 0)
	suite.NoError(suite.assignments.Create(a))
}

func (suite *BoardServiceTestSuite) TestUnassignedInWindow_SingleDay() {
	d := day("2025-03-13")
	staffed := suite.createMission(d, d)
	suite.assign(staffed.ID, &suite.leader.ID, d)
	pooled := suite.createMission(d, d)
	suite.assign(pooled.ID, nil, d)
	outside := suite.createMission(day("2025-03-20"), day("2025-03-21"))
	suite.assign(outside.ID, nil, day("2025-03-20"))

	got, err := suite.service.UnassignedInWindow(d, nil)
	suite.NoError(err)
	suite.Len(got, 1)
	suite.Equal(pooled.ID, got[0].ID)
}

// TestUnassignedInWindow_SingleDaySaturday covers the single-day form on a
// weekend: the day still counts.
func (suite *BoardServiceTestSuite) TestUnassignedInWindow_SingleDaySaturday() {
	sat := day("2025-03-15")
	m := suite.createMission(sat, sat)
	suite.assign(m.ID, nil, sat)

	got, err := suite.service.UnassignedInWindow(sat, nil)
	suite.NoError(err)
	suite.Len(got, 1)
}

// TestUnassignedInWindow_WeekendOnlyStaffingIgnored covers the windowed form:
// weekends are not working days, so a mission staffed only on Saturday still
// needs dispatch.
func (suite *BoardServiceTestSuite) TestUnassignedInWindow_WeekendOnlyStaffingIgnored() {
	from, to := day("2025-03-10"), day("2025-03-16")
	m := suite.createMission(from, to)
	suite.assign(m.ID, &suite.leader.ID, day("2025-03-15"))

	got, err := suite.service.UnassignedInWindow(from, &to)
	suite.NoError(err)
	suite.Len(got, 1)
	suite.Equal(m.ID, got[0].ID)
}

func (suite *BoardServiceTestSuite) TestUnassignedInWindow_PartialStaffingExcludes() {
	from, to := day("2025-03-10"), day("2025-03-14")
	m := suite.createMission(from, to)
	suite.assign(m.ID, nil, day("2025-03-10"))
	suite.assign(m.ID, &suite.leader.ID, day("2025-03-12"))

	got, err := suite.service.UnassignedInWindow(from, &to)
	suite.NoError(err)
	suite.Empty(got)
}

func (suite *BoardServiceTestSuite) TestUnassignedInWindow_FinishedStatusStillListed() {
	d := day("2025-03-13")
	m := suite.missions.Create(suite.typeID, suite.finishedID, d, d)
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)
	suite.assign(m.ID, nil, d)

	// The pool ignores mission status: a finished mission with an unstaffed
	// day is still unassigned.
	got, err := suite.service.UnassignedInWindow(d, nil)
	suite.NoError(err)
	suite.Len(got, 1)
	suite.Equal(m.ID, got[0].ID)
}

func (suite *BoardServiceTestSuite) TestUnassignedInWindow_InvertedRange() {
	from, to := day("2025-03-14"), day("2025-03-10")
	_, err := suite.service.UnassignedInWindow(from, &to)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *BoardServiceTestSuite) TestDetailedInWindow_RestrictsAssignmentsToWindow() {
	m := suite.createMission(day("2025-03-10"), day("2025-03-20"))
	suite.assign(m.ID, &suite.leader.ID, day("2025-03-10"))
	suite.assign(m.ID, &suite.leader.ID, day("2025-03-13"))
	suite.assign(m.ID, &suite.leader.ID, day("2025-03-20"))

	got, err := suite.service.DetailedInWindow(day("2025-03-12"), day("2025-03-14"), false)
	suite.NoError(err)
	suite.Len(got, 1)
	suite.Len(got[0].Assignments, 1)
	suite.Equal("2025-03-13", got[0].Assignments[0].AssignedAt)
}

func (suite *BoardServiceTestSuite) TestDetailedInWindow_MultiTeamLeaderFlag() {
	other := suite.users.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	from, to := day("2025-03-10"), day("2025-03-11")
	two := suite.createMission(from, to)
	suite.assign(two.ID, &suite.leader.ID, from)
	suite.assign(two.ID, &other.ID, to)
	one := suite.createMission(from, to)
	suite.assign(one.ID, &suite.leader.ID, from)
	suite.assign(one.ID, &suite.leader.ID, to)

	got, err := suite.service.DetailedInWindow(from, to, false)
	suite.NoError(err)
	suite.Len(got, 2)
	flags := make(map[uuid.UUID]bool, 2)
	for _, r := range got {
		flags[r.ID] = r.MultiTeamLeader
	}
	suite.True(flags[two.ID])
	suite.False(flags[one.ID])
}

// TestDetailedInWindow_HasHolesRespectsWeekendSetting: a Mon-Sun mission with
// only weekdays covered has no holes until the board shows weekends.
func (suite *BoardServiceTestSuite) TestDetailedInWindow_HasHolesRespectsWeekendSetting() {
	from, to := day("2025-03-10"), day("2025-03-16")
	m := suite.createMission(from, to)
	for d := from; !d.After(day("2025-03-14")); d = d.AddDate(0, 0, 1) {
		suite.assign(m.ID, &suite.leader.ID, d)
	}

	got, err := suite.service.DetailedInWindow(from, to, false)
	suite.NoError(err)
	suite.Len(got, 1)
	suite.False(got[0].HasHoles)

	_, err = suite.settings.Upsert(models.SettingShowWeekends, "true")
	suite.NoError(err)

	got, err = suite.service.DetailedInWindow(from, to, false)
	suite.NoError(err)
	suite.True(got[0].HasHoles)
}

func (suite *BoardServiceTestSuite) TestDetailedInWindow_IncludeFinished() {
	d := day("2025-03-13")
	m := suite.missions.Create(suite.typeID, suite.finishedID, d, d)
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)
	suite.assign(m.ID, &suite.leader.ID, d)

	got, err := suite.service.DetailedInWindow(d, d, false)
	suite.NoError(err)
	suite.Empty(got)

	got, err = suite.service.DetailedInWindow(d, d, true)
	suite.NoError(err)
	suite.Len(got, 1)
}

func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}
