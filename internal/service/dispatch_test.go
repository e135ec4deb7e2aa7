//go:build integration
// +build integration

package service

import (
	"testing"
	"time"

	"field-dispatch-backend/internal/database/models"
	apperrors "field-dispatch-backend/internal/errors"
	"field-dispatch-backend/internal/repository"
	"field-dispatch-backend/internal/scheduling"
	"field-dispatch-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// testToday is the frozen day every suite in this package schedules against.
var testToday = day("2025-03-12")

// DispatchServiceTestSuite exercises assign, reorder, unassign and visibility
// against a real Postgres.
type DispatchServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *DispatchService
	assignments   *repository.AssignmentRepository
	missionRepo   *repository.MissionRepository
	taxonomies    *testutils.TaxonomyFactory
	users         *testutils.UserFactory
	missions      *testutils.MissionFactory

	typeID   uuid.UUID
	statusID uuid.UUID
	leader   *models.User
}

func (suite *DispatchServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.assignments = repository.NewAssignmentRepository(db)
	suite.missionRepo = repository.NewMissionRepository(db)
	clock := scheduling.FixedClock{Instant: testToday.Add(9 * time.Hour)}
	suite.service = NewDispatchService(
		db,
		suite.missionRepo,
		suite.assignments,
		repository.NewUserRepository(db),
		clock,
	)
	suite.taxonomies = testutils.NewTaxonomyFactory()
	suite.users = testutils.NewUserFactory()
	suite.missions = testutils.NewMissionFactory()
}

func (suite *DispatchServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DispatchServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	mt := suite.taxonomies.MissionType("maintenance")
	ms := suite.taxonomies.MissionStatus("planned")
	suite.NoError(db.Create(mt).Error)
	suite.NoError(db.Create(ms).Error)
	suite.typeID = mt.ID
	suite.statusID = ms.ID

	suite.leader = suite.createTeamLeader()
}

func (suite *DispatchServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeamLeader persists a user holding the teamleader role
func (suite *DispatchServiceTestSuite) createTeamLeader() *models.User {
	db := suite.baseTestSuite.DB
	u := suite.users.Create()
	suite.NoError(db.Create(u).Error)

	var role models.Role
	err := db.Where("name = ?", models.RoleTeamLeader).First(&role).Error
	if err != nil {
		r := suite.users.TeamLeaderRole()
		suite.NoError(db.Create(r).Error)
		role = *r
	}
	suite.NoError(db.Create(&models.UserRole{UserID: u.ID, RoleID: role.ID}).Error)
	return u
}

func (suite *DispatchServiceTestSuite) createMission(from, to time.Time) *models.Mission {
	m := suite.missions.Create(suite.typeID, suite.statusID, from, to)
	suite.NoError(suite.baseTestSuite.DB.Create(m).Error)
	return m
}

func (suite *DispatchServiceTestSuite) createAssignment(missionID uuid.UUID, leaderID *uuid.UUID, d time.Time, index int16) *models.Assignment {
	a := suite.missions.Assignment(missionID, leaderID, d, index)
	suite.NoError(suite.assignments.Create(a))
	return a
}

func (suite *DispatchServiceTestSuite) bucketIndexes(leaderID *uuid.UUID, d time.Time) map[uuid.UUID]int16 {
	bucket, err := suite.assignments.ListBucket(leaderID, d)
	suite.NoError(err)
	out := make(map[uuid.UUID]int16, len(bucket))
	for _, a := range bucket {
		out[a.ID] = a.OrderIndex
	}
	return out
}

func (suite *DispatchServiceTestSuite) TestAssignDay_ReplacesUnassignedRow() {
	d := day("2025-03-13")
	m := suite.createMission(d, d)
	unassigned := suite.createAssignment(m.ID, nil, d, 0)

	resp, err := suite.service.AssignDay(m.ID, suite.leader.ID, d, 0)
	suite.NoError(err)
	suite.NotNil(resp)
	suite.Equal(m.ID, resp.Mission.ID)
	suite.Equal(int16(0), resp.Assignment.OrderIndex)
	suite.NotNil(resp.Assignment.TeamLeaderID)
	suite.Equal(suite.leader.ID, *resp.Assignment.TeamLeaderID)

	// the old unassigned row is archived, not moved
	old, err := suite.assignments.GetByID(unassigned.ID)
	suite.NoError(err)
	suite.True(old.IsArchived())

	nullBucket, err := suite.assignments.ListBucket(nil, d)
	suite.NoError(err)
	suite.Empty(nullBucket)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_InsertsAtRequestedIndexAndShifts() {
	d := day("2025-03-13")
	m1 := suite.createMission(d, d)
	m2 := suite.createMission(d, d)
	m3 := suite.createMission(d, d)
	a0 := suite.createAssignment(m1.ID, &suite.leader.ID, d, 0)
	a1 := suite.createAssignment(m2.ID, &suite.leader.ID, d, 1)

	resp, err := suite.service.AssignDay(m3.ID, suite.leader.ID, d, 1)
	suite.NoError(err)
	suite.Equal(int16(1), resp.Assignment.OrderIndex)

	indexes := suite.bucketIndexes(&suite.leader.ID, d)
	suite.Len(indexes, 3)
	suite.Equal(int16(0), indexes[a0.ID])
	suite.Equal(int16(2), indexes[a1.ID])
}

func (suite *DispatchServiceTestSuite) TestAssignDay_IndexClampedToBucketSize() {
	d := day("2025-03-13")
	m1 := suite.createMission(d, d)
	m2 := suite.createMission(d, d)
	suite.createAssignment(m1.ID, &suite.leader.ID, d, 0)

	resp, err := suite.service.AssignDay(m2.ID, suite.leader.ID, d, 40)
	suite.NoError(err)
	suite.Equal(int16(1), resp.Assignment.OrderIndex)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_ExpandsRangeForward() {
	m := suite.createMission(day("2025-03-13"), day("2025-03-14"))

	_, err := suite.service.AssignDay(m.ID, suite.leader.ID, day("2025-03-18"), 0)
	suite.NoError(err)

	got, err := suite.missionRepo.GetByID(m.ID)
	suite.NoError(err)
	suite.True(scheduling.SameDay(day("2025-03-18"), got.DateTo))
	suite.True(scheduling.SameDay(day("2025-03-13"), got.DateFrom))
}

func (suite *DispatchServiceTestSuite) TestAssignDay_ExpandsRangeBackward() {
	m := suite.createMission(day("2025-03-18"), day("2025-03-20"))

	_, err := suite.service.AssignDay(m.ID, suite.leader.ID, day("2025-03-14"), 0)
	suite.NoError(err)

	got, err := suite.missionRepo.GetByID(m.ID)
	suite.NoError(err)
	suite.True(scheduling.SameDay(day("2025-03-14"), got.DateFrom))
	suite.True(scheduling.SameDay(day("2025-03-20"), got.DateTo))
}

func (suite *DispatchServiceTestSuite) TestAssignDay_PastDayRejected() {
	m := suite.createMission(day("2025-03-10"), day("2025-03-14"))

	_, err := suite.service.AssignDay(m.ID, suite.leader.ID, day("2025-03-11"), 0)
	suite.ErrorIs(err, apperrors.ErrPastDay)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_TodayAccepted() {
	m := suite.createMission(testToday, testToday)

	_, err := suite.service.AssignDay(m.ID, suite.leader.ID, testToday, 0)
	suite.NoError(err)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_UnknownLeaderRejected() {
	m := suite.createMission(testToday, testToday)

	_, err := suite.service.AssignDay(m.ID, uuid.New(), testToday, 0)
	suite.ErrorIs(err, apperrors.ErrTeamLeaderNotFound)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_WronglyRoledUserRejected() {
	m := suite.createMission(testToday, testToday)
	plain := suite.users.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(plain).Error)

	_, err := suite.service.AssignDay(m.ID, plain.ID, testToday, 0)
	suite.ErrorIs(err, apperrors.ErrTeamLeaderNotFound)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_ArchivedMissionRejected() {
	m := suite.createMission(testToday, testToday)
	suite.NoError(suite.missionRepo.Archive(m.ID, time.Now().UTC()))

	_, err := suite.service.AssignDay(m.ID, suite.leader.ID, testToday, 0)
	suite.ErrorIs(err, apperrors.ErrMissionArchived)
}

func (suite *DispatchServiceTestSuite) TestAssignDay_MissionNotFound() {
	_, err := suite.service.AssignDay(uuid.New(), suite.leader.ID, testToday, 0)
	suite.ErrorIs(err, apperrors.ErrMissionNotFound)
}

func (suite *DispatchServiceTestSuite) TestReorder_RenumbersDensely() {
	d := day("2025-03-13")
	var as []*models.Assignment
	for i := 0; i < 4; i++ {
		m := suite.createMission(d, d)
		as = append(as, suite.createAssignment(m.ID, &suite.leader.ID, d, int16(i)))
	}

	id, err := suite.service.Reorder(as[3].ID, 0)
	suite.NoError(err)
	suite.Equal(as[3].ID, id)

	indexes := suite.bucketIndexes(&suite.leader.ID, d)
	suite.Equal(int16(0), indexes[as[3].ID])
	suite.Equal(int16(1), indexes[as[0].ID])
	suite.Equal(int16(2), indexes[as[1].ID])
	suite.Equal(int16(3), indexes[as[2].ID])
}

// TestReorder_RepairsGapLeftByUnassign verifies that after an unassign left
// a hole in the ranks, the next reorder renumbers the survivors 0..n-1.
func (suite *DispatchServiceTestSuite) TestReorder_RepairsGapLeftByUnassign() {
	d := day("2025-03-13")
	var as []*models.Assignment
	for i := 0; i < 4; i++ {
		m := suite.createMission(d, d)
		as = append(as, suite.createAssignment(m.ID, &suite.leader.ID, d, int16(i)))
	}

	_, err := suite.service.Unassign(as[1].ID)
	suite.NoError(err)

	// gap at rank 1 until the next bucket mutation
	_, err = suite.service.Reorder(as[0].ID, 2)
	suite.NoError(err)

	indexes := suite.bucketIndexes(&suite.leader.ID, d)
	suite.Len(indexes, 3)
	suite.Equal(int16(0), indexes[as[2].ID])
	suite.Equal(int16(1), indexes[as[3].ID])
	suite.Equal(int16(2), indexes[as[0].ID])
}

func (suite *DispatchServiceTestSuite) TestReorder_PastDayRejected() {
	m := suite.createMission(day("2025-03-10"), day("2025-03-14"))
	a := suite.createAssignment(m.ID, &suite.leader.ID, day("2025-03-11"), 0)
	b := suite.createAssignment(m.ID, &suite.leader.ID, day("2025-03-11"), 1)

	_, err := suite.service.Reorder(a.ID, 1)
	suite.ErrorIs(err, apperrors.ErrPastDay)

	indexes := suite.bucketIndexes(&suite.leader.ID, day("2025-03-11"))
	suite.Equal(int16(0), indexes[a.ID])
	suite.Equal(int16(1), indexes[b.ID])
}
	_, err := suite.service.Reorder(uuid.New(), 0)
	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (suite *DispatchServiceTestSuite) TestUnassign_ArchivesRow() {
	d := day("2025-03-13")
	m := suite.createMission(d, d)
	a := suite.createAssignment(m.ID, &suite.leader.ID, d, 0)

	id, err := suite.service.Unassign(a.ID)
	suite.NoError(err)
	suite.Equal(a.ID, id)

	got, err := suite.assignments.GetByID(a.ID)
	suite.NoError(err)
	suite.True(got.IsArchived())
}

func (suite *DispatchServiceTestSuite) TestUnassign_PastDayRejected() {
	m := suite.createMission(day("2025-03-10"), day("2025-03-14"))
	a := suite.createAssignment(m.ID, &suite.leader.ID, day("2025-03-11"), 0)

	_, err := suite.service.Unassign(a.ID)
	suite.ErrorIs(err, apperrors.ErrPastDay)
}

func (suite *DispatchServiceTestSuite) TestUnassign_TwiceIsNotFound() {
	d := day("2025-03-13")
	m := suite.createMission(d, d)
	a := suite.createAssignment(m.ID, &suite.leader.ID, d, 0)

	_, err := suite.service.Unassign(a.ID)
	suite.NoError(err)

	_, err = suite.service.Unassign(a.ID)
	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (suite *DispatchServiceTestSuite) TestSetMissionVisibility() {
	m := suite.createMission(testToday, testToday)

	hidden, err := suite.service.SetMissionVisibility(m.ID, true)
	suite.NoError(err)
	suite.True(hidden)

	got, err := suite.missionRepo.GetByID(m.ID)
	suite.NoError(err)
	suite.True(got.IsHidden)
}

func (suite *DispatchServiceTestSuite) TestSetAssignmentVisibility_NotFound() {
	_, err := suite.service.SetAssignmentVisibility(uuid.New(), true)
	suite.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func TestDispatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchServiceTestSuite))
}
