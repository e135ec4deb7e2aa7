package repository

import (
	"time"

	"field-dispatch-backend/internal/database/models"
	"field-dispatch-backend/internal/scheduling"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignment rows.
// Archived rows are immutable: every mutating statement here carries an
// `archived_at IS NULL` guard, so history can never be renumbered, moved or
// re-archived.
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// WithTx returns a repository scoped to the given transaction.
func (r *AssignmentRepository) WithTx(tx *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: tx}
}

// Create inserts a new assignment row
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// CreateBatch inserts assignment rows in bulk
func (r *AssignmentRepository) CreateBatch(assignments []models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.Create(&assignments).Error
}

// GetByID retrieves an assignment by ID, archived or not
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// bucketScope filters to the active rows of one (team leader, day) bucket,
// null-aware on the team leader side.
func (r *AssignmentRepository) bucketScope(teamLeaderID *uuid.UUID, day time.Time) *gorm.DB {
	q := r.db.Model(&models.Assignment{}).
		Where("assigned_at = ?", scheduling.DayOf(day)).
		Where("archived_at IS NULL")
	if teamLeaderID == nil {
		return q.Where("team_leader_id IS NULL")
	}
	return q.Where("team_leader_id = ?", *teamLeaderID)
}

// ListBucket returns the active assignments of a (team leader, day) bucket
// ordered by their rank.
func (r *AssignmentRepository) ListBucket(teamLeaderID *uuid.UUID, day time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.bucketScope(teamLeaderID, day).Order("order_index ASC").Find(&assignments).Error
	return assignments, err
}

// ListActiveByMission returns a mission's active assignments ordered by day.
func (r *AssignmentRepository) ListActiveByMission(missionID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.
		Where("mission_id = ? AND archived_at IS NULL", missionID).
		Order("assigned_at ASC").
		Find(&assignments).Error
	return assignments, err
}

// ListActiveInWindow returns all active assignments whose day falls in
// [from, to], ordered by day then rank.
func (r *AssignmentRepository) ListActiveInWindow(from, to time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.
		Where("assigned_at >= ? AND assigned_at <= ? AND archived_at IS NULL", scheduling.DayOf(from), scheduling.DayOf(to)).
		Order("assigned_at ASC, order_index ASC").
		Find(&assignments).Error
	return assignments, err
}

// Archive soft-deletes one active assignment. Archiving an already archived
// row is a no-op by the archived_at IS NULL guard.
func (r *AssignmentRepository) Archive(id uuid.UUID, now time.Time) error {
	return r.db.Model(&models.Assignment{}).
		Where("id = ? AND archived_at IS NULL", id).
		Updates(map[string]interface{}{"archived_at": now, "updated_at": now}).Error
}

// ArchiveByMissionAndDay archives every active assignment a mission holds on
// one day. Steady state is a single row; the broad match repairs transient
// duplicates.
func (r *AssignmentRepository) ArchiveByMissionAndDay(missionID uuid.UUID, day time.Time, now time.Time) (int64, error) {
	res := r.db.Model(&models.Assignment{}).
		Where("mission_id = ? AND assigned_at = ? AND archived_at IS NULL", missionID, scheduling.DayOf(day)).
		Updates(map[string]interface{}{"archived_at": now, "updated_at": now})
	return res.RowsAffected, res.Error
}

// ArchiveOutOfRange archives a mission's active assignments that fell out of
// [from, to] on a range shrink. Days before today stay untouched: they are
// completed history.
func (r *AssignmentRepository) ArchiveOutOfRange(missionID uuid.UUID, from, to, today, now time.Time) (int64, error) {
	res := r.db.Model(&models.Assignment{}).
		Where("mission_id = ? AND archived_at IS NULL", missionID).
		Where("assigned_at > ? OR (assigned_at < ? AND assigned_at >= ?)", scheduling.DayOf(to), scheduling.DayOf(from), scheduling.DayOf(today)).
		Updates(map[string]interface{}{"archived_at": now, "updated_at": now})
	return res.RowsAffected, res.Error
}

// ArchiveFromDay archives a mission's active assignments dated today or
// later; used when the mission's default leader changes or the mission is
// deleted.
func (r *AssignmentRepository) ArchiveFromDay(missionID uuid.UUID, day, now time.Time) (int64, error) {
	res := r.db.Model(&models.Assignment{}).
		Where("mission_id = ? AND assigned_at >= ? AND archived_at IS NULL", missionID, scheduling.DayOf(day)).
		Updates(map[string]interface{}{"archived_at": now, "updated_at": now})
	return res.RowsAffected, res.Error
}

// ArchiveAllByMission archives every active assignment of a mission; used
// when the mission itself is archived.
func (r *AssignmentRepository) ArchiveAllByMission(missionID uuid.UUID, now time.Time) (int64, error) {
	res := r.db.Model(&models.Assignment{}).
		Where("mission_id = ? AND archived_at IS NULL", missionID).
		Updates(map[string]interface{}{"archived_at": now, "updated_at": now})
	return res.RowsAffected, res.Error
}

// ShiftBucketFrom increments the rank of every active bucket entry at or
// after fromIndex, opening a slot for an insert.
func (r *AssignmentRepository) ShiftBucketFrom(teamLeaderID *uuid.UUID, day time.Time, fromIndex int, now time.Time) error {
	return r.bucketScope(teamLeaderID, day).
		Where("order_index >= ?", fromIndex).
		Updates(map[string]interface{}{
			"order_index": gorm.Expr("order_index + 1"),
			"updated_at":  now,
		}).Error
}

// SetOrderIndex rewrites one active row's rank.
func (r *AssignmentRepository) SetOrderIndex(id uuid.UUID, index int, now time.Time) error {
	return r.db.Model(&models.Assignment{}).
		Where("id = ? AND archived_at IS NULL", id).
		Updates(map[string]interface{}{"order_index": index, "updated_at": now}).Error
}

// SetHidden flips one row's day-level visibility flag.
func (r *AssignmentRepository) SetHidden(id uuid.UUID, hidden bool, now time.Time) error {
	res := r.db.Model(&models.Assignment{}).
		Where("id = ? AND archived_at IS NULL", id).
		Updates(map[string]interface{}{"is_hidden": hidden, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LockBucket takes a transaction-scoped advisory lock on a (team leader, day)
// bucket so concurrent dispatch operations on the same bucket serialize
// instead of racing the renumbering.
func (r *AssignmentRepository) LockBucket(teamLeaderID *uuid.UUID, day time.Time) error {
	key := bucketLockKey(teamLeaderID, scheduling.DayOf(day))
	return r.db.Exec("SELECT pg_advisory_xact_lock(?)", key).Error
}

func bucketLockKey(teamLeaderID *uuid.UUID, day time.Time) int64 {
	h := uint64(day.Unix())
	if teamLeaderID != nil {
		for _, b := range teamLeaderID[:] {
			h = h*31 + uint64(b)
		}
	}
	return int64(h & 0x7fffffffffffffff)
}
