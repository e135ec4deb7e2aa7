package service

import (
	"time"

	"field-dispatch-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MissionServiceInterface defines the interface for mission service
type MissionServiceInterface interface {
	Create(req *CreateMissionRequest) (*MissionResponse, error)
	Update(id uuid.UUID, req *UpdateMissionRequest) (*MissionResponse, error)
	GetByID(id uuid.UUID) (*MissionResponse, error)
	Delete(id uuid.UUID) error
	Unarchive(id uuid.UUID) error
	Duplicate(id uuid.UUID) (*MissionResponse, error)
}

// DispatchServiceInterface defines the interface for dispatch operations
type DispatchServiceInterface interface {
	AssignDay(missionID, teamLeaderID uuid.UUID, day time.Time, requestedIndex int) (*AssignResponse, error)
	Reorder(assignmentID uuid.UUID, newIndex int) (uuid.UUID, error)
	Unassign(assignmentID uuid.UUID) (uuid.UUID, error)
	SetMissionVisibility(missionID uuid.UUID, hidden bool) (bool, error)
	SetAssignmentVisibility(assignmentID uuid.UUID, hidden bool) (bool, error)
}

// BoardServiceInterface defines the interface for board queries
type BoardServiceInterface interface {
	UnassignedInWindow(dateFrom time.Time, dateTo *time.Time) ([]MissionResponse, error)
	DetailedInWindow(dateFrom, dateTo time.Time, includeFinished bool) ([]DetailedMissionResponse, error)
}

// ClientServiceInterface defines the interface for client service
type ClientServiceInterface interface {
	Create(req *ClientRequest) (*models.Client, error)
	GetByID(id uuid.UUID) (*models.Client, error)
	List(limit, offset int) (*ClientListResponse, error)
	Update(id uuid.UUID, req *ClientRequest) (*models.Client, error)
	Delete(id uuid.UUID) error
}

// OrderServiceInterface defines the interface for order service
type OrderServiceInterface interface {
	Create(req *OrderRequest) (*models.Order, error)
	GetByID(id uuid.UUID) (*models.Order, error)
	List(clientID *uuid.UUID, limit, offset int) (*OrderListResponse, error)
	Update(id uuid.UUID, req *OrderRequest) (*models.Order, error)
	Delete(id uuid.UUID) error
}

// TaxonomyServiceInterface defines the interface for taxonomy service
type TaxonomyServiceInterface interface {
	CreateMissionType(req *MissionTypeRequest) (*models.MissionType, error)
	ListMissionTypes() ([]models.MissionType, error)
	UpdateMissionType(id uuid.UUID, req *MissionTypeRequest) (*models.MissionType, error)
	DeleteMissionType(id uuid.UUID) error
	CreateMissionStatus(req *NameRequest) (*models.MissionStatus, error)
	ListMissionStatuses() ([]models.MissionStatus, error)
	UpdateMissionStatus(id uuid.UUID, req *NameRequest) (*models.MissionStatus, error)
	DeleteMissionStatus(id uuid.UUID) error
	CreateOrderType(req *NameRequest) (*models.OrderType, error)
	ListOrderTypes() ([]models.OrderType, error)
	UpdateOrderType(id uuid.UUID, req *NameRequest) (*models.OrderType, error)
	DeleteOrderType(id uuid.UUID) error
	CreateOrderStatus(req *NameRequest) (*models.OrderStatus, error)
	ListOrderStatuses() ([]models.OrderStatus, error)
	UpdateOrderStatus(id uuid.UUID, req *NameRequest) (*models.OrderStatus, error)
	DeleteOrderStatus(id uuid.UUID) error
}

// SettingServiceInterface defines the interface for setting service
type SettingServiceInterface interface {
	GetByKey(key string) (*models.Setting, error)
	List() ([]models.Setting, error)
	Set(key string, req *SettingRequest) (*models.Setting, error)
}
