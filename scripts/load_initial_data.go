package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"field-dispatch-backend/internal/config"
	"field-dispatch-backend/internal/database"
	"field-dispatch-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema

type TeamLeaderData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	IsActive  bool   `yaml:"is_active"`
}

type MissionTypeData struct {
	Name      string   `yaml:"name"`
	Color     string   `yaml:"color"`
	Icon      string   `yaml:"icon"`
	OrderType string   `yaml:"order_type,omitempty"`
	Forms     []string `yaml:"forms,omitempty"`
}

type NamedData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

type ClientData struct {
	CompanyName  string `yaml:"company_name"`
	ContactName  string `yaml:"contact_name,omitempty"`
	ContactEmail string `yaml:"contact_email,omitempty"`
	Phone        string `yaml:"phone,omitempty"`
}

type SettingData struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// File structures

type TeamLeadersFile struct {
	TeamLeaders []TeamLeaderData `yaml:"team_leaders"`
}

type MissionTypesFile struct {
	MissionTypes []MissionTypeData `yaml:"mission_types"`
}

type OrderTypesFile struct {
	OrderTypes []NamedData `yaml:"order_types"`
}

type OrderStatusesFile struct {
	OrderStatuses []NamedData `yaml:"order_statuses"`
}

type ClientsFile struct {
	Clients []ClientData `yaml:"clients"`
}

type SettingsFile struct {
	Settings []SettingData `yaml:"settings"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:       logger.Silent,
		SeedTaxonomies: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	leaders, err := loadYAMLSections(dataDir, "team_leaders", func(f *TeamLeadersFile) []TeamLeaderData { return f.TeamLeaders })
	if err != nil {
		return fmt.Errorf("failed to load team leaders: %w", err)
	}
	missionTypes, err := loadYAMLSections(dataDir, "mission_types", func(f *MissionTypesFile) []MissionTypeData { return f.MissionTypes })
	if err != nil {
		return fmt.Errorf("failed to load mission types: %w", err)
	}
	orderTypes, err := loadYAMLSections(dataDir, "order_types", func(f *OrderTypesFile) []NamedData { return f.OrderTypes })
	if err != nil {
		return fmt.Errorf("failed to load order types: %w", err)
	}
	orderStatuses, err := loadYAMLSections(dataDir, "order_statuses", func(f *OrderStatusesFile) []NamedData { return f.OrderStatuses })
	if err != nil {
		return fmt.Errorf("failed to load order statuses: %w", err)
	}
	clients, err := loadYAMLSections(dataDir, "clients", func(f *ClientsFile) []ClientData { return f.Clients })
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}
	settings, err := loadYAMLSections(dataDir, "settings", func(f *SettingsFile) []SettingData { return f.Settings })
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	created := 0
	for _, leaderData := range leaders {
		wasCreated, err := createTeamLeader(db, leaderData)
		if err != nil {
			return fmt.Errorf("failed to create team leader %s: %w", leaderData.Email, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Team leaders: %d created, %d total", created, len(leaders))

	created = 0
	for _, typeData := range missionTypes {
		wasCreated, err := createMissionType(db, typeData)
		if err != nil {
			return fmt.Errorf("failed to create mission type %s: %w", typeData.Name, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Mission types: %d created, %d total", created, len(missionTypes))

	created = 0
	for _, typeData := range orderTypes {
		wasCreated, err := firstOrCreateByName(db, &models.OrderType{Name: typeData.Name}, typeData.Name)
		if err != nil {
			return fmt.Errorf("failed to create order type %s: %w", typeData.Name, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Order types: %d created, %d total", created, len(orderTypes))

	created = 0
	for _, statusData := range orderStatuses {
		wasCreated, err := firstOrCreateByName(db, &models.OrderStatus{Name: statusData.Name}, statusData.Name)
		if err != nil {
			return fmt.Errorf("failed to create order status %s: %w", statusData.Name, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Order statuses: %d created, %d total", created, len(orderStatuses))

	created = 0
	for _, clientData := range clients {
		wasCreated, err := createClient(db, clientData)
		if err != nil {
			return fmt.Errorf("failed to create client %s: %w", clientData.CompanyName, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Clients: %d created, %d total", created, len(clients))

	for _, settingData := range settings {
		setting := models.Setting{Key: settingData.Key, Value: settingData.Value}
		if err := db.Where("key = ?", settingData.Key).
			Assign(models.Setting{Value: settingData.Value}).
			FirstOrCreate(&setting).Error; err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", settingData.Key, err)
		}
	}
	log.Printf("Settings: %d applied", len(settings))

	return nil
}

// loadYAMLSections walks dataDir and collects the matching section of every
// YAML file whose path contains the section name.
func loadYAMLSections[F any, T any](dataDir, section string, extract func(*F) []T) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, section) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var file F
			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}
			all = append(all, extract(&file)...)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	return all, err
}

// createTeamLeader inserts the user and attaches the teamleader role.
func createTeamLeader(db *gorm.DB, data TeamLeaderData) (bool, error) {
	var user models.User
	err := db.Where("email = ?", data.Email).First(&user).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  data.IsActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	var role models.Role
	if err := db.Where("name = ?", models.RoleTeamLeader).First(&role).Error; err != nil {
		return false, fmt.Errorf("failed to resolve teamleader role: %w", err)
	}
	if err := db.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error; err != nil {
		return false, fmt.Errorf("failed to attach role: %w", err)
	}
	return true, nil
}

func createMissionType(db *gorm.DB, data MissionTypeData) (bool, error) {
	var mt models.MissionType
	err := db.Where("name = ?", data.Name).First(&mt).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query mission type: %w", err)
	}

	mt = models.MissionType{
		Name:  data.Name,
		Color: data.Color,
		Icon:  data.Icon,
	}
	if data.OrderType != "" {
		var ot models.OrderType
		if err := db.Where("name = ?", data.OrderType).First(&ot).Error; err != nil {
			return false, fmt.Errorf("failed to resolve order type %s: %w", data.OrderType, err)
		}
		mt.OrderTypeID = &ot.ID
	}
	if err := db.Create(&mt).Error; err != nil {
		return false, fmt.Errorf("failed to create mission type: %w", err)
	}

	for _, formName := range data.Forms {
		form := models.CustomForm{Name: formName, MissionTypeID: mt.ID}
		if err := db.Create(&form).Error; err != nil {
			return false, fmt.Errorf("failed to create form %s: %w", formName, err)
		}
	}
	return true, nil
}

func createClient(db *gorm.DB, data ClientData) (bool, error) {
	var client models.Client
	err := db.Where("company_name = ?", data.CompanyName).First(&client).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query client: %w", err)
	}

	client = models.Client{
		CompanyName:  data.CompanyName,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		Phone:        data.Phone,
	}
	if err := db.Create(&client).Error; err != nil {
		return false, fmt.Errorf("failed to create client: %w", err)
	}
	return true, nil
}

// firstOrCreateByName inserts row unless a row with that name already exists.
func firstOrCreateByName[T any](db *gorm.DB, row *T, name string) (bool, error) {
	res := db.Where("name = ?", name).FirstOrCreate(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
