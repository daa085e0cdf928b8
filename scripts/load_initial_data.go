package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"maritime-maintenance/internal/auth"
	"maritime-maintenance/internal/config"
	"maritime-maintenance/internal/database"
	"maritime-maintenance/internal/database/models"
	"maritime-maintenance/internal/expiry"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ComponentTypesFile struct {
	ComponentTypes []string `yaml:"component_types"`
}

type UserData struct {
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	Role       string   `yaml:"role"`
	TelegramID *int64   `yaml:"telegram_id,omitempty"`
	Subscribes []string `yaml:"subscribes,omitempty"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ComponentData struct {
	Name               string  `yaml:"name"`
	Type               string  `yaml:"type"`
	SerialNumber       *string `yaml:"serial_number,omitempty"`
	ServiceLifeMonths  int     `yaml:"service_life_months"`
	LastInspectionDate string  `yaml:"last_inspection_date"`
	Status             string  `yaml:"status,omitempty"`
}

type ShipData struct {
	Name         string          `yaml:"name"`
	IMONumber    *string         `yaml:"imo_number,omitempty"`
	Type         *string         `yaml:"type,omitempty"`
	OwnerCompany *string         `yaml:"owner_company,omitempty"`
	Components   []ComponentData `yaml:"components,omitempty"`
}

type ShipsFile struct {
	Ships []ShipData `yaml:"ships"`
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

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var typesFile ComponentTypesFile
	if err := readYAML(dataDir, "component_types", &typesFile); err != nil {
		return fmt.Errorf("failed to load component types: %w", err)
	}
	var usersFile UsersFile
	if err := readYAML(dataDir, "users", &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var shipsFile ShipsFile
	if err := readYAML(dataDir, "ships", &shipsFile); err != nil {
		return fmt.Errorf("failed to load ships: %w", err)
	}

	return database.InTx(context.Background(), db, func(tx *gorm.DB) error {
		typeMap := make(map[string]uint)
		typesCreated := 0
		for _, name := range typesFile.ComponentTypes {
			ct, created, err := createComponentType(tx, name)
			if err != nil {
				return fmt.Errorf("failed to create component type %s: %w", name, err)
			}
			typeMap[name] = ct.ID
			if created {
				typesCreated++
			}
		}
		log.Printf("Component types: %d created, %d total", typesCreated, len(typesFile.ComponentTypes))

		usersCreated := 0
		for _, userData := range usersFile.Users {
			created, err := createUser(tx, userData, typeMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
			}
			if created {
				usersCreated++
			}
		}
		log.Printf("Users: %d created, %d total", usersCreated, len(usersFile.Users))

		shipsCreated, componentsCreated := 0, 0
		for _, shipData := range shipsFile.Ships {
			n, created, err := createShip(tx, shipData, typeMap)
			if err != nil {
				return fmt.Errorf("failed to create ship %s: %w", shipData.Name, err)
			}
			if created {
				shipsCreated++
				componentsCreated += n
			}
		}
		log.Printf("Ships: %d created with %d components, %d total", shipsCreated, componentsCreated, len(shipsFile.Ships))

		return nil
	})
}

// readYAML decodes the *.yaml file under dataDir whose name mentions kind
func readYAML(dataDir, kind string, out interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, out)
	})
}

func createComponentType(db *gorm.DB, name string) (*models.ComponentType, bool, error) {
	var ct models.ComponentType
	err := db.Where("name = ?", name).First(&ct).Error
	if err == nil {
		return &ct, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query component type: %w", err)
	}

	ct = models.ComponentType{Name: name}
	if err := db.Create(&ct).Error; err != nil {
		return nil, false, err
	}
	return &ct, true, nil
}

func createUser(db *gorm.DB, userData UserData, typeMap map[string]uint) (bool, error) {
	var existing models.User
	err := db.Where("username = ?", userData.Username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	password := userData.Password
	// SEED_<USERNAME>_PASSWORD overrides the file, so real deployments need not commit one
	if env := os.Getenv("SEED_" + strings.ToUpper(userData.Username) + "_PASSWORD"); env != "" {
		password = env
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	roleID := models.RoleUser
	if userData.Role == "admin" {
		roleID = models.RoleAdmin
	}

	user := models.User{
		Username:     userData.Username,
		PasswordHash: hash,
		TelegramID:   userData.TelegramID,
		RoleID:       roleID,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}

	for _, typeName := range userData.Subscribes {
		typeID, ok := typeMap[typeName]
		if !ok {
			return false, fmt.Errorf("unknown component type %q", typeName)
		}
		sub := models.ComponentSubscription{UserID: user.ID, ComponentTypeID: typeID}
		if err := db.Create(&sub).Error; err != nil {
			return false, err
		}
	}

	return true, nil
}

func createShip(db *gorm.DB, shipData ShipData, typeMap map[string]uint) (int, bool, error) {
	var existing models.Ship
	err := db.Where("name = ?", shipData.Name).First(&existing).Error
	if err == nil {
		return 0, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("failed to query ship: %w", err)
	}

	ship := models.Ship{
		Name:         shipData.Name,
		IMONumber:    shipData.IMONumber,
		Type:         shipData.Type,
		OwnerCompany: shipData.OwnerCompany,
	}
	if err := db.Create(&ship).Error; err != nil {
		return 0, false, err
	}

	for _, cd := range shipData.Components {
		typeID, ok := typeMap[cd.Type]
		if !ok {
			return 0, false, fmt.Errorf("component %s: unknown type %q", cd.Name, cd.Type)
		}
		inspected, err := expiry.Parse(cd.LastInspectionDate)
		if err != nil {
			return 0, false, fmt.Errorf("component %s: %w", cd.Name, err)
		}
		status := cd.Status
		if status == "" {
			status = models.StatusOperational
		}

		component := models.Component{
			Name:               cd.Name,
			ShipID:             ship.ID,
			ComponentTypeID:    typeID,
			SerialNumber:       cd.SerialNumber,
			ServiceLifeMonths:  cd.ServiceLifeMonths,
			LastInspectionDate: datatypes.Date(inspected),
			Status:             status,
		}
		if err := db.Create(&component).Error; err != nil {
			return 0, false, err
		}
	}

	return len(shipData.Components), true, nil
}
