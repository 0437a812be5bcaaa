package migrations

import (
	"log"

	"techstock-backend/models"
	"techstock-backend/utilities"

	"gorm.io/gorm"
)

// AutoMigrate runs database migrations and seeds reference data
func AutoMigrate(db *gorm.DB) {
	// Run migrations
	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.UserRole{},
		&models.TypeArticle{},
		&models.Supplier{},
		&models.Product{},
		&models.State{},
		&models.Assignment{},
	)
	if err != nil {
		log.Printf("⚠️ Warning: Failed to migrate some tables: %v", err)
	} else {
		log.Println("✓ Database migration completed successfully")
	}

	// Seed default roles
	seedDefaultRoles(db)

	// Seed default condition states
	seedDefaultStates(db)

	// Seed default accounts
	seedDefaultUsers(db)
}

// seedDefaultRoles creates default roles if they don't exist
func seedDefaultRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full system access"},
		{Name: models.RoleSupport, Description: "Support staff managing the catalog and assignments"},
		{Name: models.RoleUser, Description: "Regular user receiving assigned products"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if err := db.Where("name = ?", role.Name).First(&existingRole).Error; err != nil {
			// Role doesn't exist, create it
			if err := db.Create(&role).Error; err != nil {
				log.Printf("Failed to create role %s: %v", role.Name, err)
			} else {
				log.Printf("Created role: %s", role.Name)
			}
		}
	}
}

// seedDefaultStates creates the default condition states when the table is empty
func seedDefaultStates(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.State{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count states: %v", err)
		return
	}
	if count > 0 {
		return
	}

	states := []models.State{
		{Status: "New Product"},
		{Status: "Old Product"},
		{Status: "Product to repair"},
		{Status: "Broken Product"},
	}

	if err := db.Create(&states).Error; err != nil {
		log.Printf("Failed to seed states: %v", err)
		return
	}
	log.Println("✓ Default states seeded")
}

// seedDefaultUsers creates the default accounts for each role if they don't exist
func seedDefaultUsers(db *gorm.DB) {
	accounts := []struct {
		email    string
		password string
		role     string
	}{
		{"admin@verwee.be", "Admin@123", models.RoleAdmin},
		{"support@verwee.be", "Support@123", models.RoleSupport},
		{"user@verwee.be", "User@123", models.RoleUser},
	}

	for _, account := range accounts {
		createUserIfNotExists(db, account.email, account.password, account.role)
	}
}

func createUserIfNotExists(db *gorm.DB, email, password, roleName string) {
	var existingUser models.User
	if err := db.Where("email = ?", email).First(&existingUser).Error; err == nil {
		return
	}

	hashedPassword, err := utilities.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", email, err)
		return
	}

	user := models.User{
		UserName:     email,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to create user %s: %v", email, err)
		return
	}

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		log.Printf("Role %s not found: %v", roleName, err)
		return
	}

	if err := db.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error; err != nil {
		log.Printf("Failed to assign role %s to %s: %v", roleName, email, err)
		return
	}

	log.Printf("✓ Seeded %s account: %s", roleName, email)
}
