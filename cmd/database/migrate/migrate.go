package migration

import (
	"Recipe-Platform-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []any{
		&entities.User{},
		&entities.IngredientCategory{},
		&entities.Ingredient{},
		&entities.MeasurementUnit{},
		&entities.RecipeCategory{},
		&entities.MealType{},
		&entities.Cuisine{},
		&entities.CookingMethod{},
		&entities.Tag{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.RecipeStep{},
		&entities.Bookmark{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.EmailTemplate{},
		&entities.SiteHeader{},
		&entities.HeaderMenu{},
		&entities.HeaderDropdownItem{},
		&entities.Footer{},
		&entities.FooterColumn{},
		&entities.HeroBlock{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	if err := SeedEmailTemplates(db); err != nil {
		log.Fatalf("Error seeding email templates: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// SeedEmailTemplates inserts the default templates. Existing keys are kept
// untouched so operator edits survive re-migration.
func SeedEmailTemplates(db *gorm.DB) error {
	templates := []entities.EmailTemplate{
		{
			Key:      "welcome",
			Name:     "Welcome email",
			Subject:  "Welcome to {{.site_url}}",
			BodyText: "Hi {{.name}},\n\nYour account {{.username}} is ready. Enjoy cooking!\n",
			BodyHTML: "<p>Hi {{.name}},</p><p>Your account <strong>{{.username}}</strong> is ready. Enjoy cooking!</p>",
			IsActive: true,
		},
		{
			Key:      "password_reset",
			Name:     "Password reset",
			Subject:  "Reset your password",
			BodyText: "Hi {{.name}},\n\nUse the link below to choose a new password:\n{{.reset_url}}\n\nThe link expires in one hour.\n",
			BodyHTML: "<p>Hi {{.name}},</p><p><a href=\"{{.reset_url}}\">Choose a new password</a>. The link expires in one hour.</p>",
			IsActive: true,
		},
		{
			Key:      "recipe_review",
			Name:     "Recipe submitted for review",
			Subject:  "Recipe awaiting review: {{.recipe_title}}",
			BodyText: "The recipe \"{{.recipe_title}}\" was submitted and is awaiting review.\n",
			BodyHTML: "<p>The recipe <strong>{{.recipe_title}}</strong> was submitted and is awaiting review.</p>",
			IsActive: true,
		},
		{
			Key:      "comment_notification",
			Name:     "New comment notification",
			Subject:  "New comment on {{.recipe_title}}",
			BodyText: "A new comment was posted on \"{{.recipe_title}}\" ({{.recipe_slug}}):\n\n{{.comment}}\n",
			BodyHTML: "<p>A new comment was posted on <strong>{{.recipe_title}}</strong>:</p><blockquote>{{.comment}}</blockquote>",
			IsActive: true,
		},
	}

	for _, template := range templates {
		var count int64
		if err := db.Model(&entities.EmailTemplate{}).Where("key = ?", template.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&template).Error; err != nil {
			return err
		}
	}
	return nil
}
