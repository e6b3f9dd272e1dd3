package domain

import (
	"errors"
)

// Template keys seeded by the migration step.
const (
	TemplateWelcome             = "welcome"
	TemplatePasswordReset       = "password_reset"
	TemplateRecipeReview        = "recipe_review"
	TemplateCommentNotification = "comment_notification"
)

var (
	ErrEmailTemplateNotFound = errors.New("email template not found")
)
