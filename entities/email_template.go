package entities

// EmailTemplate is a mail template editable by content staff. Subject and
// bodies use text/template placeholders against a string-keyed context map.
type EmailTemplate struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"size:100;uniqueIndex" json:"key"`
	Name        string `gorm:"size:150" json:"name"`
	Subject     string `gorm:"size:255" json:"subject"`
	BodyText    string `gorm:"type:text" json:"body_text"`
	BodyHTML    string `gorm:"type:text" json:"body_html"`
	Description string `gorm:"size:255" json:"description,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Timestamp
}
