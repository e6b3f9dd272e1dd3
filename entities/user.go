package entities

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex" json:"username"`
	Email    string `gorm:"size:254;uniqueIndex" json:"email"`
	FullName string `gorm:"size:255" json:"full_name,omitempty"`
	Password string `gorm:"size:128" json:"-"`
	Role     string `gorm:"size:20;default:user" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Timestamp
}

// DisplayName is what comment and email rendering show for the user.
func (u *User) DisplayName() string {
	if u == nil {
		return "Anonymous"
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}
