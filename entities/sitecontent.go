package entities

const (
	FooterColumnLinkList = "linklist"
	FooterColumnHTML     = "html_text"
)

type SiteHeader struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	MetaTitle       string `gorm:"size:80" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"size:160" json:"meta_description,omitempty"`
	MetaKeywords    string `gorm:"size:255" json:"meta_keywords,omitempty"`
	DescriptionHTML string `gorm:"type:text" json:"description_html,omitempty"`
	LogoPath        string `gorm:"size:512" json:"logo_path,omitempty"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`

	MenuItems []HeaderMenu `gorm:"foreignKey:HeaderID;constraint:OnDelete:CASCADE" json:"menu_items,omitempty"`
	Timestamp
}

type HeaderMenu struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	HeaderID   uint   `gorm:"index" json:"header_id"`
	Title      string `gorm:"size:255" json:"title"`
	Link       string `gorm:"size:255" json:"link,omitempty"`
	IsDropdown bool   `gorm:"default:false" json:"is_dropdown"`
	IconSVG    string `gorm:"type:text" json:"icon_svg,omitempty"`
	ImagePath  string `gorm:"size:512" json:"image_path,omitempty"`
	Order      int    `gorm:"column:menu_order;default:0" json:"order"`

	DropdownItems []HeaderDropdownItem `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"dropdown_items,omitempty"`
	Timestamp
}

type HeaderDropdownItem struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	MenuID    uint   `gorm:"index" json:"menu_id"`
	Title     string `gorm:"size:255" json:"title"`
	Link      string `gorm:"size:255" json:"link,omitempty"`
	IconSVG   string `gorm:"type:text" json:"icon_svg,omitempty"`
	ImagePath string `gorm:"size:512" json:"image_path,omitempty"`
	Order     int    `gorm:"column:item_order;default:0" json:"order"`

	Timestamp
}

type Footer struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	HeroTextHTML    string `gorm:"type:text" json:"hero_text_html,omitempty"`
	TextAfterFooter string `gorm:"type:text" json:"text_after_footer,omitempty"`
	HeroImagePath   string `gorm:"size:512" json:"hero_image_path,omitempty"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`

	Columns []FooterColumn `gorm:"foreignKey:FooterID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
	Timestamp
}

type FooterColumn struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FooterID   uint   `gorm:"index" json:"footer_id"`
	Title      string `gorm:"size:255" json:"title"`
	Order      int    `gorm:"column:column_order;default:0" json:"order"`
	ColumnType string `gorm:"size:20" json:"column_type"` // "linklist", "html_text"
	LinkTitle  string `gorm:"size:255" json:"link_title,omitempty"`
	Link       string `gorm:"size:255" json:"link,omitempty"`
	HTMLBlock  string `gorm:"type:text" json:"html_block,omitempty"`

	Timestamp
}

type HeroBlock struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:255" json:"title"`
	Subtitle     string `gorm:"size:255" json:"subtitle,omitempty"`
	HeroTextHTML string `gorm:"type:text" json:"hero_text_html,omitempty"`
	ImagePath    string `gorm:"size:512" json:"image_path,omitempty"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Timestamp
}
