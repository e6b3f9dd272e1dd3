package domain

import (
	"errors"
)

var (
	MessageSuccessGetHeader = "success get site header"
	MessageSuccessGetFooter = "success get site footer"
	MessageSuccessGetHeroes = "success get hero blocks"

	MessageFailedGetHeader = "failed to get site header"
	MessageFailedGetFooter = "failed to get site footer"
	MessageFailedGetHeroes = "failed to get hero blocks"

	ErrNoActiveHeader = errors.New("no active site header")
	ErrNoActiveFooter = errors.New("no active site footer")
)

type (
	HeaderDropdownResponse struct {
		ID      uint   `json:"id"`
		Title   string `json:"title"`
		Link    string `json:"link,omitempty"`
		IconSVG string `json:"icon_svg,omitempty"`
		Image   string `json:"image,omitempty"`
		Order   int    `json:"order"`
	}

	HeaderMenuResponse struct {
		ID            uint                     `json:"id"`
		Title         string                   `json:"title"`
		Link          string                   `json:"link,omitempty"`
		IsDropdown    bool                     `json:"is_dropdown"`
		IconSVG       string                   `json:"icon_svg,omitempty"`
		Image         string                   `json:"image,omitempty"`
		Order         int                      `json:"order"`
		DropdownItems []HeaderDropdownResponse `json:"dropdown_items"`
	}

	SiteHeaderResponse struct {
		ID              uint                 `json:"id"`
		MetaTitle       string               `json:"meta_title,omitempty"`
		MetaDescription string               `json:"meta_description,omitempty"`
		MetaKeywords    string               `json:"meta_keywords,omitempty"`
		DescriptionHTML string               `json:"description_html,omitempty"`
		Logo            string               `json:"logo,omitempty"`
		MenuItems       []HeaderMenuResponse `json:"menu_items"`
	}

	FooterColumnResponse struct {
		ID         uint   `json:"id"`
		Title      string `json:"title"`
		Order      int    `json:"order"`
		ColumnType string `json:"column_type"`
		LinkTitle  string `json:"link_title,omitempty"`
		Link       string `json:"link,omitempty"`
		HTMLBlock  string `json:"html_block,omitempty"`
	}

	FooterResponse struct {
		ID              uint                   `json:"id"`
		HeroTextHTML    string                 `json:"hero_text_html,omitempty"`
		TextAfterFooter string                 `json:"text_after_footer,omitempty"`
		HeroImage       string                 `json:"hero_image,omitempty"`
		Columns         []FooterColumnResponse `json:"columns"`
	}

	HeroBlockResponse struct {
		ID           uint   `json:"id"`
		Title        string `json:"title"`
		Subtitle     string `json:"subtitle,omitempty"`
		HeroTextHTML string `json:"hero_text_html,omitempty"`
		Image        string `json:"image,omitempty"`
	}
)
