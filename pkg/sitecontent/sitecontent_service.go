package sitecontent

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/internal/utils/storage"
	"context"
)

type (
	SiteContentService interface {
		GetHeader(ctx context.Context) (*domain.SiteHeaderResponse, error)
		GetFooter(ctx context.Context) (*domain.FooterResponse, error)
		ListHeroes(ctx context.Context) ([]domain.HeroBlockResponse, error)
	}

	siteContentService struct {
		repository SiteContentRepository
		store      storage.ObjectStorage
	}
)

func NewSiteContentService(repository SiteContentRepository, store storage.ObjectStorage) SiteContentService {
	return &siteContentService{repository: repository, store: store}
}

func (s *siteContentService) mediaURL(path string) string {
	if path == "" {
		return ""
	}
	return s.store.PublicURL(path)
}

func (s *siteContentService) GetHeader(ctx context.Context) (*domain.SiteHeaderResponse, error) {
	header, err := s.repository.GetActiveHeader(ctx)
	if err != nil {
		return nil, err
	}

	response := &domain.SiteHeaderResponse{
		ID:              header.ID,
		MetaTitle:       header.MetaTitle,
		MetaDescription: header.MetaDescription,
		MetaKeywords:    header.MetaKeywords,
		DescriptionHTML: header.DescriptionHTML,
		Logo:            s.mediaURL(header.LogoPath),
		MenuItems:       make([]domain.HeaderMenuResponse, 0, len(header.MenuItems)),
	}
	for _, menu := range header.MenuItems {
		item := domain.HeaderMenuResponse{
			ID:            menu.ID,
			Title:         menu.Title,
			Link:          menu.Link,
			IsDropdown:    menu.IsDropdown,
			IconSVG:       menu.IconSVG,
			Image:         s.mediaURL(menu.ImagePath),
			Order:         menu.Order,
			DropdownItems: make([]domain.HeaderDropdownResponse, 0, len(menu.DropdownItems)),
		}
		for _, dropdown := range menu.DropdownItems {
			item.DropdownItems = append(item.DropdownItems, domain.HeaderDropdownResponse{
				ID:      dropdown.ID,
				Title:   dropdown.Title,
				Link:    dropdown.Link,
				IconSVG: dropdown.IconSVG,
				Image:   s.mediaURL(dropdown.ImagePath),
				Order:   dropdown.Order,
			})
		}
		response.MenuItems = append(response.MenuItems, item)
	}
	return response, nil
}

func (s *siteContentService) GetFooter(ctx context.Context) (*domain.FooterResponse, error) {
	footer, err := s.repository.GetActiveFooter(ctx)
	if err != nil {
		return nil, err
	}

	response := &domain.FooterResponse{
		ID:              footer.ID,
		HeroTextHTML:    footer.HeroTextHTML,
		TextAfterFooter: footer.TextAfterFooter,
		HeroImage:       s.mediaURL(footer.HeroImagePath),
		Columns:         make([]domain.FooterColumnResponse, 0, len(footer.Columns)),
	}
	for _, column := range footer.Columns {
		response.Columns = append(response.Columns, domain.FooterColumnResponse{
			ID:         column.ID,
			Title:      column.Title,
			Order:      column.Order,
			ColumnType: column.ColumnType,
			LinkTitle:  column.LinkTitle,
			Link:       column.Link,
			HTMLBlock:  column.HTMLBlock,
		})
	}
	return response, nil
}

func (s *siteContentService) ListHeroes(ctx context.Context) ([]domain.HeroBlockResponse, error) {
	heroes, err := s.repository.ListActiveHeroes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.HeroBlockResponse, 0, len(heroes))
	for _, hero := range heroes {
		responses = append(responses, domain.HeroBlockResponse{
			ID:           hero.ID,
			Title:        hero.Title,
			Subtitle:     hero.Subtitle,
			HeroTextHTML: hero.HeroTextHTML,
			Image:        s.mediaURL(hero.ImagePath),
		})
	}
	return responses, nil
}
