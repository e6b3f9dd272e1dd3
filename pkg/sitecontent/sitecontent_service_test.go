package sitecontent

import (
	"Recipe-Platform-Backend/domain"
	"Recipe-Platform-Backend/entities"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeStore struct{}

func (fakeStore) UploadBytes(_ context.Context, key string, _ []byte, _ string) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (fakeStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.SiteHeader{},
		&entities.HeaderMenu{},
		&entities.HeaderDropdownItem{},
		&entities.Footer{},
		&entities.FooterColumn{},
		&entities.HeroBlock{},
	))
	return db
}

func newService(t *testing.T) (SiteContentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSiteContentService(NewSiteContentRepository(db), fakeStore{}), db
}

func TestGetHeaderOrdersMenuTree(t *testing.T) {
	service, db := newService(t)

	header := entities.SiteHeader{
		MetaTitle: "Recipes",
		LogoPath:  "site/logo.png",
		IsActive:  true,
		MenuItems: []entities.HeaderMenu{
			{Title: "Second", Order: 2},
			{
				Title: "First", Order: 1, IsDropdown: true,
				DropdownItems: []entities.HeaderDropdownItem{
					{Title: "B", Order: 2},
					{Title: "A", Order: 1},
				},
			},
		},
	}
	require.NoError(t, db.Create(&header).Error)

	response, err := service.GetHeader(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/site/logo.png", response.Logo)
	require.Len(t, response.MenuItems, 2)
	assert.Equal(t, "First", response.MenuItems[0].Title)
	assert.Equal(t, "Second", response.MenuItems[1].Title)

	require.Len(t, response.MenuItems[0].DropdownItems, 2)
	assert.Equal(t, "A", response.MenuItems[0].DropdownItems[0].Title)
	assert.Equal(t, "B", response.MenuItems[0].DropdownItems[1].Title)
}

func TestGetHeaderNoneActive(t *testing.T) {
	service, db := newService(t)
	header := entities.SiteHeader{MetaTitle: "Off", IsActive: true}
	require.NoError(t, db.Create(&header).Error)
	require.NoError(t, db.Model(&header).Update("is_active", false).Error)

	_, err := service.GetHeader(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveHeader)
}

func TestGetFooterOrdersColumns(t *testing.T) {
	service, db := newService(t)

	footer := entities.Footer{
		IsActive: true,
		Columns: []entities.FooterColumn{
			{Title: "Links", Order: 2, ColumnType: entities.FooterColumnLinkList, Link: "/about"},
			{Title: "About", Order: 1, ColumnType: entities.FooterColumnHTML, HTMLBlock: "<p>hi</p>"},
		},
	}
	require.NoError(t, db.Create(&footer).Error)

	response, err := service.GetFooter(context.Background())
	require.NoError(t, err)

	require.Len(t, response.Columns, 2)
	assert.Equal(t, "About", response.Columns[0].Title)
	assert.Equal(t, entities.FooterColumnHTML, response.Columns[0].ColumnType)
	assert.Equal(t, "Links", response.Columns[1].Title)
}

func TestGetFooterNoneActive(t *testing.T) {
	service, _ := newService(t)
	_, err := service.GetFooter(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveFooter)
}

func TestListHeroesSkipsInactive(t *testing.T) {
	service, db := newService(t)

	require.NoError(t, db.Create(&entities.HeroBlock{Title: "Baking", ImagePath: "heroes/baking.jpg", IsActive: true}).Error)
	archived := entities.HeroBlock{Title: "Archive", IsActive: true}
	require.NoError(t, db.Create(&archived).Error)
	require.NoError(t, db.Model(&archived).Update("is_active", false).Error)
	require.NoError(t, db.Create(&entities.HeroBlock{Title: "Asian", IsActive: true}).Error)

	heroes, err := service.ListHeroes(context.Background())
	require.NoError(t, err)

	require.Len(t, heroes, 2)
	assert.Equal(t, "Asian", heroes[0].Title)
	assert.Equal(t, "Baking", heroes[1].Title)
	assert.Equal(t, "https://cdn.test/heroes/baking.jpg", heroes[1].Image)
}
