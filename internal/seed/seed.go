package seed

import (
	"context"
	"errors"

	"github.com/smallbiznis/sitesapi/internal/site/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Use type ids follow the Energy Star property type catalogue.
var sampleUseTypes = []domain.UseType{
	{ID: 28, Name: "Hotel"},
	{ID: 37, Name: "Casino"},
	{ID: 40, Name: "Movie Theater"},
	{ID: 47, Name: "Open Stadium"},
	{ID: 54, Name: "Office"},
	{ID: 56, Name: "Parking"},
	{ID: 62, Name: "Restaurant"},
	{ID: 63, Name: "Retail Store"},
}

var sampleSites = []domain.Site{
	{ID: 1, Name: "Measurabl HQ", Address: "707 Broadway Suite 1000", City: "San Diego", State: "CA", Zipcode: "92101"},
	{ID: 2, Name: "Arclight", Address: "4425 La Jolla Village Dr", City: "San Diego", State: "CA", Zipcode: "92122"},
	{ID: 3, Name: "Hotel del Coronado", Address: "1500 Orange Ave", City: "Coronado", State: "CA", Zipcode: "92118"},
	{ID: 4, Name: "Westfield UTC", Address: "4545 La Jolla Village Dr", City: "San Diego", State: "CA", Zipcode: "92122"},
	{ID: 5, Name: "Bellagio", Address: "3600 S Las Vegas Blvd", City: "Las Vegas", State: "NV", Zipcode: "89109"},
	{ID: 6, Name: "Petco Park", Address: "100 Park Blvd", City: "San Diego", State: "CA", Zipcode: "92101"},
}

var sampleSiteUses = []domain.SiteUse{
	{ID: 1, SiteID: 1, Description: "Main office floor", SizeSqft: 8000, UseTypeID: 54},
	{ID: 2, SiteID: 1, Description: "Ground floor cafe", SizeSqft: 2000, UseTypeID: 62},
	{ID: 3, SiteID: 1, Description: "Expansion floor", SizeSqft: 3000, UseTypeID: 54},

	{ID: 4, SiteID: 2, Description: "Auditoriums", SizeSqft: 55000, UseTypeID: 40},
	{ID: 5, SiteID: 2, Description: "Concessions and bar", SizeSqft: 10000, UseTypeID: 62},

	{ID: 6, SiteID: 3, Description: "Guest rooms", SizeSqft: 500000, UseTypeID: 28},
	{ID: 7, SiteID: 3, Description: "Dining rooms", SizeSqft: 40000, UseTypeID: 62},
	{ID: 8, SiteID: 3, Description: "Shops", SizeSqft: 20000, UseTypeID: 63},

	{ID: 9, SiteID: 4, Description: "Anchor stores", SizeSqft: 700000, UseTypeID: 63},
	{ID: 10, SiteID: 4, Description: "Dining terrace", SizeSqft: 80000, UseTypeID: 62},
	{ID: 11, SiteID: 4, Description: "Cinema", SizeSqft: 60000, UseTypeID: 40},
	{ID: 12, SiteID: 4, Description: "Boutiques", SizeSqft: 300000, UseTypeID: 63},

	{ID: 13, SiteID: 5, Description: "Gaming floor", SizeSqft: 400000, UseTypeID: 37},
	{ID: 14, SiteID: 5, Description: "Hotel tower", SizeSqft: 350000, UseTypeID: 28},
	{ID: 15, SiteID: 5, Description: "Restaurants", SizeSqft: 150000, UseTypeID: 62},
	{ID: 16, SiteID: 5, Description: "Via Bellagio shops", SizeSqft: 150000, UseTypeID: 63},

	{ID: 17, SiteID: 6, Description: "Ballpark", SizeSqft: 500000, UseTypeID: 47},
	{ID: 18, SiteID: 6, Description: "Parking structure", SizeSqft: 60000, UseTypeID: 56},
}

// EnsureSampleSites inserts the reference sites, their uses and use types. Rows that already
// exist are left untouched.
func EnsureSampleSites(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Session(&gorm.Session{})

		useTypes := append([]domain.UseType(nil), sampleUseTypes...)
		if err := insert.Create(&useTypes).Error; err != nil {
			return err
		}
		sites := append([]domain.Site(nil), sampleSites...)
		if err := insert.Create(&sites).Error; err != nil {
			return err
		}
		uses := append([]domain.SiteUse(nil), sampleSiteUses...)
		return insert.Create(&uses).Error
	})
}
