package domain

// UseType classifies how floor space is used. Two use types are the same when their ids match.
type UseType struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:text;not null"`
}

func (UseType) TableName() string { return "use_types" }

// SiteUse is one portion of a site's floor space.
type SiteUse struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	SiteID      int64  `gorm:"column:site_id;not null;index:idx_site_uses_site_id"`
	Description string `gorm:"type:text"`
	SizeSqft    int64  `gorm:"column:size_sqft;not null;default:0"`
	UseTypeID   int64  `gorm:"column:use_type_id;not null"`

	UseType UseType `gorm:"foreignKey:UseTypeID;references:ID"`
}

func (SiteUse) TableName() string { return "site_uses" }

type Site struct {
	ID      int64  `gorm:"primaryKey;autoIncrement:false"`
	Name    string `gorm:"type:text"`
	Address string `gorm:"type:text"`
	City    string `gorm:"type:text"`
	State   string `gorm:"type:text;index:idx_sites_state"`
	Zipcode string `gorm:"type:text"`

	SiteUses []SiteUse `gorm:"foreignKey:SiteID;references:ID"`
}

func (Site) TableName() string { return "sites" }

// EnrichedSite is a Site with its derived rollup. PrimaryType is nil when no use has positive size.
type EnrichedSite struct {
	Site
	TotalSize   int64
	PrimaryType *UseType
}
