package models

type City struct {
	BaseModel
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	PlateCode int    `gorm:"type:integer" json:"plateCode"`

	Districts []District `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"districts,omitempty"`
}

// District slug'ı yalnızca kendi şehri içinde benzersizdir.
type District struct {
	BaseModel
	CityID uint   `gorm:"not null;uniqueIndex:idx_district_city_slug" json:"cityId"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
	Slug   string `gorm:"type:varchar(120);not null;uniqueIndex:idx_district_city_slug" json:"slug"`

	City          *City          `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Neighborhoods []Neighborhood `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"neighborhoods,omitempty"`
}

// Neighborhood slug'ı yalnızca kendi ilçesi içinde benzersizdir.
type Neighborhood struct {
	BaseModel
	DistrictID uint   `gorm:"not null;uniqueIndex:idx_neighborhood_district_slug" json:"districtId"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Slug       string `gorm:"type:varchar(120);not null;uniqueIndex:idx_neighborhood_district_slug" json:"slug"`

	District *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
}
