package models

// Business rehberde listelenen pet bakım işletmesidir.
type Business struct {
	BaseModel
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	Slug           string `gorm:"type:varchar(220);uniqueIndex;not null" json:"slug"`
	Description    string `gorm:"type:text" json:"description"`
	Phone          string `gorm:"type:varchar(30)" json:"phone"`
	Email          string `gorm:"type:varchar(255)" json:"email"`
	Address        string `gorm:"type:varchar(500)" json:"address"`
	CityID         uint   `gorm:"not null;index" json:"cityId"`
	DistrictID     uint   `gorm:"not null;index" json:"districtId"`
	NeighborhoodID *uint  `gorm:"index" json:"neighborhoodId"`
	CategoryID     uint   `gorm:"not null;index" json:"categoryId"`
	OwnerID        *uint  `gorm:"index" json:"ownerId"`
	CoverImage     string `gorm:"type:varchar(500)" json:"coverImage"`
	IsActive       bool   `gorm:"default:true;index" json:"isActive"`
	FeaturedScore  int    `gorm:"default:0;index" json:"featuredScore"`

	City         *City           `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"city,omitempty"`
	District     *District       `gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"district,omitempty"`
	Neighborhood *Neighborhood   `gorm:"foreignKey:NeighborhoodID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"neighborhood,omitempty"`
	Category     *Category       `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category,omitempty"`
	Owner        *User           `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Services     []Service       `gorm:"foreignKey:BusinessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services,omitempty"`
	WorkingHours []WorkingHour   `gorm:"foreignKey:BusinessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"workingHours,omitempty"`
	Photos       []BusinessPhoto `gorm:"foreignKey:BusinessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"photos,omitempty"`
}
