package models

type UserRole string

const (
	RoleAdmin         UserRole = "ADMIN"
	RoleBusinessOwner UserRole = "BUSINESS_OWNER"
	RoleUser          UserRole = "USER"
)

// Valid rolün tanımlı değerlerden biri olup olmadığını söyler.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleBusinessOwner, RoleUser:
		return true
	}
	return false
}

// User platform kullanıcısıdır. PasswordHash yalnızca OAuth ile açılan hesaplarda boştur.
type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(120);not null" json:"name"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string   `gorm:"type:varchar(30)" json:"phone"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER';index" json:"role"`
	PasswordHash *string  `gorm:"type:varchar(255)" json:"-"`
	Image        string   `gorm:"type:varchar(500)" json:"image"`
	IsActive     bool     `gorm:"default:true;index" json:"isActive"`

	Pets []Pet `gorm:"foreignKey:UserID" json:"pets,omitempty"`
}

// HasPassword hesabın yerel bir şifresi olup olmadığını döndürür.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
