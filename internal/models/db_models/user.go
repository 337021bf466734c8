package db_models

import "github.com/google/uuid"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleAgency   UserRole = "AGENCY"
	RoleBusiness UserRole = "BUSINESS"
	RoleTourist  UserRole = "TOURIST"
)

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	Phone        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	Role         UserRole `gorm:"type:varchar(16);not null;index"`

	Agency   *Agency   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Business *Business `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tourist  *Tourist  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Agency, Business and Tourist share their primary key with the owning user.
// ON DELETE clauses live on the has-one/has-many side: gorm drops a
// belongs-to constraint when the parent declares the reverse relation.
type Agency struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	User   *User     `gorm:"foreignKey:UserID"`

	Attractions []Attraction `gorm:"foreignKey:AgencyID;constraint:OnDelete:CASCADE"`
}

type Business struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	User   *User     `gorm:"foreignKey:UserID"`

	Establishments []Establishment `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

type Tourist struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	User     *User     `gorm:"foreignKey:UserID"`
	Lastname string
	Age      int

	FavoriteCategories []Category   `gorm:"many2many:tourist_favorite_categories"`
	Travellings        []Travelling `gorm:"foreignKey:TouristID;constraint:OnDelete:CASCADE"`
}
