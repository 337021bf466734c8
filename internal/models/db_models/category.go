package db_models

type Category struct {
	BaseModel
	Title string `gorm:"uniqueIndex;not null"`
}
