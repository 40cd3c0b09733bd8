package db_models

type Account struct {
	BaseModel
	Email     string `gorm:"size:254;uniqueIndex;not null"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
	Bio       string `gorm:"type:text"`
	Avatar    string
}
