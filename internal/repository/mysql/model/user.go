package model

// User only exists here for the username joins; account management lives in a
// separate service.
type User struct {
	ID       string `gorm:"primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);not null;unique"`
}

func (User) TableName() string {
	return "users"
}
