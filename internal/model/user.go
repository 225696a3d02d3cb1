package model

const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

type User struct {
	ID       string `gorm:"column:id;primaryKey;type:varchar(50)"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email    string `gorm:"type:varchar(100);not null"`
	Password string `gorm:"type:varchar(100);not null"`
	Balance  int64  `gorm:"not null;default:0"`
	Role     string `gorm:"type:varchar(20);not null;default:'standard'"`
}

func (User) TableName() string {
	return "users"
}
