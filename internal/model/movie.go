package model

type Movie struct {
	ID       string `gorm:"column:id;primaryKey;type:varchar(50)"`
	Title    string `gorm:"type:varchar(100);not null"`
	Synopsis string `gorm:"type:text"`
	Price    int64  `gorm:"not null"`
	Year     int
	Video    string `gorm:"type:varchar(255);not null"`
	Image    []byte `gorm:"type:blob"`
}

func (Movie) TableName() string {
	return "movies"
}
