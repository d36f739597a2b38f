package model

// University — corresponds to universities
type University struct {
	UniversityID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"university_id"`
	Name         string `gorm:"type:varchar(200);not null"                     json:"name"`
	ShortName    string `gorm:"type:varchar(20);not null"                      json:"short_name"` // e.g. "UFRB"
	BaseModel

	Campuses []Campus `gorm:"foreignKey:UniversityID" json:"campuses,omitempty"`
}

// TableName sets the table name.
func (University) TableName() string { return "universities" }

// Campus — corresponds to campuses
type Campus struct {
	CampusID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"campus_id"`
	UniversityID   string  `gorm:"type:uuid;not null"                             json:"university_id"`
	Name           string  `gorm:"type:varchar(200);not null"                     json:"name"`
	City           *string `gorm:"type:varchar(100)"                              json:"city,omitempty"`
	HasCircularBus bool    `gorm:"not null;default:false"                         json:"has_circular_bus"`
	BaseModel

	University *University `gorm:"foreignKey:UniversityID;references:UniversityID" json:"university,omitempty"`
}

// TableName sets the table name.
func (Campus) TableName() string { return "campuses" }
