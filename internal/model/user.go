package model

// User — corresponds to users
type User struct {
	UserID           string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FullName         string  `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email            string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash     string  `gorm:"type:varchar(255);not null"                     json:"-"`
	AvatarURL        *string `gorm:"type:text"                                      json:"avatar_url,omitempty"`
	CampusID         *string `gorm:"type:uuid"                                      json:"campus_id,omitempty"`
	SemestreIngresso *string `gorm:"type:varchar(10)"                               json:"semestre_ingresso,omitempty"` // e.g. "2024.1"
	BaseModel

	Campus *Campus `gorm:"foreignKey:CampusID;references:CampusID" json:"campus,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
