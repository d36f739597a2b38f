package model

// ClassSession is one weekly recurring class block on the student's
// grid — corresponds to classes.
//
// Day is one of Seg/Ter/Qua/Qui/Sex/Sab (no Sunday slots). Start and
// end are zero-padded "HH:MM" strings drawn from the fixed hourly grid,
// so lexicographic comparison equals chronological comparison.
type ClassSession struct {
	ClassSessionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_session_id"`
	UserID         string `gorm:"type:uuid;not null"                             json:"user_id"`
	SubjectName    string `gorm:"type:varchar(100);not null"                     json:"subject_name"`
	Professor      string `gorm:"type:varchar(100)"                              json:"professor,omitempty"`
	Room           string `gorm:"type:varchar(100)"                              json:"room,omitempty"`
	Day            string `gorm:"type:varchar(3);not null"                       json:"day"`
	StartTime      string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime        string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	Color          string `gorm:"type:varchar(30);not null"                      json:"color"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (ClassSession) TableName() string { return "classes" }
