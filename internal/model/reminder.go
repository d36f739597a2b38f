package model

import "time"

// Reminder priorities, in display order.
const (
	PriorityAlta  = "alta"
	PriorityMedia = "media"
	PriorityBaixa = "baixa"
)

// Reminder — corresponds to reminders
type Reminder struct {
	ReminderID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"reminder_id"`
	UserID     string     `gorm:"type:uuid;not null"                             json:"user_id"`
	Text       string     `gorm:"type:varchar(500);not null"                     json:"text"`
	Subject    *string    `gorm:"type:varchar(100)"                              json:"subject,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Priority   string     `gorm:"type:varchar(10);not null;default:'media'"      json:"priority"` // alta | media | baixa
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Reminder) TableName() string { return "reminders" }
