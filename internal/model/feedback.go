package model

// Feedback — corresponds to feedback
type Feedback struct {
	FeedbackID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`
	UserID     *string `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	Category   *string `gorm:"type:varchar(50)"                               json:"category,omitempty"` // sugestao | bug | outro
	Content    string  `gorm:"type:text;not null"                             json:"content"`
	Status     string  `gorm:"type:varchar(20);not null;default:'aberto'"     json:"status"`
	BaseModel
}

// TableName sets the table name.
func (Feedback) TableName() string { return "feedback" }
