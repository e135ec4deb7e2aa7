package models

// Setting is a global key/value flag.
type Setting struct {
	BaseModel
	Key   string `json:"key" gorm:"size:50;uniqueIndex;not null" validate:"required,max=50"`
	Value string `json:"value" gorm:"size:200"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

// SettingShowWeekends toggles weekend days on the planning board; the
// "has holes" flag respects it.
const SettingShowWeekends = "show_weekends"
