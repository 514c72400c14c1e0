package model

// BusinessInfo is the salon's opening-hours and contact record. A single row
// is expected; it is created lazily on first update.
type BusinessInfo struct {
	ID             int64  `json:"id"`
	MondayHours    string `json:"mondayHours"`
	TuesdayHours   string `json:"tuesdayHours"`
	WednesdayHours string `json:"wednesdayHours"`
	ThursdayHours  string `json:"thursdayHours"`
	FridayHours    string `json:"fridayHours"`
	SaturdayHours  string `json:"saturdayHours"`
	SundayHours    string `json:"sundayHours"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
}

// DefaultBusinessInfo returns the values served before any row exists.
// They match the schema defaults in the initial migration.
func DefaultBusinessInfo() BusinessInfo {
	return BusinessInfo{
		MondayHours:    "09:00-17:00",
		TuesdayHours:   "09:00-17:00",
		WednesdayHours: "09:00-17:00",
		ThursdayHours:  "09:00-17:00",
		FridayHours:    "09:00-17:00",
		SaturdayHours:  "09:00-12:00",
		SundayHours:    "Fermé",
		Phone:          "40 50 60 70",
		Email:          "contact@maitaibeauty.com",
		Address:        "PK18, Punaauia, Tahiti",
	}
}
