package domain

import "errors"

var ErrSettingsNotFound = errors.New("settings not found")

// Settings is the single site-wide configuration document edited from the
// admin settings screen.
type Settings struct {
	SiteName           string `json:"site_name"`
	SiteDescription    string `json:"site_description"`
	ContactEmail       string `json:"contact_email"`
	EnableRegistration bool   `json:"enable_registration"`
}

// DefaultSettings returns the values served before an admin has saved
// anything.
func DefaultSettings() *Settings {
	return &Settings{
		SiteName:           "TechStore",
		SiteDescription:    "Your one-stop shop for tech products",
		ContactEmail:       "contact@techstore.com",
		EnableRegistration: true,
	}
}
