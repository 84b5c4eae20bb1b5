package models

// BrowserAccount is one signed-in account of a browser profile.
type BrowserAccount struct {
	Email string `json:"email"`
}

// BrowserSignin holds the legacy sign-in identity fields.
type BrowserSignin struct {
	LastUsername string `json:"last_username"`
	Username     string `json:"username"`
}

// BrowserPreferences is the subset of a Chromium "Preferences" file used to
// identify who a profile belongs to.
type BrowserPreferences struct {
	AccountInfo []BrowserAccount `json:"account_info"`
	Signin      *BrowserSignin   `json:"signin"`
}
