package models

// BrowserSettings overrides how the wrapper launches the browser.
type BrowserSettings struct {
	App         string `json:"app" yaml:"app"`
	ProfileRoot string `json:"profile_root" yaml:"profile_root"`
}

// Settings is the optional wrapper settings file.
type Settings struct {
	AuthTool string          `json:"auth_tool" yaml:"auth_tool"`
	Browser  BrowserSettings `json:"browser" yaml:"browser"`
}
