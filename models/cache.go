package models

// TokenRecord is an SSO token cache file written by `aws sso login`.
type TokenRecord struct {
	StartURL    string `json:"startUrl,omitempty"`
	Region      string `json:"region,omitempty"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// RecordKind tags which cache shapes a file carried.
type RecordKind int

const (
	RecordUnknown RecordKind = iota
	RecordToken
	RecordRoleCredentials
	RecordTokenAndRoleCredentials
)

// CachedCredentialRecord holds whichever recognised shapes were present in a
// single cache file. A nil field means the shape was absent or unusable.
type CachedCredentialRecord struct {
	Token       *TokenRecord
	Credentials *RoleCredentialRecord
}

func (r CachedCredentialRecord) Kind() RecordKind {
	switch {
	case r.Token != nil && r.Credentials != nil:
		return RecordTokenAndRoleCredentials
	case r.Token != nil:
		return RecordToken
	case r.Credentials != nil:
		return RecordRoleCredentials
	default:
		return RecordUnknown
	}
}
