package models

// RoleCredentials is the block the AWS CLI writes under "Credentials" when it
// caches temporary role credentials.
type RoleCredentials struct {
	AccessKeyID     string `json:"AccessKeyId"`
	SecretAccessKey string `json:"SecretAccessKey"`
	SessionToken    string `json:"SessionToken"`
	Expiration      string `json:"Expiration"`
}

// RoleCredentialRecord is a role-credential cache file.
type RoleCredentialRecord struct {
	ProviderType string          `json:"ProviderType,omitempty"`
	Credentials  RoleCredentials `json:"Credentials"`
}
