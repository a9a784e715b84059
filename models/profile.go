package models

// KDFType selects the key-derivation function for a user's master password.
type KDFType int

const (
	KDFTypePBKDF2   KDFType = 0
	KDFTypeArgon2id KDFType = 1
)

// KDFConfig holds the per-user key-derivation parameters announced by the
// server at registration time.
type KDFConfig struct {
	Type        KDFType `json:"kdfType"`
	Iterations  int     `json:"kdfIterations"`
	Memory      int     `json:"kdfMemory,omitempty"`
	Parallelism int     `json:"kdfParallelism,omitempty"`
}

// Organization is a user's organization membership as reported by full sync.
type Organization struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Key  *string `json:"key,omitempty"`
}

// Policy is a single organization policy record. Policies are persisted
// verbatim; the engine only distinguishes "fetched empty" from "never
// fetched".
type Policy struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organizationId"`
	Type           int            `json:"type"`
	Enabled        bool           `json:"enabled"`
	Data           map[string]any `json:"data,omitempty"`
}

// Profile is the user profile block of the full sync payload.
type Profile struct {
	ID                    string         `json:"id"`
	Email                 string         `json:"email"`
	Name                  string         `json:"name"`
	Key                   string         `json:"key"`
	PrivateKey            string         `json:"privateKey"`
	SecurityStamp         string         `json:"securityStamp"`
	ShouldUseKeyConnector bool           `json:"usesKeyConnector"`
	Organizations         []Organization `json:"organizations,omitempty"`
}

// Account is the locally persisted per-user auth record.
type Account struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	SecurityStamp string    `json:"securityStamp"`
	KDF           KDFConfig `json:"kdf"`
	ShouldUseKeyConnector bool `json:"usesKeyConnector"`
}

// UserState is the persisted multi-account auth state. ActiveUserID is empty
// when nobody is logged in.
type UserState struct {
	ActiveUserID string             `json:"activeUserId"`
	Accounts     map[string]Account `json:"accounts"`
}

// ActiveAccount returns the active account, when there is one.
func (u UserState) ActiveAccount() (Account, bool) {
	acc, ok := u.Accounts[u.ActiveUserID]
	return acc, ok
}
