package models

// UserProfile represents one local account
type UserProfile struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Avatar       string  `json:"avatar" db:"avatar"`
	CreatedAt    string  `json:"createdAt" db:"created_at"`
	LastActiveAt *string `json:"lastActiveAt" db:"last_active_at"`
}

// UserUpdate carries a partial profile update: nil fields are left untouched
type UserUpdate struct {
	Name         *string
	Avatar       *string
	LastActiveAt *string
}
