package account

import "time"

// Account là domain entity - ánh xạ 1:1 với bảng accounts
type Account struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// ProfileID được populate qua LEFT JOIN profiles khi resolve token.
	// nil nghĩa là account chưa có profile (không thể own books)
	ProfileID *int64 `db:"profile_id" json:"profile_id,omitempty"`
}

// HasProfile kiểm tra account đã có profile chưa
func (a *Account) HasProfile() bool {
	return a.ProfileID != nil
}

// Profile - 1:1 với Account, owner của books
type Profile struct {
	ID        int64 `db:"id" json:"id"`
	AccountID int64 `db:"account_id" json:"account_id"`
}

// AuthToken là opaque bearer credential, 1:1 với Account, không expire
type AuthToken struct {
	Token     string    `db:"token" json:"token"`
	AccountID int64     `db:"account_id" json:"account_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
