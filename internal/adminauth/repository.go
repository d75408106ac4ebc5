package adminauth

import "context"

// AdminPasswordKey is the settings key holding the bcrypt hash of the admin password.
const AdminPasswordKey = "admin_password"

// Repository defines the interface for admin settings storage.
type Repository interface {
	// GetSetting returns the value for a key, or ErrSettingNotFound.
	GetSetting(ctx context.Context, key string) (string, error)
}
