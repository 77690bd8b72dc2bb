package store

import (
	"context"

	"printverse/domain"
)

// Admin returns the single administrator record.
func (s *Store) Admin(ctx context.Context) (domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.AdminUser{}, err
	}
	return data.Admin, nil
}

// ValidateAdmin reports whether the given credentials match the stored
// admin account. The username is compared exactly; the password is
// checked against the stored hash, never stored or compared in clear.
func (s *Store) ValidateAdmin(ctx context.Context, username, password string) (bool, error) {
	admin, err := s.Admin(ctx)
	if err != nil {
		return false, err
	}
	if admin.Username != username {
		return false, nil
	}
	return s.verifier.Verify(admin.PasswordHash, password), nil
}

// SetAdminPassword replaces the admin password hash.
func (s *Store) SetAdminPassword(ctx context.Context, password string) error {
	if password == "" {
		return domain.NewValidationError("password", "cannot be empty", password)
	}
	hash, err := s.verifier.Hash(password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	data.Admin.PasswordHash = hash
	return s.save(ctx, data)
}
