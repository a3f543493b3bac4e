package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"receiptbook/internal/models"
	"receiptbook/internal/storage"
)

// GetAdmin retrieves the singleton admin profile.
func (s *SQLiteStore) GetAdmin(ctx context.Context) (*models.Admin, error) {
	admin := &models.Admin{}
	var method string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, secret_hash, auth_method, name, block_number,
		        signature, society_name, society_address, society_reg_no
		 FROM admins WHERE id = ?`, models.AdminID,
	).Scan(
		&admin.ID, &admin.Username, &admin.SecretHash, &method, &admin.Name,
		&admin.BlockNumber, &admin.Signature, &admin.SocietyName,
		&admin.SocietyAddress, &admin.SocietyRegNo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	admin.AuthMethod = models.AuthMethod(method)
	return admin, nil
}

// PutAdmin inserts or replaces the admin profile. The row always lives
// under the fixed models.AdminID key, whatever the caller set.
func (s *SQLiteStore) PutAdmin(ctx context.Context, admin *models.Admin) error {
	admin.ID = models.AdminID
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admins (id, username, secret_hash, auth_method, name, block_number,
		                     signature, society_name, society_address, society_reg_no)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     username = excluded.username,
		     secret_hash = excluded.secret_hash,
		     auth_method = excluded.auth_method,
		     name = excluded.name,
		     block_number = excluded.block_number,
		     signature = excluded.signature,
		     society_name = excluded.society_name,
		     society_address = excluded.society_address,
		     society_reg_no = excluded.society_reg_no`,
		admin.ID, admin.Username, admin.SecretHash, string(admin.AuthMethod),
		admin.Name, admin.BlockNumber, admin.Signature, admin.SocietyName,
		admin.SocietyAddress, admin.SocietyRegNo,
	)
	if err != nil {
		return fmt.Errorf("failed to put admin: %w", err)
	}
	return nil
}
