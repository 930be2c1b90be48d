package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "darulfatheh_backend/internals/features/users/auth/model"
)

/* ====================== ADMIN USER ====================== */

func FindAdminByUsername(ctx context.Context, db *gorm.DB, username string) (*authModel.AdminUserModel, error) {
	var admin authModel.AdminUserModel
	if err := db.WithContext(ctx).
		Where("admin_username = ?", strings.TrimSpace(username)).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func FindActiveAdminByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*authModel.AdminUserModel, error) {
	var admin authModel.AdminUserModel
	if err := db.WithContext(ctx).
		Where("admin_id = ? AND admin_is_active = ?", id, true).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func TouchLastLogin(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Model(&authModel.AdminUserModel{}).
		Where("admin_id = ?", id).
		Update("admin_last_login_at", time.Now()).Error
}

// UpsertAdmin membuat admin baru atau mereset password + mengaktifkan admin lama.
func UpsertAdmin(ctx context.Context, db *gorm.DB, username, passwordHash string) (*authModel.AdminUserModel, bool, error) {
	existing, err := FindAdminByUsername(ctx, db, username)
	switch {
	case err == nil:
		existing.AdminPasswordHash = passwordHash
		existing.AdminIsActive = true
		if err := db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := &authModel.AdminUserModel{
			AdminUsername:     strings.TrimSpace(username),
			AdminPasswordHash: passwordHash,
			AdminIsActive:     true,
		}
		if err := db.WithContext(ctx).Create(admin).Error; err != nil {
			return nil, false, err
		}
		return admin, true, nil
	default:
		return nil, false, err
	}
}
