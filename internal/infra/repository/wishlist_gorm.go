package repository

import (
	"context"
	"time"

	"luxestore/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// ユーザーのウィッシュリストを一覧取得
func (r *WishlistGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	var items []model.WishlistItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.WishlistItem{}, err
	}

	return items, nil
}

// 追加。(user_id, product_id)のunique index + DO NOTHINGで重複行を作らない。
func (r *WishlistGormRepository) Add(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error) {
	item.ID = 0
	item.CreatedAt = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&item).Error
	if err != nil {
		return model.WishlistItem{}, err
	}

	// conflictで何も挿入されなかった場合は既存行を返す
	var saved model.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&saved).Error; err != nil {
		return model.WishlistItem{}, err
	}

	return saved, nil
}

// 複合キー削除。該当行が無くてもエラーにしない。
func (r *WishlistGormRepository) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItem{}).Error
}

// (user, product)が存在するか
func (r *WishlistGormRepository) Exists(ctx context.Context, userID int64, productID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
