package repository

import (
	"context"
	"errors"
	"time"

	"luxestore/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカート明細を一覧取得
func (r *CartGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, err
	}

	return items, nil
}

// 同一(user, product)は数量加算。
// (user_id, product_id)のunique index + ON CONFLICTで1文のupsertにして、
// 同時追加でも行が割れたり加算が消えたりしないようにする。
func (r *CartGormRepository) Upsert(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, error) {
	if addQty <= 0 {
		return model.CartItem{}, errors.New("invalid quantity")
	}

	now := time.Now()
	item := model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  addQty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + ?", addQty),
				"updated_at": now,
			}),
		}).
		Create(&item).Error
	if err != nil {
		return model.CartItem{}, err
	}

	// 加算後の行を返す（conflict時はCreateが最新値を持たない）
	var saved model.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&saved).Error; err != nil {
		return model.CartItem{}, err
	}

	return saved, nil
}

// 明細の数量を上書きし、影響行数を返す
func (r *CartGormRepository) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", cartItemID).
		Update("quantity", qty)

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// 複合キー削除。該当行が無くてもエラーにしない。
func (r *CartGormRepository) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}
