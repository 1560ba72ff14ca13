package cart_controller

import (
	"context"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

// attachProducts joins cart rows with their products in one query. Items whose
// product was deleted keep a nil product rather than disappearing.
func attachProducts(ctx context.Context, items []models.CartItem) ([]models.CartItemWithProduct, error) {
	result := make([]models.CartItemWithProduct, 0, len(items))
	if len(items) == 0 {
		return result, nil
	}

	productIDs := make([]int, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	var products []models.Product
	if err := config.StoreGorm.
		WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[int]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	for _, item := range items {
		result = append(result, models.CartItemWithProduct{
			CartItem: item,
			Product:  byID[item.ProductID],
		})
	}

	return result, nil
}
