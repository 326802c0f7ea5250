package tenant

import "gorm.io/gorm"

// Scope restricts a query to one restaurant's rows.
func Scope(restaurantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("restaurant_id = ?", restaurantID)
	}
}
