package domain

import (
	"assignment-lab/errors"
	"fmt"

	"github.com/samber/lo"
)

type Product struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

func NewProduct(name string, price float64) (Product, error) {
	product := Product{Name: name, Price: price}
	if err := validate.Struct(product); err != nil {
		return Product{}, fmt.Errorf("%w: %w", errors.ErrInvalidProduct, err)
	}
	return product, nil
}

// GetMostExpensiveProduct returns false when products is empty.
// On equal prices the first product wins.
func GetMostExpensiveProduct(products []Product) (Product, bool) {
	if len(products) == 0 {
		return Product{}, false
	}
	return lo.MaxBy(products, func(a, b Product) bool {
		return a.Price > b.Price
	}), true
}
