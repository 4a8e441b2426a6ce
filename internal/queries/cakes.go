package queries

import (
	"github.com/mesh-intelligence/prototypes/pkg/relational"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

func cakeToppings(c types.Cake) []string { return c.Toppings }

// StockPerCake pairs each cake flavor with its stock.
func StockPerCake(fx *types.Fixtures) []types.CakeStock {
	return relational.Map(fx.Cakes, func(c types.Cake) types.CakeStock {
		return types.CakeStock{Flavor: c.CakeFlavor, InStock: c.InStock}
	})
}

// OnlyInStock returns the cakes with a positive stock.
func OnlyInStock(fx *types.Fixtures) []types.Cake {
	return relational.Filter(fx.Cakes, func(c types.Cake) bool { return c.InStock > 0 })
}

// TotalInventory sums the stock of every cake.
func TotalInventory(fx *types.Fixtures) int {
	return relational.SumBy(fx.Cakes, func(c types.Cake) int { return c.InStock })
}

// AllToppings lists every topping once, in the order first seen.
func AllToppings(fx *types.Fixtures) []string {
	return relational.Unique(fx.Cakes, cakeToppings)
}

// GroceryList counts how many cakes use each topping.
func GroceryList(fx *types.Fixtures) map[string]int {
	return relational.CountBy(fx.Cakes, cakeToppings)
}
