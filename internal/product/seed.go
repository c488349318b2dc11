package product

import "github.com/shopspring/decimal"

// Seed returns the boutique's starting catalog. Image references
// point at the showroom CDN seeds used by the front-end.
func Seed() []Product {
	entries := []struct {
		id, name string
		price    int64
		category Category
		sku      string
	}{
		{"m1", "Silk Peak Lapel Suit", 2450, CategoryMen, "EM-M-001"},
		{"m2", "Cashmere Overcoat", 1800, CategoryMen, "EM-M-002"},
		{"m3", "Egyptian Cotton Shirt", 350, CategoryMen, "EM-M-003"},
		{"m4", "Velvet Smoking Jacket", 1200, CategoryMen, "EM-M-004"},
		{"m5", "Merino Wool Turtleneck", 420, CategoryMen, "EM-M-005"},
		{"m6", "Hand-Stitched Loafers", 850, CategoryMen, "EM-M-006"},
		{"m7", "Linen Summer Blazer", 950, CategoryMen, "EM-M-007"},
		{"m8", "Selvedge Denim Jeans", 280, CategoryMen, "EM-M-008"},
		{"m9", "Suede Chelsea Boots", 650, CategoryMen, "EM-M-009"},
		{"m10", "Polo Silk T-Shirt", 195, CategoryMen, "EM-M-010"},
		{"w1", "Evening Silk Gown", 3200, CategoryWomen, "EM-W-001"},
		{"w2", "Cashmere Wrap Cardigan", 680, CategoryWomen, "EM-W-002"},
		{"w3", "Tweed Mini Skirt", 450, CategoryWomen, "EM-W-003"},
		{"w4", "Satin Slip Dress", 590, CategoryWomen, "EM-W-004"},
		{"w5", "Embellished Tulle Top", 820, CategoryWomen, "EM-W-005"},
		{"w6", "Leather Pencil Skirt", 950, CategoryWomen, "EM-W-006"},
		{"w7", "Shearling Trim Jacket", 2400, CategoryWomen, "EM-W-007"},
		{"w8", "High-Waist Silk Trousers", 780, CategoryWomen, "EM-W-008"},
		{"w9", "Pointed Toe Stilettos", 890, CategoryWomen, "EM-W-009"},
		{"w10", "Velvet Bodysuit", 340, CategoryWomen, "EM-W-010"},
		{"a1", "Pearl Accent Clutch", 650, CategoryAccessories, "EM-A-001"},
		{"a2", "Alligator Skin Belt", 550, CategoryAccessories, "EM-A-002"},
		{"a3", "Silk Bow Tie", 125, CategoryAccessories, "EM-A-003"},
		{"a4", "Merino Wrap Scarf", 210, CategoryAccessories, "EM-A-004"},
		{"a5", "Angora Wool Beret", 180, CategoryAccessories, "EM-A-005"},
	}

	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, Product{
			ID:       e.id,
			Name:     e.name,
			Price:    decimal.NewFromInt(e.price),
			Category: e.category,
			ImageURL: "https://picsum.photos/seed/" + e.id + "/400/400",
			SKU:      e.sku,
		})
	}
	return products
}
