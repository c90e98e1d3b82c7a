package storage

import "github.com/dripitout/dripitout-api/models"

// SampleProducts is the starter catalog used to seed an empty store.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Silk Evening Dress",
			Description: "Elegant silk evening dress perfect for formal occasions. Features intricate embroidery and a flattering silhouette.",
			Price:       89500,
			ImageUrl:    "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=800&q=80",
			Category:    "Dresses",
			Collection:  "Evening Wear",
			InStock:     true,
		},
		{
			Name:        "Cashmere Overcoat",
			Description: "Luxurious cashmere overcoat that provides exceptional warmth and style. Tailored to perfection with premium detailing.",
			Price:       125000,
			ImageUrl:    "https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?auto=format&fit=crop&w=800&q=80",
			Category:    "Outerwear",
			Collection:  "Winter Essentials",
			InStock:     true,
		},
		{
			Name:        "Italian Wool Suit",
			Description: "Expertly crafted Italian wool suit that showcases traditional tailoring techniques with a modern fit.",
			Price:       185000,
			ImageUrl:    "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?auto=format&fit=crop&w=800&q=80",
			Category:    "Suits",
			Collection:  "Business Collection",
			InStock:     true,
		},
		{
			Name:        "Tailored Linen Shirt",
			Description: "Breathable linen shirt with a relaxed tailored cut, finished with mother-of-pearl buttons.",
			Price:       24500,
			ImageUrl:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?auto=format&fit=crop&w=800&q=80",
			Category:    "Tops",
			Collection:  "Classic Essentials",
			InStock:     true,
		},
		{
			Name:        "Pleated Wide-Leg Trousers",
			Description: "High-waisted wide-leg trousers with knife pleats, cut from a fluid wool blend.",
			Price:       38000,
			ImageUrl:    "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?auto=format&fit=crop&w=800&q=80",
			Category:    "Bottoms",
			Collection:  "Business Collection",
			InStock:     true,
		},
		{
			Name:        "Hand-Stitched Leather Oxfords",
			Description: "Full-grain leather oxfords hand-stitched by master cobblers, with a Goodyear welted sole.",
			Price:       67500,
			ImageUrl:    "https://images.unsplash.com/photo-1614252369475-531eba835eb1?auto=format&fit=crop&w=800&q=80",
			Category:    "Footwear",
			Collection:  "Limited Edition",
			InStock:     false,
		},
	}
}
