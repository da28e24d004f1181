package models

const (
	ProductKindPhoto = "photo"
	ProductKindAlbum = "album"
)

// Product is a shop entry. The catalog is a fixed in-memory list and is
// intentionally decoupled from the gallery tables: what the shop sells is
// curated by hand, not derived from uploaded content.
type Product struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Kind        string  `json:"kind"`
	TargetID    uint    `json:"target_id"`
}

var ShopProducts = []Product{
	{
		ID:          1,
		Title:       "Match de Football",
		Description: "Photo haute résolution d'un moment clé du match",
		Price:       29.99,
		Kind:        ProductKindPhoto,
		TargetID:    1,
	},
	{
		ID:          2,
		Title:       "Course d'Athlétisme",
		Description: "Sprint final capturé en haute qualité",
		Price:       24.99,
		Kind:        ProductKindPhoto,
		TargetID:    2,
	},
	{
		ID:          3,
		Title:       "Album Complet - Tournoi",
		Description: "Collection complète des meilleurs moments",
		Price:       99.99,
		Kind:        ProductKindAlbum,
		TargetID:    1,
	},
}

func FindProduct(id uint) *Product {
	for i := range ShopProducts {
		if ShopProducts[i].ID == id {
			return &ShopProducts[i]
		}
	}
	return nil
}
