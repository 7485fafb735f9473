package menu

import "kitchen-drone/internal/domain"

// catalog статичное меню; загружается один раз при старте процесса
// и дальше не меняется
var catalog = []domain.MenuCategory{
	{
		ID:          "starters",
		Name:        "Starters",
		Description: "Delicious appetizers to start your meal",
		Items: []domain.MenuItem{
			{ID: "s1", Name: "Paneer Tikka", Description: "Marinated cottage cheese grilled to perfection", Price: 249, Image: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8"},
			{ID: "s2", Name: "Veg Spring Rolls", Description: "Crispy rolls filled with vegetables", Price: 199, Image: "https://images.unsplash.com/photo-1607215823971-3b486880cd8e"},
			{ID: "s3", Name: "Gobi Manchurian", Description: "Crispy cauliflower in manchurian sauce", Price: 229, Image: "https://images.unsplash.com/photo-1625398407796-82650a8c9dd1"},
		},
	},
	{
		ID:          "mains",
		Name:        "Main Course",
		Description: "Hearty and satisfying main dishes",
		Items: []domain.MenuItem{
			{ID: "m1", Name: "Butter Chicken", Description: "Tender chicken in a rich buttery tomato sauce", Price: 349, Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398"},
			{ID: "m2", Name: "Paneer Butter Masala", Description: "Cottage cheese cubes in a creamy sauce", Price: 299, Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7"},
			{ID: "m3", Name: "Vegetable Biryani", Description: "Fragrant rice with mixed vegetables", Price: 279, Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0"},
		},
	},
	{
		ID:          "breads",
		Name:        "Breads",
		Description: "Freshly baked breads to accompany your meal",
		Items: []domain.MenuItem{
			{ID: "b1", Name: "Naan", Description: "Soft leavened flatbread", Price: 49, Image: "https://images.unsplash.com/photo-1633383718081-22ac93e3db65"},
			{ID: "b2", Name: "Butter Roti", Description: "Whole wheat flatbread with butter", Price: 39, Image: "https://images.unsplash.com/photo-1626074353765-517a681e40be"},
			{ID: "b3", Name: "Garlic Naan", Description: "Naan topped with garlic and butter", Price: 59, Image: "https://images.unsplash.com/photo-1574894709920-11b28e7367e3"},
		},
	},
	{
		ID:          "desserts",
		Name:        "Desserts",
		Description: "Sweet treats to end your meal",
		Items: []domain.MenuItem{
			{ID: "d1", Name: "Gulab Jamun", Description: "Deep-fried milk solids soaked in sugar syrup", Price: 149, Image: "https://images.unsplash.com/photo-1601303892389-8b0c7532cec6"},
			{ID: "d2", Name: "Rasgulla", Description: "Soft and spongy cottage cheese balls", Price: 129, Image: "https://images.unsplash.com/photo-1614945086549-28afadb1e8c7"},
			{ID: "d3", Name: "Kulfi", Description: "Traditional Indian ice cream", Price: 99, Image: "https://images.unsplash.com/photo-1611502071781-72d60be998c2"},
		},
	},
}

// Catalog возвращает все категории меню в порядке показа
func Catalog() []domain.MenuCategory {
	return catalog
}

// FindItem ищет позицию меню по id; вторым значением — нашлась ли
func FindItem(id string) (domain.MenuItem, bool) {
	for _, c := range catalog {
		for _, it := range c.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return domain.MenuItem{}, false
}
