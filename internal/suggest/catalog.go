package suggest

import "github.com/wensjes/registry/internal/models"

// Catalog is the static gift catalog. Entries are grouped roughly by age
// group; order matters, the engine preserves it. An empty gender or
// interest list means the entry applies to everyone.
var Catalog = []models.Suggestion{
	// Baby & peuter
	{
		ID:              "rammelaar",
		Name:            "Houten Rammelaar",
		ImageRef:        "https://images.unsplash.com/photo-1515488042361-ee00e0ddd4e4?w=200",
		PriceRange:      "€10-20",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"baby"},
	},
	{
		ID:              "stapelblokken",
		Name:            "Zachte Stapelblokken",
		ImageRef:        "https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?w=200",
		PriceRange:      "€15-30",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"baby"},
	},
	{
		ID:              "babyboekjes",
		Name:            "Knisper Babyboekjes",
		ImageRef:        "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=200",
		PriceRange:      "€10-20",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"baby", "reading"},
	},
	{
		ID:              "speelmat",
		Name:            "Speelmat met Boog",
		ImageRef:        "https://images.unsplash.com/photo-1566004100631-35d015d6a491?w=200",
		PriceRange:      "€40-80",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"baby"},
	},

	// Kinderen (0-12)
	{
		ID:              "lego-classic",
		Name:            "LEGO Classic Bouwset",
		ImageRef:        "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=200",
		PriceRange:      "€20-40",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"crafts"},
	},
	{
		ID:              "pokemon-cards",
		Name:            "Pokémon Kaarten Boosterpack",
		ImageRef:        "https://images.unsplash.com/photo-1613771404784-3a5686aa2be3?w=200",
		PriceRange:      "€5-15",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild, models.AgeTeen},
		TargetInterests: []string{"gaming"},
	},
	{
		ID:              "knuffel",
		Name:            "Zachte Knuffelbeer",
		ImageRef:        "https://images.unsplash.com/photo-1558679908-541bcf1249ff?w=200",
		PriceRange:      "€15-30",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
	},
	{
		ID:              "kinderboek",
		Name:            "Spannend Kinderboek",
		ImageRef:        "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=200",
		PriceRange:      "€10-20",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"reading"},
	},
	{
		ID:              "knutselset",
		Name:            "Knutselset Deluxe",
		ImageRef:        "https://images.unsplash.com/photo-1452860606245-08befc0ff44b?w=200",
		PriceRange:      "€15-30",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"crafts"},
	},
	{
		ID:              "voetbal",
		Name:            "Voetbal Officieel",
		ImageRef:        "https://images.unsplash.com/photo-1614632537197-38a17061c2bd?w=200",
		PriceRange:      "€15-40",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild, models.AgeTeen},
		TargetInterests: []string{"sports"},
	},
	{
		ID:              "tablet-kids",
		Name:            "Kindertablet",
		ImageRef:        "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=200",
		PriceRange:      "€80-150",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild},
		TargetInterests: []string{"technology", "gaming"},
	},

	// Tieners (13-17)
	{
		ID:              "game-tegoed",
		Name:            "Game Tegoedkaart",
		ImageRef:        "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=200",
		PriceRange:      "€5-50",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen},
		TargetInterests: []string{"gaming"},
	},
	{
		ID:              "spelcomputer",
		Name:            "Spelcomputer",
		ImageRef:        "https://images.unsplash.com/photo-1486401899868-0e435ed85128?w=200",
		PriceRange:      "€150-400",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen},
		TargetInterests: []string{"gaming"},
	},
	{
		ID:              "gaming-headset",
		Name:            "Gaming Headset",
		ImageRef:        "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=200",
		PriceRange:      "€40-100",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"gaming", "technology"},
	},
	{
		ID:              "bluetooth-speaker",
		Name:            "Bluetooth Speaker",
		ImageRef:        "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=200",
		PriceRange:      "€30-80",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"music", "technology"},
	},
	{
		ID:              "koptelefoon",
		Name:            "Draadloze Koptelefoon",
		ImageRef:        "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=200",
		PriceRange:      "€50-200",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"music", "technology"},
	},
	{
		ID:              "hoodie",
		Name:            "Trendy Hoodie",
		ImageRef:        "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=200",
		PriceRange:      "€30-60",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"fashion"},
	},
	{
		ID:              "sneakers",
		Name:            "Coole Sneakers",
		ImageRef:        "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200",
		PriceRange:      "€60-150",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"fashion", "sports"},
	},
	{
		ID:              "skincare-set",
		Name:            "Skincare Starterset",
		ImageRef:        "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=200",
		PriceRange:      "€25-50",
		TargetAgeGroups: []models.AgeGroup{models.AgeTeen, models.AgeAdult},
		TargetGenders:   []models.Gender{models.GenderFemale, models.GenderOther},
		TargetInterests: []string{"beauty"},
	},

	// Volwassenen (18+)
	{
		ID:              "boek-bestseller",
		Name:            "Bestseller Roman",
		ImageRef:        "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=200",
		PriceRange:      "€15-25",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult, models.AgeTeen},
		TargetInterests: []string{"reading"},
	},
	{
		ID:              "kookboek",
		Name:            "Kookboek Deluxe",
		ImageRef:        "https://images.unsplash.com/photo-1466637574441-749b8f19452f?w=200",
		PriceRange:      "€25-40",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"cooking"},
	},
	{
		ID:              "airfryer",
		Name:            "Airfryer",
		ImageRef:        "https://images.unsplash.com/photo-1648655115753-abb78ee76f27?w=200",
		PriceRange:      "€80-200",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"cooking"},
	},
	{
		ID:              "smartwatch",
		Name:            "Smartwatch",
		ImageRef:        "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=200",
		PriceRange:      "€150-400",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult, models.AgeTeen},
		TargetInterests: []string{"technology", "fitness", "sports"},
	},
	{
		ID:              "fitnesstracker",
		Name:            "Fitness Tracker",
		ImageRef:        "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=200",
		PriceRange:      "€50-150",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult, models.AgeTeen},
		TargetInterests: []string{"fitness", "sports"},
	},
	{
		ID:              "yoga-mat",
		Name:            "Premium Yoga Mat",
		ImageRef:        "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=200",
		PriceRange:      "€30-80",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"fitness"},
	},
	{
		ID:              "parfum",
		Name:            "Designer Parfum",
		ImageRef:        "https://images.unsplash.com/photo-1541643600914-78b084683601?w=200",
		PriceRange:      "€50-150",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"beauty", "fashion"},
	},
	{
		ID:              "tuingereedschap",
		Name:            "Tuingereedschap Set",
		ImageRef:        "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=200",
		PriceRange:      "€30-80",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"garden"},
	},
	{
		ID:              "reistas",
		Name:            "Weekendtas Leer",
		ImageRef:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=200",
		PriceRange:      "€60-150",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"travel", "fashion"},
	},
	{
		ID:              "vinyl-plaat",
		Name:            "Vinyl LP Favoriet Album",
		ImageRef:        "https://images.unsplash.com/photo-1539375665275-f9de415ef9ac?w=200",
		PriceRange:      "€20-40",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult, models.AgeTeen},
		TargetInterests: []string{"music"},
	},

	// Algemeen
	{
		ID:              "cadeaubon",
		Name:            "Cadeaubon (keuze winkel)",
		ImageRef:        "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?w=200",
		PriceRange:      "€10-100",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild, models.AgeTeen, models.AgeAdult},
	},
	{
		ID:              "hondenspeelgoed",
		Name:            "Hondenspeelgoed Set",
		ImageRef:        "https://images.unsplash.com/photo-1535294435445-d7249524ef2e?w=200",
		PriceRange:      "€15-35",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild, models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"pets"},
	},
	{
		ID:              "kattenspeelgoed",
		Name:            "Interactief Kattenspeelgoed",
		ImageRef:        "https://images.unsplash.com/photo-1545249390-6bdfa286032f?w=200",
		PriceRange:      "€10-30",
		TargetAgeGroups: []models.AgeGroup{models.AgeChild, models.AgeTeen, models.AgeAdult},
		TargetInterests: []string{"pets"},
	},
	{
		ID:              "geurkaarsen",
		Name:            "Luxe Geurkaarsen Set",
		ImageRef:        "https://images.unsplash.com/photo-1602607434776-83be50e037c5?w=200",
		PriceRange:      "€20-50",
		TargetAgeGroups: []models.AgeGroup{models.AgeAdult},
		TargetInterests: []string{"home"},
	},
}
