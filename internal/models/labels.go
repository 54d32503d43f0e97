package models

// Interest is a selectable interest tag with its presentation label.
type Interest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Interests is the fixed set of interest tags a person can be given.
var Interests = []Interest{
	{ID: "baby", Label: "Baby & Peuter", Icon: "🍼"},
	{ID: "technology", Label: "Technologie", Icon: "💻"},
	{ID: "sports", Label: "Sport", Icon: "⚽"},
	{ID: "reading", Label: "Lezen", Icon: "📚"},
	{ID: "cooking", Label: "Koken", Icon: "🍳"},
	{ID: "gaming", Label: "Gaming", Icon: "🎮"},
	{ID: "music", Label: "Muziek", Icon: "🎵"},
	{ID: "fashion", Label: "Mode", Icon: "👗"},
	{ID: "garden", Label: "Tuin", Icon: "🌱"},
	{ID: "crafts", Label: "Knutselen", Icon: "✂️"},
	{ID: "travel", Label: "Reizen", Icon: "✈️"},
	{ID: "beauty", Label: "Beauty", Icon: "💄"},
	{ID: "fitness", Label: "Fitness", Icon: "💪"},
	{ID: "pets", Label: "Huisdieren", Icon: "🐾"},
	{ID: "home", Label: "Wonen", Icon: "🏠"},
}

// AgeGroupLabel maps age groups to their presentation labels.
var AgeGroupLabel = map[AgeGroup]string{
	AgeChild: "Kind (0-12)",
	AgeTeen:  "Tiener (13-17)",
	AgeAdult: "Volwassene (18+)",
}

// GenderLabel maps genders to their presentation labels.
var GenderLabel = map[Gender]string{
	GenderMale:   "Man",
	GenderFemale: "Vrouw",
	GenderOther:  "Anders",
}
