package domain

// Category is the closed set of business categories. The zero value
// CategoryAll (0) exists only as a browse-filter sentinel and is never
// persisted on a Business.
type Category int

const (
	CategoryAll               Category = 0
	CategoryBeautyHair        Category = 1
	CategoryFashion           Category = 2
	CategoryFoodBaking        Category = 3
	CategoryTutoring          Category = 4
	CategoryCreativeDesign    Category = 5
	CategoryNails             Category = 6
	CategoryResellMarketplace Category = 7
	CategoryOther             Category = 8
)

var categoryNames = map[Category]string{
	CategoryAll:               "All Categories",
	CategoryBeautyHair:        "Beauty & Hair",
	CategoryFashion:           "Fashion",
	CategoryFoodBaking:        "Food & Baking",
	CategoryTutoring:          "Tutoring",
	CategoryCreativeDesign:    "Creative & Design",
	CategoryNails:             "Nails",
	CategoryResellMarketplace: "Resell & Marketplace",
	CategoryOther:             "Other",
}

// Name resolves the display name. Unknown ids render as "Other";
// the stored value itself is never rewritten.
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Other"
}

// Valid reports whether c is a persistable category (1..8).
func (c Category) Valid() bool {
	return c >= CategoryBeautyHair && c <= CategoryOther
}

// Categories returns the persistable categories in display order.
func Categories() []Category {
	out := make([]Category, 0, 8)
	for c := CategoryBeautyHair; c <= CategoryOther; c++ {
		out = append(out, c)
	}
	return out
}
