package domain

import "slices"

type Category string

const (
	CategoryBusiness      Category = "business"
	CategoryEntertainment Category = "entertainment"
	CategoryEnvironment   Category = "environment"
	CategoryFood          Category = "food"
	CategoryHealth        Category = "health"
	CategoryPolitics      Category = "politics"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryTechnology    Category = "technology"
	CategoryTop           Category = "top"
	CategoryTourism       Category = "tourism"
	CategoryWorld         Category = "world"
)

var Categories = []Category{
	CategoryBusiness,
	CategoryEntertainment,
	CategoryEnvironment,
	CategoryFood,
	CategoryHealth,
	CategoryPolitics,
	CategoryScience,
	CategorySports,
	CategoryTechnology,
	CategoryTop,
	CategoryTourism,
	CategoryWorld,
}

func IsValidCategory(category string) bool {
	return slices.Contains(Categories, Category(category))
}
