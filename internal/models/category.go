package models

// Fixed transaction categories, in display order.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategoryRent          = "Rent"
	CategorySalary        = "Salary"
	CategoryFreelance     = "Freelance"
	CategoryInvestment    = "Investment"
	CategoryGift          = "Gift"
	CategoryOther         = "Other"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealth,
		CategoryEducation,
		CategoryRent,
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryGift,
		CategoryOther,
	}
}

// IncomeCategories returns the categories typically used for income.
func IncomeCategories() []string {
	return []string{CategorySalary, CategoryFreelance, CategoryInvestment, CategoryGift, CategoryOther}
}

// ExpenseCategories returns the categories typically used for expenses.
func ExpenseCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealth,
		CategoryEducation,
		CategoryRent,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
