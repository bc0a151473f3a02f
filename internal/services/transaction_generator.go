package services

import (
	"sort"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	expenseShare = 0.8
	salaryDay    = 1
)

type transactionGenerator struct {
	faker *gofakeit.Faker
}

// NewTransactionGenerator creates a generator. A zero seed picks a random one.
func NewTransactionGenerator(seed uint64) TransactionGeneratorInterface {
	return &transactionGenerator{
		faker: gofakeit.New(seed),
	}
}

// amountRanges are plausible INR ranges per category
var amountRanges = map[string][2]float64{
	models.CategoryFood:          {50, 1500},
	models.CategoryTransport:     {30, 800},
	models.CategoryShopping:      {200, 5000},
	models.CategoryEntertainment: {100, 2000},
	models.CategoryBills:         {500, 5000},
	models.CategoryHealth:        {200, 4000},
	models.CategoryEducation:     {500, 10000},
	models.CategoryRent:          {8000, 30000},
	models.CategorySalary:        {30000, 120000},
	models.CategoryFreelance:     {2000, 40000},
	models.CategoryInvestment:    {500, 20000},
	models.CategoryGift:          {500, 10000},
	models.CategoryOther:         {50, 2000},
}

// GenerateType returns expense most of the time
func (g *transactionGenerator) GenerateType() string {
	if g.faker.Float64() < expenseShare {
		return models.TransactionTypeExpense
	}
	return models.TransactionTypeIncome
}

// GenerateAmount generates a realistic amount based on category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	r, ok := amountRanges[category]
	if !ok {
		r = amountRanges[models.CategoryOther]
	}
	return decimal.NewFromFloat(g.faker.Float64Range(r[0], r[1])).Round(2)
}

// GenerateTransaction generates one input dated within the range
func (g *transactionGenerator) GenerateTransaction(startDate, endDate time.Time) models.TransactionInput {
	txType := g.GenerateType()

	var category string
	if txType == models.TransactionTypeIncome {
		category = g.faker.RandomString([]string{models.CategoryFreelance, models.CategoryInvestment, models.CategoryGift})
	} else {
		category = g.faker.RandomString(models.ExpenseCategories())
	}

	return models.TransactionInput{
		Type:        txType,
		Amount:      g.GenerateAmount(category),
		Category:    category,
		Date:        g.faker.DateRange(startDate, endDate).Format(models.DateLayout),
		Description: g.describe(category),
	}
}

// GenerateSalaryInputs generates one salary on the first of every month in the range
func (g *transactionGenerator) GenerateSalaryInputs(startDate, endDate time.Time) []models.TransactionInput {
	salary := g.GenerateAmount(models.CategorySalary).Round(-3)
	employer := g.faker.Company()

	inputs := make([]models.TransactionInput, 0)
	current := time.Date(startDate.Year(), startDate.Month(), salaryDay, 0, 0, 0, 0, time.UTC)
	if current.Before(startDate) {
		current = current.AddDate(0, 1, 0)
	}

	for !current.After(endDate) {
		inputs = append(inputs, models.TransactionInput{
			Type:        models.TransactionTypeIncome,
			Amount:      salary,
			Category:    models.CategorySalary,
			Date:        current.Format(models.DateLayout),
			Description: truncate("Salary - " + employer),
		})
		current = current.AddDate(0, 1, 0)
	}

	return inputs
}

// GenerateHistory returns monthly salaries plus count random transactions,
// oldest first so that adding them in order leaves the newest at the front.
func (g *transactionGenerator) GenerateHistory(startDate, endDate time.Time, count int) []models.TransactionInput {
	inputs := g.GenerateSalaryInputs(startDate, endDate)
	for i := 0; i < count; i++ {
		inputs = append(inputs, g.GenerateTransaction(startDate, endDate))
	}

	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Date < inputs[j].Date
	})

	return inputs
}

func (g *transactionGenerator) describe(category string) string {
	var description string
	switch category {
	case models.CategoryFood:
		description = "Lunch at " + g.faker.Company()
	case models.CategoryTransport:
		description = g.faker.RandomString([]string{"Metro card recharge", "Cab ride", "Fuel", "Bus pass"})
	case models.CategoryShopping:
		description = "Order from " + g.faker.Company()
	case models.CategoryEntertainment:
		description = g.faker.RandomString([]string{"Movie tickets", "Concert", "Streaming subscription", "Bowling"})
	case models.CategoryBills:
		description = g.faker.RandomString([]string{"Electricity bill", "Mobile recharge", "Internet bill", "Water bill"})
	case models.CategoryRent:
		description = "Monthly rent"
	case models.CategoryFreelance:
		description = "Invoice for " + g.faker.Company()
	case models.CategoryInvestment:
		description = "Dividend from " + g.faker.Company()
	case models.CategoryGift:
		description = "Gift from " + g.faker.FirstName()
	default:
		description = g.faker.Company()
	}
	return truncate(description)
}

func truncate(description string) string {
	runes := []rune(description)
	if len(runes) > models.MaxDescriptionLength {
		return string(runes[:models.MaxDescriptionLength])
	}
	return description
}
