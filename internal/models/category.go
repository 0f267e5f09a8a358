package models

// Income source labels accepted for income transactions.
var IncomeCategories = []string{
	"salary",
	"extraHours",
	"extraIncome",
	"commissions",
	"13salary",
	"vacation",
	"taxRefund",
	"rentReceived",
	"dividends",
	"investmentReturns",
	"savingsInterest",
	"cashback",
	"productSales",
	"freelance",
	"pension",
	"governmentBenefits",
	"prizes",
	"reimbursement",
	"assetSales",
	"other",
}

// Expense category labels accepted for expense transactions.
var ExpenseCategories = []string{
	// housing
	"rent", "mortgage", "condominium", "propertyTax", "electricity", "water",
	"gas", "internet", "landline", "tv", "homeInsurance", "homeMaintenance",
	"furniturePurchase", "homeRenovations",
	// food
	"supermarket", "butcher", "bakery", "market", "delivery", "restaurants",
	"snackBars", "coffeeShop", "iceCream", "fastFood", "bottledWater", "sweets",
	// transport
	"fuel", "vehicleMaintenance", "parking", "toll", "carInsurance",
	"vehicleTax", "publicTransport", "taxi", "mobilityApps", "mechanic",
	"carWash", "trafficFines", "technicalWash",
	// family
	"school", "schoolSupplies", "schoolTransport", "extraCourses", "daycare",
	"allowance", "familyGifts", "extracurricular", "childRecreation",
	// bills and services
	"creditCard", "loans", "installments", "checks", "fines", "insurance",
	"subscriptions", "consulting", "monthlyPayments",
	// health
	"healthPlan", "pharmacy", "medicalAppointments", "exams", "dentist", "gym",
	"therapy", "optics", "psychologist", "supplements", "physiotherapy",
	// clothing and style
	"clothing", "shoes", "accessories", "beautySalon", "cosmetics", "jewelry",
	"nails", "makeup",
	// leisure
	"cinema", "shows", "parties", "trips", "hotels", "familyTrips", "parks",
	"games", "sportsEvents", "books", "streaming",
	// pets
	"petFood", "petShop", "veterinary", "petToys", "grooming", "petMedicine",
	// shopping
	"appliances", "electronics", "furniture", "decoration", "stationery",
	"gifts", "flowers", "marketplace",
	// taxes and obligations
	"inss", "incomeTax", "governmentFees", "unionFees", "licensingFees",
	"documents",
	// misc
	"tips", "donations", "deliveryServices", "subscriptionsPrint",
	"equipmentMaintenance", "legalExpenses", "clubFees", "onlineCourses",
	"other",
}

var (
	incomeCategorySet  = buildCategorySet(IncomeCategories)
	expenseCategorySet = buildCategorySet(ExpenseCategories)
)

func buildCategorySet(categories []string) map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

// CategoriesForType returns the catalog matching the transaction type,
// or nil for an unknown type.
func CategoriesForType(transactionType string) []string {
	switch transactionType {
	case TransactionTypeIncome:
		return IncomeCategories
	case TransactionTypeExpense:
		return ExpenseCategories
	default:
		return nil
	}
}

// IsValidCategory checks if a category belongs to the catalog of the given type
func IsValidCategory(transactionType, category string) bool {
	switch transactionType {
	case TransactionTypeIncome:
		_, ok := incomeCategorySet[category]
		return ok
	case TransactionTypeExpense:
		_, ok := expenseCategorySet[category]
		return ok
	default:
		return false
	}
}

// IsKnownCategory checks membership in either catalog, for contexts where
// the transaction type is not yet known (e.g. request validation tags).
func IsKnownCategory(category string) bool {
	if _, ok := incomeCategorySet[category]; ok {
		return true
	}
	_, ok := expenseCategorySet[category]
	return ok
}
