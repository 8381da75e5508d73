package generator

import "retail-dashboard/internal/models"

// Fixed pools the generators draw from. Every pool is non-empty by
// construction; pickOne panics if that is ever violated.

var regions = []string{"Northeast", "Southeast", "Midwest", "Southwest", "West"}

var citiesByRegion = map[string][]string{
	"Northeast": {"New York", "Boston", "Philadelphia", "Pittsburgh", "Newark"},
	"Southeast": {"Atlanta", "Miami", "Charlotte", "Nashville", "Orlando"},
	"Midwest":   {"Chicago", "Detroit", "Minneapolis", "Columbus", "Kansas City"},
	"Southwest": {"Dallas", "Houston", "Phoenix", "San Antonio", "Albuquerque"},
	"West":      {"Los Angeles", "San Francisco", "Seattle", "Portland", "Denver"},
}

// Approximate region centers; actual store coordinates are jittered
// around these by up to 1.5 degrees per axis.
var regionCenters = map[string]models.Coordinates{
	"Northeast": {Lat: 41.2033, Lng: -74.0060},
	"Southeast": {Lat: 32.1656, Lng: -82.9001},
	"Midwest":   {Lat: 41.8781, Lng: -89.3985},
	"Southwest": {Lat: 31.9686, Lng: -102.0779},
	"West":      {Lat: 38.8026, Lng: -119.4179},
}

var storeTypes = []string{"Flagship", "Standard", "Express", "Outlet"}

var categories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sporting Goods",
	"Health & Beauty",
	"Toys & Games",
}

var departments = []string{
	"Electronics",
	"Apparel",
	"Home Goods",
	"Grocery",
	"Customer Service",
	"Online Pickup",
}

var productsByCategory = map[string][]string{
	"Electronics":     {"4K Smart TV", "Wireless Earbuds", "Bluetooth Speaker", "Laptop Stand", "Smart Watch", "Gaming Mouse"},
	"Clothing":        {"Denim Jacket", "Running Shoes", "Cotton T-Shirt", "Wool Sweater", "Rain Jacket", "Baseball Cap"},
	"Home & Garden":   {"Ceramic Planter", "LED Desk Lamp", "Throw Blanket", "Garden Hose", "Scented Candle", "Cast Iron Skillet"},
	"Sporting Goods":  {"Yoga Mat", "Dumbbell Set", "Tennis Racket", "Camping Tent", "Water Bottle", "Resistance Bands"},
	"Health & Beauty": {"Vitamin C Serum", "Electric Toothbrush", "Hair Dryer", "Face Moisturizer", "Sunscreen SPF 50", "Bath Bombs"},
	"Toys & Games":    {"Building Blocks", "Board Game", "RC Car", "Puzzle 1000pc", "Plush Bear", "Trading Cards"},
}

var staffPositions = []string{
	"Sales Associate",
	"Senior Associate",
	"Department Lead",
	"Shift Supervisor",
	"Assistant Manager",
	"Cashier",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Susan", "Carlos", "Maria",
	"Wei", "Priya", "Ahmed", "Fatima", "Kenji", "Aisha",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Chen", "Patel", "Kim", "Nguyen",
	"Okafor", "Tanaka", "Ali", "Singh", "Lopez", "Wilson",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "Washington Blvd", "Park Ave",
	"Cedar Ln", "Lake St", "Hill Rd", "River Rd", "Market St",
}

var timeRanges = []models.TimeRange{
	{Value: "today", Label: "Today"},
	{Value: "last7days", Label: "Last 7 Days"},
	{Value: "last30days", Label: "Last 30 Days"},
	{Value: "last90days", Label: "Last 90 Days"},
	{Value: "ytd", Label: "Year to Date"},
	{Value: "custom", Label: "Custom Range"},
}

// Filters returns the static filter-option lists. Slices are copied so
// callers cannot mutate the pools.
func Filters() models.FilterOptions {
	return models.FilterOptions{
		Regions:     append([]string(nil), regions...),
		StoreTypes:  append([]string(nil), storeTypes...),
		Categories:  append([]string(nil), categories...),
		Departments: append([]string(nil), departments...),
		TimeRanges:  append([]models.TimeRange(nil), timeRanges...),
	}
}
