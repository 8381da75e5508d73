package models

// Coordinates is an approximate store location, 4-decimal precision.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Store struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	Type        string      `json:"type"`
	Address     string      `json:"address"`
	OpenDate    string      `json:"openDate"`
	Size        int         `json:"size"`
	Coordinates Coordinates `json:"coordinates"`
	Manager     string      `json:"manager"`
}

type SalesSummary struct {
	TotalSales              float64 `json:"totalSales"`
	ComparisonSales         float64 `json:"comparisonSales"`
	PercentChange           float64 `json:"percentChange"`
	AverageTransactionValue float64 `json:"averageTransactionValue"`
	TransactionCount        int     `json:"transactionCount"`
	ConversionRate          float64 `json:"conversionRate"`
}

type DailySales struct {
	Date         string  `json:"date"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`
	AverageValue float64 `json:"averageValue"`
}

type RegionSales struct {
	Region         string  `json:"region"`
	Sales          float64 `json:"sales"`
	StoreCount     int     `json:"storeCount"`
	PercentOfTotal float64 `json:"percentOfTotal"`
}

type CategorySales struct {
	Category        string  `json:"category"`
	Sales           float64 `json:"sales"`
	ComparisonSales float64 `json:"comparisonSales"`
	PercentChange   float64 `json:"percentChange"`
	PercentOfTotal  float64 `json:"percentOfTotal"`
}

type StoreSales struct {
	StoreID         string  `json:"storeId"`
	StoreName       string  `json:"storeName"`
	Region          string  `json:"region"`
	Sales           float64 `json:"sales"`
	Rank            int     `json:"rank"`
	PercentOfRegion float64 `json:"percentOfRegion"`
	PercentChange   float64 `json:"percentChange"`
}

type SalesData struct {
	Summary    SalesSummary    `json:"summary"`
	ByDate     []DailySales    `json:"byDate"`
	ByRegion   []RegionSales   `json:"byRegion"`
	ByCategory []CategorySales `json:"byCategory"`
	ByStore    []StoreSales    `json:"byStore"`
}

type InventorySummary struct {
	TotalValue        float64 `json:"totalValue"`
	TotalItems        int     `json:"totalItems"`
	TurnoverRate      float64 `json:"turnoverRate"`
	OutOfStockPercent float64 `json:"outOfStockPercent"`
}

type CategoryInventory struct {
	Category     string  `json:"category"`
	Value        float64 `json:"value"`
	Items        int     `json:"items"`
	TurnoverRate float64 `json:"turnoverRate"`
}

type StoreInventory struct {
	StoreID         string  `json:"storeId"`
	StoreName       string  `json:"storeName"`
	Value           float64 `json:"value"`
	Items           int     `json:"items"`
	TurnoverRate    float64 `json:"turnoverRate"`
	OutOfStockItems int     `json:"outOfStockItems"`
}

type InventoryData struct {
	Summary    InventorySummary    `json:"summary"`
	ByCategory []CategoryInventory `json:"byCategory"`
	ByStore    []StoreInventory    `json:"byStore"`
}

type DepartmentSales struct {
	Department     string  `json:"department"`
	Sales          float64 `json:"sales"`
	PercentOfStore float64 `json:"percentOfStore"`
	PercentChange  float64 `json:"percentChange"`
}

type StaffPerformance struct {
	Name                  string  `json:"name"`
	Position              string  `json:"position"`
	Sales                 float64 `json:"sales"`
	Transactions          int     `json:"transactions"`
	AveragePerTransaction float64 `json:"averagePerTransaction"`
}

type TopSellingItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

type InventoryDetail struct {
	TotalValue      float64          `json:"totalValue"`
	TurnoverRate    float64          `json:"turnoverRate"`
	TopSellingItems []TopSellingItem `json:"topSellingItems"`
}

// QuarterlyPerformance is one year/quarter slice of a store's history.
type QuarterlyPerformance struct {
	Year         int     `json:"year"`
	Quarter      int     `json:"quarter"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`
	AverageValue float64 `json:"averageValue"`
}

// StoreDetail is a store's record augmented with staffing, department,
// inventory, and historical figures.
type StoreDetail struct {
	Store
	StaffCount            int                    `json:"staffCount"`
	SalesByDepartment     []DepartmentSales      `json:"salesByDepartment"`
	StaffPerformance      []StaffPerformance     `json:"staffPerformance"`
	Inventory             InventoryDetail        `json:"inventory"`
	HistoricalPerformance []QuarterlyPerformance `json:"historicalPerformance"`
}

type TimeRange struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions is static configuration data for the dashboard's filter
// controls; it is not derived from the generated dataset.
type FilterOptions struct {
	Regions     []string    `json:"regions"`
	StoreTypes  []string    `json:"storeTypes"`
	Categories  []string    `json:"categories"`
	Departments []string    `json:"departments"`
	TimeRanges  []TimeRange `json:"timeRanges"`
}
