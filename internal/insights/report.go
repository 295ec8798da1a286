package insights

import (
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rammo-backend/internal/models"
)

// Window is the relative time range an analytics report covers.
type Window string

const (
	WindowWeek    Window = "week"
	WindowMonth   Window = "month"
	WindowQuarter Window = "quarter"
	WindowYear    Window = "year"
	WindowAll     Window = "all"
)

// ParseWindow maps a query value onto a window; empty defaults to all.
func ParseWindow(value string) (Window, bool) {
	switch Window(value) {
	case WindowWeek, WindowMonth, WindowQuarter, WindowYear, WindowAll:
		return Window(value), true
	case "":
		return WindowAll, true
	}
	return "", false
}

// RevenueBucket is one point on the revenue chart.
type RevenueBucket struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`

	at time.Time
}

// ProductRevenue ranks one product inside a report.
type ProductRevenue struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Units     int    `json:"units"`
	Revenue   int64  `json:"revenue"`
}

// Report is the windowed analytics payload for the admin dashboard.
type Report struct {
	Window        Window                `json:"window"`
	OrderCount    int                   `json:"orderCount"`
	TotalRevenue  int64                 `json:"totalRevenue"`
	AverageOrder  float64               `json:"averageOrder"`
	GrowthPercent float64               `json:"growthPercent"`
	Revenue       []RevenueBucket       `json:"revenue"`
	TopProducts   []ProductRevenue      `json:"topProducts"`
	StatusCounts  map[models.Status]int `json:"statusCounts"`
}

// BuildReport filters orders to the window ending at now and computes the
// revenue buckets, top products, status distribution and growth figure.
func BuildReport(orders []models.Order, window Window, now time.Time) Report {
	filtered := filterByWindow(orders, window, now)

	report := Report{
		Window:       window,
		OrderCount:   len(filtered),
		Revenue:      revenueBuckets(filtered, window),
		TopProducts:  topProducts(filtered, 5),
		StatusCounts: statusCounts(filtered),
	}

	for _, order := range filtered {
		report.TotalRevenue += OrderTotal(order.Items)
	}
	if len(filtered) > 0 {
		report.AverageOrder = float64(report.TotalRevenue) / float64(len(filtered))
	}
	report.GrowthPercent = growth(filtered)

	return report
}

func filterByWindow(orders []models.Order, window Window, now time.Time) []models.Order {
	if window == WindowAll {
		return orders
	}

	var cutoff time.Time
	switch window {
	case WindowWeek:
		cutoff = now.AddDate(0, 0, -7)
	case WindowMonth:
		cutoff = now.AddDate(0, -1, 0)
	case WindowQuarter:
		cutoff = now.AddDate(0, -3, 0)
	case WindowYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return orders
	}

	out := []models.Order{}
	for _, order := range orders {
		if !order.CreatedAt.Before(cutoff) && !order.CreatedAt.After(now) {
			out = append(out, order)
		}
	}
	return out
}

// bucketLabel picks the chart granularity for a window: days for short
// ranges, ISO weeks for a quarter, months beyond that.
func bucketLabel(window Window, t time.Time) string {
	switch window {
	case WindowWeek, WindowMonth:
		return fmt.Sprintf("%d %s", t.Day(), t.Format("Jan"))
	case WindowQuarter:
		_, week := t.ISOWeek()
		return fmt.Sprintf("Week %d", week)
	case WindowYear:
		return t.Format("Jan")
	default:
		return t.Format("Jan 2006")
	}
}

func revenueBuckets(orders []models.Order, window Window) []RevenueBucket {
	index := map[string]int{}
	buckets := []RevenueBucket{}

	for _, order := range orders {
		label := bucketLabel(window, order.CreatedAt)
		total := OrderTotal(order.Items)

		if i, ok := index[label]; ok {
			buckets[i].Amount += total
			if order.CreatedAt.Before(buckets[i].at) {
				buckets[i].at = order.CreatedAt
			}
			continue
		}

		index[label] = len(buckets)
		buckets = append(buckets, RevenueBucket{
			Label:  label,
			Amount: total,
			at:     order.CreatedAt,
		})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].at.Before(buckets[j].at)
	})
	return buckets
}

// topProducts ranks products by revenue within the filtered orders. Ties
// keep the order in which a product first appears in the input.
func topProducts(orders []models.Order, limit int) []ProductRevenue {
	index := map[primitive.ObjectID]int{}
	ranked := []ProductRevenue{}

	for _, order := range orders {
		for _, item := range order.Items {
			revenue := item.Price * int64(item.Quantity)

			if i, ok := index[item.ProductID]; ok {
				ranked[i].Units += item.Quantity
				ranked[i].Revenue += revenue
				continue
			}

			index[item.ProductID] = len(ranked)
			ranked = append(ranked, ProductRevenue{
				ProductID: item.ProductID.Hex(),
				Name:      item.Name,
				Units:     item.Quantity,
				Revenue:   revenue,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// statusCounts tallies orders per status. Statuses with no orders are
// simply absent, not zero-filled.
func statusCounts(orders []models.Order) map[models.Status]int {
	counts := map[models.Status]int{}
	for _, order := range orders {
		counts[order.Status]++
	}
	return counts
}

// growth compares the revenue of the newer half of the window against the
// older half, as a percentage. Orders are time-sorted and split by index;
// the older half takes the extra order when the count is odd. A zero
// baseline yields zero rather than a division by zero.
func growth(orders []models.Order) float64 {
	if len(orders) == 0 {
		return 0
	}

	sorted := append([]models.Order{}, orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	mid := (len(sorted) + 1) / 2

	var firstHalf, secondHalf int64
	for _, order := range sorted[:mid] {
		firstHalf += OrderTotal(order.Items)
	}
	for _, order := range sorted[mid:] {
		secondHalf += OrderTotal(order.Items)
	}

	if firstHalf == 0 {
		return 0
	}
	return float64(secondHalf-firstHalf) / float64(firstHalf) * 100
}
