package expiry

import (
	"time"

	"shelfsmart/internal/domain"
)

// Config carries the classification thresholds. Defaults match the original
// product behavior: a 7 day "soon" horizon and a low-stock threshold of 2.
type Config struct {
	SoonWindowDays    int
	LowStockThreshold int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{SoonWindowDays: 7, LowStockThreshold: 2}
}

// Summary holds the alert buckets for one inventory snapshot. Buckets are not
// mutually exclusive: an item that is both low on stock and expiring soon
// appears in both, and TotalAlerts counts it twice by design.
type Summary struct {
	ExpiringToday []domain.Product `json:"expiring_today"`
	Expiring1To3  []domain.Product `json:"expiring_1_to_3_days"`
	Expiring4To7  []domain.Product `json:"expiring_4_to_7_days"`
	Expired       []domain.Product `json:"expired"`
	LowStock      []domain.Product `json:"low_stock"`
}

// TotalAlerts sums the sizes of the expiring-today, 1-3 day, 4-7 day and
// low-stock buckets. Expired items are listed but not counted as alerts.
func (s Summary) TotalAlerts() int {
	return len(s.ExpiringToday) + len(s.Expiring1To3) + len(s.Expiring4To7) + len(s.LowStock)
}

// Classify buckets a product snapshot by expiration urgency and stock level.
// It is pure: products are only read, and the same snapshot and reference
// time always produce the same summary.
func Classify(products []domain.Product, ref time.Time, cfg Config) Summary {
	var sum Summary
	for _, p := range products {
		switch {
		case IsExpired(p.ExpirationDate, ref):
			sum.Expired = append(sum.Expired, p)
		case IsExpiringToday(p.ExpirationDate, ref):
			sum.ExpiringToday = append(sum.ExpiringToday, p)
		case IsExpiringIn1To3Days(p.ExpirationDate, ref):
			sum.Expiring1To3 = append(sum.Expiring1To3, p)
		case IsExpiringIn4To7Days(p.ExpirationDate, ref):
			sum.Expiring4To7 = append(sum.Expiring4To7, p)
		}
	}
	sum.LowStock = LowStock(products, cfg.LowStockThreshold)
	return sum
}

// LowStock groups products by their group key (barcode, or name|brand when
// the barcode is empty) and returns one representative per group whose summed
// units are at or below threshold. The representative is the most recently
// purchased entry of the group with its units replaced by the group total.
// Groups come back in first-seen order.
func LowStock(products []domain.Product, threshold int) []domain.Product {
	type group struct {
		total int
		rep   domain.Product
	}

	order := make([]string, 0, len(products))
	groups := make(map[string]*group)

	for _, p := range products {
		key := p.GroupKey()
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{total: p.Units, rep: p}
			order = append(order, key)
			continue
		}
		g.total += p.Units
		if p.PurchaseDate.After(g.rep.PurchaseDate) {
			g.rep = p
		}
	}

	var low []domain.Product
	for _, key := range order {
		g := groups[key]
		if g.total <= threshold {
			rep := g.rep
			rep.Units = g.total
			low = append(low, rep)
		}
	}
	return low
}
