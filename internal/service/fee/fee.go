package fee

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/geo"
)

// Config holds the pricing constants. Values are injected from configuration,
// never hard coded at call sites.
type Config struct {
	// RatePerKm is the flat per-kilometer delivery rate.
	RatePerKm float64
	// DefaultFee applies when a paid seller has no vendor coordinate.
	DefaultFee float64
	// Currency is the ISO code reported with every quote.
	Currency string
}

type Resolver struct {
	cfg Config
}

func New(cfg Config) *Resolver {
	return &Resolver{
		cfg: cfg,
	}
}

// QuoteSeller resolves the delivery fee for one seller group.
//
// Free delivery always prices at zero; the distance is still reported when the
// vendor coordinate is known. A paid seller without a vendor coordinate falls
// back to the configured default fee with an unknown distance instead of
// failing the whole quote.
func (r *Resolver) QuoteSeller(freeDelivery bool, vendor *entities.Coordinate, customer entities.Coordinate) entities.SellerFeeBreakdown {
	if freeDelivery {
		breakdown := entities.SellerFeeBreakdown{
			Fee:  0,
			Free: true,
		}
		if vendor != nil {
			distance := geo.DistanceKm(*vendor, customer)
			breakdown.DistanceKm = &distance
		}
		return breakdown
	}

	if vendor == nil {
		return entities.SellerFeeBreakdown{
			Fee:  r.cfg.DefaultFee,
			Free: false,
		}
	}

	distance := geo.DistanceKm(*vendor, customer)
	return entities.SellerFeeBreakdown{
		Fee:        geo.Round2(distance * r.cfg.RatePerKm),
		DistanceKm: &distance,
		Free:       false,
	}
}

// QuoteOrder groups cart lines by seller, resolves one fee per distinct seller
// and sums them. The first line seen for a seller supplies that seller's
// vendor coordinate; a seller group is free only when every one of its lines
// carries the free-delivery flag.
func (r *Resolver) QuoteOrder(lines []entities.CartLine, customer *entities.Coordinate) (*entities.OrderFeeQuote, error) {
	if len(lines) == 0 || !hasValidLines(lines) {
		return nil, ErrEmptyCart
	}
	if customer == nil {
		return nil, ErrMissingCustomerLocation
	}

	type sellerGroup struct {
		free   bool
		vendor *entities.Coordinate
	}

	groups := make(map[string]*sellerGroup)
	order := make([]string, 0, len(lines))

	for _, line := range lines {
		if !isValidSellerID(line.SellerID) {
			continue
		}

		group, ok := groups[line.SellerID]
		if !ok {
			groups[line.SellerID] = &sellerGroup{
				free:   line.FreeDelivery,
				vendor: line.VendorLocation,
			}
			order = append(order, line.SellerID)
			continue
		}

		group.free = group.free && line.FreeDelivery
		if group.vendor == nil {
			group.vendor = line.VendorLocation
		}
	}

	quote := &entities.OrderFeeQuote{
		Currency: r.cfg.Currency,
		BySeller: make(map[string]entities.SellerFeeBreakdown, len(groups)),
	}

	var total float64
	for _, sellerID := range order {
		group := groups[sellerID]
		breakdown := r.QuoteSeller(group.free, group.vendor, *customer)
		quote.BySeller[sellerID] = breakdown
		total += breakdown.Fee
	}

	quote.TotalFee = geo.Round2(total)
	return quote, nil
}
