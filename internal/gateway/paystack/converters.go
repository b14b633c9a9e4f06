package paystack

import (
	"fulfillment/internal/entities"
)

func toMetadataBody(m entities.PaymentMetadata) metadataBody {
	body := metadataBody{
		UserID: m.UserID,
		Lines:  make([]metadataCartLine, 0, len(m.Lines)),
	}

	if m.CustomerLocation != nil {
		body.CustomerLat = &m.CustomerLocation.Latitude
		body.CustomerLng = &m.CustomerLocation.Longitude
	}

	for _, line := range m.Lines {
		wireLine := metadataCartLine{
			SellerID:     line.SellerID,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			FreeDelivery: line.FreeDelivery,
		}
		if line.VendorLocation != nil {
			wireLine.VendorLat = &line.VendorLocation.Latitude
			wireLine.VendorLng = &line.VendorLocation.Longitude
		}
		body.Lines = append(body.Lines, wireLine)
	}

	if m.Quote != nil {
		body.HasQuoteData = true
		body.TotalFee = m.Quote.TotalFee
		body.FeeCurrency = m.Quote.Currency
		body.SellerFees = make(map[string]float64, len(m.Quote.BySeller))
		body.Distances = make(map[string]float64)
		for sellerID, breakdown := range m.Quote.BySeller {
			body.SellerFees[sellerID] = breakdown.Fee
			if breakdown.Free {
				body.FreeSellers = append(body.FreeSellers, sellerID)
			}
			if breakdown.DistanceKm != nil {
				body.Distances[sellerID] = *breakdown.DistanceKm
			}
		}
	}

	return body
}

func toDomainMetadata(body metadataBody) entities.PaymentMetadata {
	m := entities.PaymentMetadata{
		UserID: body.UserID,
		Lines:  make([]entities.CartLine, 0, len(body.Lines)),
	}

	if body.CustomerLat != nil && body.CustomerLng != nil {
		if c, err := entities.NewCoordinate(*body.CustomerLat, *body.CustomerLng); err == nil {
			m.CustomerLocation = &c
		}
	}

	freeSellers := make(map[string]struct{}, len(body.FreeSellers))
	for _, sellerID := range body.FreeSellers {
		freeSellers[sellerID] = struct{}{}
	}

	for _, wireLine := range body.Lines {
		line := entities.CartLine{
			SellerID:     wireLine.SellerID,
			Quantity:     wireLine.Quantity,
			UnitPrice:    wireLine.UnitPrice,
			FreeDelivery: wireLine.FreeDelivery,
		}
		if wireLine.VendorLat != nil && wireLine.VendorLng != nil {
			if c, err := entities.NewCoordinate(*wireLine.VendorLat, *wireLine.VendorLng); err == nil {
				line.VendorLocation = &c
			}
		}
		m.Lines = append(m.Lines, line)
	}

	if body.HasQuoteData {
		quote := &entities.OrderFeeQuote{
			TotalFee: body.TotalFee,
			Currency: body.FeeCurrency,
			BySeller: make(map[string]entities.SellerFeeBreakdown, len(body.SellerFees)),
		}
		for sellerID, sellerFee := range body.SellerFees {
			breakdown := entities.SellerFeeBreakdown{Fee: sellerFee}
			if _, ok := freeSellers[sellerID]; ok {
				breakdown.Free = true
			}
			if distance, ok := body.Distances[sellerID]; ok {
				d := distance
				breakdown.DistanceKm = &d
			}
			quote.BySeller[sellerID] = breakdown
		}
		m.Quote = quote
	}

	return m
}
