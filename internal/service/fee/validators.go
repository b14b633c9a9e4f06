package fee

import (
	"strings"

	"fulfillment/internal/entities"
)

func isValidSellerID(sellerID string) bool {
	return strings.TrimSpace(sellerID) != ""
}

func hasValidLines(lines []entities.CartLine) bool {
	for _, line := range lines {
		if isValidSellerID(line.SellerID) {
			return true
		}
	}
	return false
}
