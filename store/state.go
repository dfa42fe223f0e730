package store

import "go-storefront/models"

// Pure state transitions. Store methods apply one of these under the lock
// and then flush the result; keeping them free of side effects lets them be
// tested without any storage behind them.

// mergeLine folds a line into the cart keyed by (ProductID, SelectedSize):
// an existing line has its quantity incremented, otherwise the line is
// appended with the requested quantity. Quantities below 1 count as 1.
func mergeLine(lines []models.CartLine, line models.CartLine, qty int) []models.CartLine {
	if qty < 1 {
		qty = 1
	}
	for i := range lines {
		if lines[i].ProductID == line.ProductID && lines[i].SelectedSize == line.SelectedSize {
			next := make([]models.CartLine, len(lines))
			copy(next, lines)
			next[i].Quantity += qty
			return next
		}
	}
	line.Quantity = qty
	next := make([]models.CartLine, len(lines), len(lines)+1)
	copy(next, lines)
	return append(next, line)
}

// dropLine removes the line matching the composite (productID, size) key.
// Removing an absent line is a no-op.
func dropLine(lines []models.CartLine, productID, size string) []models.CartLine {
	next := make([]models.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ProductID == productID && l.SelectedSize == size {
			continue
		}
		next = append(next, l)
	}
	return next
}

// addEntry appends a favorite unless one with the same ProductID exists.
func addEntry(favorites []models.FavoriteEntry, entry models.FavoriteEntry) []models.FavoriteEntry {
	for _, f := range favorites {
		if f.ProductID == entry.ProductID {
			return favorites
		}
	}
	next := make([]models.FavoriteEntry, len(favorites), len(favorites)+1)
	copy(next, favorites)
	return append(next, entry)
}

// dropEntry removes any favorite with the given ProductID.
func dropEntry(favorites []models.FavoriteEntry, productID string) []models.FavoriteEntry {
	next := make([]models.FavoriteEntry, 0, len(favorites))
	for _, f := range favorites {
		if f.ProductID == productID {
			continue
		}
		next = append(next, f)
	}
	return next
}
