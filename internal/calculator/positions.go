package calculator

import (
	"github.com/mmynk/trackmeet/internal/models"
)

// SetFinalPosition records or clears an entrant's final placing. Position
// zero clears the row; any other value must lie in 1..LanesPerHeat.
// Overwriting a recorded position is allowed.
func SetFinalPosition(ledger models.FinalPositions, key models.FinalKey, position int) error {
	if position == 0 {
		delete(ledger, key)
		return nil
	}
	if err := ValidatePosition(position); err != nil {
		return err
	}
	ledger[key] = position
	return nil
}
