package dice

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Roller wraps a Source and logger to provide logged hand rolling.
// Every roll is logged at debug level with a roll ID and the dice.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice: NewLoggedRoller precondition violated: src must be non-nil")
	}
	if logger == nil {
		panic("dice: NewLoggedRoller precondition violated: logger must be non-nil")
	}
	return &Roller{src: src, logger: logger}
}

// Roll rolls a new hand and logs it.
//
// Postcondition: Returns a valid Hand and the ID it was logged under.
func (r *Roller) Roll() (Hand, string) {
	h := RollHand(r.src)
	id := uuid.NewString()
	r.logger.Debug("dice roll",
		zap.String("roll_id", id),
		zap.Ints("dice", h[:]),
	)
	return h, id
}
