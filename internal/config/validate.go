package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateFlappy, FlappyConfig{})
	v.RegisterStructValidation(validateGuests, Config{})
	return v
}

// validateFlappy checks constraints that span fields: the gap must fit
// between the margins above the ground, and the bird must fit on screen.
func validateFlappy(sl validator.StructLevel) {
	f := sl.Current().Interface().(FlappyConfig)

	groundTop := f.Screen.Height - f.Screen.GroundHeight
	room := groundTop - f.Obstacles.GapSize - f.Obstacles.TopMargin - f.Obstacles.BottomMargin
	if room < 0 {
		sl.ReportError(f.Obstacles.GapSize, "GapSize", "gap_size", "gapfits", "")
	}
	if f.Player.X+f.Player.Size > f.Screen.Width || f.Player.Size > groundTop {
		sl.ReportError(f.Player.Size, "Size", "size", "playerfits", "")
	}
}

// validateGuests rejects duplicate guest ids.
func validateGuests(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	seen := make(map[string]bool, len(cfg.Guests))
	for _, g := range cfg.Guests {
		if seen[g.ID] {
			sl.ReportError(g.ID, "Guests", "guests", "unique", g.ID)
		}
		seen[g.ID] = true
	}
}

// Validate checks cfg against its field tags and cross-field rules.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
