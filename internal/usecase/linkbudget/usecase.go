// Package linkbudget validates link budget inputs and computes received power.
package linkbudget

import (
	"math"
	"strconv"

	"github.com/rf-toolkit/linkbudget/internal/entity"
	"github.com/rf-toolkit/linkbudget/pkg/apperrors"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

// Feature -.
type Feature interface {
	ParseAndValidate(fields map[string]string) (*entity.LinkBudgetInput, error)
	Calculate(in *entity.LinkBudgetInput) float64
}

// UseCase -.
type UseCase struct {
	log logger.Interface
}

// New -.
func New(log logger.Interface) *UseCase {
	return &UseCase{
		log: log,
	}
}

var ErrLinkBudgetUseCase = apperrors.CreateAppError("LinkBudgetUseCase")

// ValidationError reports the first field that failed validation. Message is
// the user-facing text rendered on the result page.
type ValidationError struct {
	Console apperrors.AppError
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// FriendlyMessage -.
func (e ValidationError) FriendlyMessage() string {
	return e.Message
}

type fieldSpec struct {
	key   string
	label string
	min   float64
	max   float64
}

// Accepted bounds per term, in dB/dBm. Validation runs in this order and
// stops at the first failure.
var fieldSpecs = []fieldSpec{
	{key: "tx_power", label: "Transmit Power", min: -30, max: 60},
	{key: "tx_gain", label: "Transmit Antenna Gain", min: -20, max: 50},
	{key: "free_space_loss", label: "Free Space Loss", min: 0, max: 200},
	{key: "misc_loss", label: "Miscellaneous Loss", min: 0, max: 50},
	{key: "rx_gain", label: "Receiver Antenna Gain", min: -20, max: 50},
	{key: "rx_loss", label: "Receiver Loss", min: 0, max: 50},
}

// ParseAndValidate checks the six raw field values and converts them. The
// value must parse as a decimal number in its entirety: a numeric prefix with
// trailing characters is rejected, not truncated.
func (uc *UseCase) ParseAndValidate(fields map[string]string) (*entity.LinkBudgetInput, error) {
	vals := make(map[string]float64, len(fieldSpecs))

	for i := range fieldSpecs {
		v, err := validateField(&fieldSpecs[i], fields[fieldSpecs[i].key])
		if err != nil {
			return nil, err
		}

		vals[fieldSpecs[i].key] = v
	}

	return &entity.LinkBudgetInput{
		TxPower:       vals["tx_power"],
		TxGain:        vals["tx_gain"],
		FreeSpaceLoss: vals["free_space_loss"],
		MiscLoss:      vals["misc_loss"],
		RxGain:        vals["rx_gain"],
		RxLoss:        vals["rx_loss"],
	}, nil
}

func validateField(fs *fieldSpec, raw string) (float64, error) {
	if raw == "" {
		return 0, ValidationError{
			Console: ErrLinkBudgetUseCase,
			Field:   fs.key,
			Message: fs.label + " is required.",
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ValidationError{
			Console: ErrLinkBudgetUseCase.Wrap("validateField", "strconv.ParseFloat", err),
			Field:   fs.key,
			Message: fs.label + " must be a valid number.",
		}
	}

	if v < fs.min || v > fs.max {
		return 0, ValidationError{
			Console: ErrLinkBudgetUseCase,
			Field:   fs.key,
			Message: fs.label + " must be between " + formatBound(fs.min) + " and " + formatBound(fs.max) + ".",
		}
	}

	return v, nil
}

// Calculate sums gains and losses and rounds to two decimal places, half away
// from zero (math.Round semantics).
func (uc *UseCase) Calculate(in *entity.LinkBudgetInput) float64 {
	received := in.TxPower + in.TxGain - in.FreeSpaceLoss - in.MiscLoss + in.RxGain - in.RxLoss

	return math.Round(received*100) / 100
}

// FormatResult renders a received power value the way it is stored, logged
// and displayed: fixed two decimal places.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
