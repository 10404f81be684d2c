package linkbudget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rf-toolkit/linkbudget/internal/entity"
	"github.com/rf-toolkit/linkbudget/internal/usecase/linkbudget"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

func validFields() map[string]string {
	return map[string]string{
		"tx_power":        "10",
		"tx_gain":         "5",
		"free_space_loss": "100",
		"misc_loss":       "2",
		"rx_gain":         "3",
		"rx_loss":         "1",
	}
}

func TestParseAndValidate_Bounds(t *testing.T) {
	t.Parallel()

	uc := linkbudget.New(logger.New("error"))

	tests := []struct {
		field string
		min   string
		max   string
		below string
		above string
	}{
		{field: "tx_power", min: "-30", max: "60", below: "-31", above: "61"},
		{field: "tx_gain", min: "-20", max: "50", below: "-21", above: "51"},
		{field: "free_space_loss", min: "0", max: "200", below: "-1", above: "201"},
		{field: "misc_loss", min: "0", max: "50", below: "-1", above: "51"},
		{field: "rx_gain", min: "-20", max: "50", below: "-21", above: "51"},
		{field: "rx_loss", min: "0", max: "50", below: "-1", above: "51"},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			t.Parallel()

			// values at exactly min and max are accepted
			for _, ok := range []string{tc.min, tc.max} {
				fields := validFields()
				fields[tc.field] = ok

				_, err := uc.ParseAndValidate(fields)
				assert.NoError(t, err, "value %s should be accepted", ok)
			}

			// one unit outside either bound is rejected
			for _, bad := range []string{tc.below, tc.above} {
				fields := validFields()
				fields[tc.field] = bad

				_, err := uc.ParseAndValidate(fields)
				require.Error(t, err, "value %s should be rejected", bad)

				var verr linkbudget.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.field, verr.Field)
				assert.Contains(t, verr.Message, "must be between")
			}
		})
	}
}

func TestParseAndValidate_Messages(t *testing.T) {
	t.Parallel()

	uc := linkbudget.New(logger.New("error"))

	tests := []struct {
		name    string
		mutate  func(map[string]string)
		message string
	}{
		{
			name:    "missing field",
			mutate:  func(f map[string]string) { delete(f, "tx_power") },
			message: "Transmit Power is required.",
		},
		{
			name:    "empty value",
			mutate:  func(f map[string]string) { f["rx_gain"] = "" },
			message: "Receiver Antenna Gain is required.",
		},
		{
			name:    "trailing garbage",
			mutate:  func(f map[string]string) { f["tx_power"] = "12.3abc" },
			message: "Transmit Power must be a valid number.",
		},
		{
			name:    "not a number",
			mutate:  func(f map[string]string) { f["misc_loss"] = "abc" },
			message: "Miscellaneous Loss must be a valid number.",
		},
		{
			name:    "out of range",
			mutate:  func(f map[string]string) { f["tx_power"] = "100" },
			message: "Transmit Power must be between -30 and 60.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fields := validFields()
			tc.mutate(fields)

			_, err := uc.ParseAndValidate(fields)
			require.Error(t, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestParseAndValidate_FailFast(t *testing.T) {
	t.Parallel()

	uc := linkbudget.New(logger.New("error"))

	// two invalid fields: only the first (in canonical field order) is reported
	fields := validFields()
	fields["tx_power"] = ""
	fields["rx_loss"] = "abc"

	_, err := uc.ParseAndValidate(fields)
	require.Error(t, err)
	assert.Equal(t, "Transmit Power is required.", err.Error())
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	uc := linkbudget.New(logger.New("error"))

	result := uc.Calculate(&entity.LinkBudgetInput{
		TxPower:       10,
		TxGain:        5,
		FreeSpaceLoss: 100,
		MiscLoss:      2,
		RxGain:        3,
		RxLoss:        1,
	})
	assert.InDelta(t, -85.0, result, 1e-9)
	assert.Equal(t, "-85.00", linkbudget.FormatResult(result))

	result = uc.Calculate(&entity.LinkBudgetInput{
		TxPower:       20,
		TxGain:        10,
		FreeSpaceLoss: 90,
		MiscLoss:      1,
		RxGain:        5,
		RxLoss:        0,
	})
	assert.InDelta(t, -56.0, result, 1e-9)
	assert.Equal(t, "-56.00", linkbudget.FormatResult(result))
}

func TestCalculate_RoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	uc := linkbudget.New(logger.New("error"))

	// 3.125 is exactly representable in binary, so *100 = 312.5 exactly
	result := uc.Calculate(&entity.LinkBudgetInput{TxPower: 3.125})
	assert.Equal(t, "3.13", linkbudget.FormatResult(result))

	result = uc.Calculate(&entity.LinkBudgetInput{TxPower: -3.125})
	assert.Equal(t, "-3.13", linkbudget.FormatResult(result))
}
