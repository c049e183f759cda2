package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtym/campaign/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
		}

		for _, email := range validEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			assert.NoError(t, err, "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"spaces @domain.com",
			"email..double.dot@domain.com",
			"email@domain..com",
			"Asha <asha@example.com>",
		}

		for _, email := range invalidEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			require.Error(t, err, "Email should be invalid: %s", email)
			assert.Equal(t, "validation.email", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})
}

func TestValidStrictPhone(t *testing.T) {
	t.Parallel()

	valid := []string{
		"+919876543210",
		"+14155552671",
		"+91 98765 43210",
		"+44-20-7946-0958",
	}
	for _, phone := range valid {
		assert.NoError(t, validator.Apply(validator.ValidStrictPhone("phone", phone)), phone)
	}

	invalid := []string{
		"",
		"123",
		"+91",
		"919876543210",
		"+0919876543210",
		"+91987654321012345",
		"+91abc9876543",
	}
	for _, phone := range invalid {
		err := validator.Apply(validator.ValidStrictPhone("phone", phone))
		require.Error(t, err, phone)
		assert.Equal(t, "validation.phone_strict", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func TestMaxLenString(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MaxLenString("name", "Ашa", 3)))
	assert.Error(t, validator.Apply(validator.MaxLenString("name", "Asha", 3)))
}
