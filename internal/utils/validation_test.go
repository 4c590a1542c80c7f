package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, ValidateEmail("student@school.edu"))
	assert.NotEmpty(t, ValidateEmail(""))
	assert.NotEmpty(t, ValidateEmail("not-an-email"))
	assert.NotEmpty(t, ValidateEmail("missing@tld"))
	// Over the RFC 5321 length limit
	assert.NotEmpty(t, ValidateEmail(strings.Repeat("a", 250)+"@b.com"))
}

func TestValidateName(t *testing.T) {
	assert.Empty(t, ValidateName("Mary-Jane O'Brien"))
	assert.NotEmpty(t, ValidateName(""))
	assert.NotEmpty(t, ValidateName("A"))
	assert.NotEmpty(t, ValidateName(strings.Repeat("a", 41)))
	assert.NotEmpty(t, ValidateName("Robert2"))
}

func TestValidateSchool(t *testing.T) {
	assert.Empty(t, ValidateSchool("St. Mary's High 3"))
	assert.NotEmpty(t, ValidateSchool(""))
	assert.NotEmpty(t, ValidateSchool("X"))
	assert.NotEmpty(t, ValidateSchool("Bad<School>"))
}

func TestValidateGradYear(t *testing.T) {
	year := time.Now().Year()
	assert.Empty(t, ValidateGradYear(year))
	assert.Empty(t, ValidateGradYear(year+5))
	assert.NotEmpty(t, ValidateGradYear(year-11))
	assert.NotEmpty(t, ValidateGradYear(year+11))
}

func TestValidateMonthlyGoal(t *testing.T) {
	assert.Empty(t, ValidateMonthlyGoal(0))
	assert.Empty(t, ValidateMonthlyGoal(100))
	assert.NotEmpty(t, ValidateMonthlyGoal(-1))
	assert.NotEmpty(t, ValidateMonthlyGoal(5001))
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, ValidatePassword("Str0ng&Secret!"))
	assert.NotEmpty(t, ValidatePassword(""))
	assert.NotEmpty(t, ValidatePassword("Short1!"))                      // Too short
	assert.NotEmpty(t, ValidatePassword("alllowercase1!"))               // No uppercase
	assert.NotEmpty(t, ValidatePassword("ALLUPPERCASE1!"))               // No lowercase
	assert.NotEmpty(t, ValidatePassword("NoDigitsHere!"))                // No digit
	assert.NotEmpty(t, ValidatePassword("NoSymbolsHere1"))               // No symbol
	assert.NotEmpty(t, ValidatePassword(strings.Repeat("Aa1!", 20)))     // Too long
}

func TestGeneratePublicID(t *testing.T) {
	id := GeneratePublicID()
	assert.Len(t, id, 10)
	for _, r := range id {
		assert.Contains(t, publicIDAlphabet, string(r))
	}
}
