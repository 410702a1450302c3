package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"JSONFileName", config.JSONFileName},
		{"SQLiteFileName", config.SQLiteFileName},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 7, config.DefaultHorizonDays, "A week is the default birthday horizon")
	assert.Equal(t, 10, config.PhoneLength)
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.Contains(t, []string{config.StoreJSON, config.StoreSQLite}, config.DefaultStore)
}

// TestDateFormats ensures the two textual date contracts stay distinct and exact.
func TestDateFormats(t *testing.T) {
	d := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "05.01.2024", d.Format(config.DateFormatBirthday))
	assert.Equal(t, "2024.01.05", d.Format(config.DateFormatCongrats))

	parsed, err := time.Parse(config.DateFormatInput, "5.1.2024")
	assert.NoError(t, err)
	assert.Equal(t, d, parsed, "Input layout must accept single digit day and month")

	assert.Equal(t, "05.01", d.Format(config.DateFormatBirthdayNoYear))
	_, err = time.Parse(config.DateFormatInputNoYear, "5.1")
	assert.NoError(t, err)
}
