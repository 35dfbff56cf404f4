package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatures(t *testing.T) {
	assert.Equal(t, []string{"Lighting", "Backdrops"}, parseFeatures("Lighting, Backdrops"))
	assert.Equal(t, []string{"Solo"}, parseFeatures("Solo"))
	assert.Empty(t, parseFeatures(""))
	assert.Empty(t, parseFeatures(" , ,"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool("", true))
	assert.False(t, parseBool("", false))
	assert.True(t, parseBool("true", false))
	assert.False(t, parseBool("false", true))
	assert.True(t, parseBool("not-a-bool", true))
}

func TestParseBookingDate(t *testing.T) {
	parsed, err := parseBookingDate("2026-09-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = parseBookingDate("2026-09-12T14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())

	_, err = parseBookingDate("12/09/2026")
	assert.Error(t, err)
}
