package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, Location(DefaultTimezone).String(), Location("Mars/Olympus").String())
	assert.Equal(t, Location(DefaultTimezone).String(), Location("").String())
}

func TestLocation_Valid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.False(t, IsValid(""))
}
