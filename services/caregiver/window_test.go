package caregiver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowDefaults(t *testing.T) {
	start, end, err := parseWindow("", "")
	require.NoError(t, err)
	assert.Equal(t, 8*60, start)
	assert.Equal(t, 18*60, end)
}

func TestParseWindowExplicit(t *testing.T) {
	start, end, err := parseWindow("07:30", "16:00")
	require.NoError(t, err)
	assert.Equal(t, 450, start)
	assert.Equal(t, 960, end)
}

func TestParseWindowRejectsInverted(t *testing.T) {
	_, _, err := parseWindow("18:00", "08:00")
	assert.Error(t, err)
}

func TestParseWindowRejectsMalformed(t *testing.T) {
	_, _, err := parseWindow("8am", "18:00")
	assert.Error(t, err)
}
