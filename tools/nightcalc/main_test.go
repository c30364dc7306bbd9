package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Hour(t *testing.T) {
	out, err := run("hour", []string{"100"})
	require.NoError(t, err)
	assert.Contains(t, out, "5 AM")

	out, err = run("hour", []string{"60", "60"})
	require.NoError(t, err)
	assert.Contains(t, out, "6 AM")
	assert.Contains(t, out, "survived")
}

func TestRun_Power(t *testing.T) {
	out, err := run("power", []string{"100", "left_door", "RIGHT_DOOR"})
	require.NoError(t, err)
	// 0.1 + 0.4 + 0.4 = 0.9/s -> 100 - 90 = 10
	assert.Contains(t, out, "drain 0.90/s")
	assert.Contains(t, out, "power left 10.00")

	// Повтор не выключает дверь обратно
	out, err = run("power", []string{"10", "LEFT_DOOR", "left_door"})
	require.NoError(t, err)
	assert.Contains(t, out, "drain 0.50/s")

	_, err = run("power", []string{"10", "WINDOW"})
	assert.Error(t, err)
}

func TestRun_Label(t *testing.T) {
	out, err := run("label", []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, "12 AM", out)

	out, err = run("label", []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, "6 AM", out)
}

func TestRun_BadInput(t *testing.T) {
	_, err := run("hour", nil)
	assert.Error(t, err)
	_, err = run("label", []string{"x"})
	assert.Error(t, err)
}
