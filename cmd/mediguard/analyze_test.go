package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVitalFlags(t *testing.T) {
	v := vitalFlags{}
	assert.NoError(t, v.Set("BMI=31"))
	assert.NoError(t, v.Set(" Blood Pressure (mmHg) = 150/90 "))
	assert.Error(t, v.Set("BMI"))
	assert.Error(t, v.Set("=4"))

	assert.Equal(t, "31", v["BMI"])
	assert.Equal(t, "150/90", v["Blood Pressure (mmHg)"])
}
