package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamValue_JSONForms(t *testing.T) {
	num, err := json.Marshal(Number(30000))
	require.NoError(t, err)
	assert.Equal(t, "30000", string(num))

	str, err := json.Marshal(String("2022-11-11"))
	require.NoError(t, err)
	assert.Equal(t, `"2022-11-11"`, string(str))

	var back ParamValue
	require.NoError(t, json.Unmarshal(num, &back))
	assert.Equal(t, Number(30000), back)
	require.NoError(t, json.Unmarshal(str, &back))
	assert.Equal(t, String("2022-11-11"), back)

	assert.Error(t, json.Unmarshal([]byte(`{"v":1}`), &back), "objects are not parameter values")
}

func TestParamValue_RejectsNonFinite(t *testing.T) {
	_, err := json.Marshal(Number(math.NaN()))
	assert.Error(t, err)

	assert.False(t, Number(math.Inf(1)).Valid())
	assert.True(t, Number(0).Valid())
	assert.True(t, String("anything").Valid())
}

func TestParamValue_Float(t *testing.T) {
	f, ok := Number(12.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	f, ok = String("30.44").Float()
	assert.True(t, ok)
	assert.Equal(t, 30.44, f)

	_, ok = String("2022-11-11").Float()
	assert.False(t, ok)
}

func TestParamValue_Text(t *testing.T) {
	assert.Equal(t, "30000", Number(30000).Text())
	assert.Equal(t, "30.44", Number(30.44).Text())
	assert.Equal(t, "hello", String("hello").Text())
}
