package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpec_StripsPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "is7098", NormalizeSpec("IS 7098"))
	assert.Equal(t, "is7098", NormalizeSpec("is-7098"))
	assert.Equal(t, "xlpe", NormalizeSpec("XLPE"))
	assert.Equal(t, "3cx185sqmm", NormalizeSpec("3C x 185 sq.mm"))
}

func TestNormalizeSpec_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeSpec(""))
	assert.Equal(t, "", NormalizeSpec("---"))
}

func TestExtractVoltage_CommonFormats(t *testing.T) {
	assert.Equal(t, 11.0, ExtractVoltage("11kV"))
	assert.Equal(t, 11.0, ExtractVoltage("11 kV"))
	assert.Equal(t, 1.1, ExtractVoltage("1.1kV"))
	assert.Equal(t, 33.0, ExtractVoltage("33kV (E)"))
}

func TestExtractVoltage_NoNumber(t *testing.T) {
	assert.Equal(t, 0.0, ExtractVoltage("HT"))
	assert.Equal(t, 0.0, ExtractVoltage(""))
}

func TestExtractCores_CommonFormats(t *testing.T) {
	assert.Equal(t, 3, ExtractCores("3C x 185 sq.mm"))
	assert.Equal(t, 4, ExtractCores("4C x 95 sq.mm"))
	assert.Equal(t, 1, ExtractCores("1C x 630 sq.mm"))
}

func TestExtractCores_DefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, ExtractCores("185 sq.mm"))
	assert.Equal(t, 1, ExtractCores(""))
}

func TestExtractCrossSection_CommonFormats(t *testing.T) {
	assert.Equal(t, 185.0, ExtractCrossSection("3C x 185 sq.mm"))
	assert.Equal(t, 2.5, ExtractCrossSection("2C x 2.5 sq.mm"))
}

func TestExtractCrossSection_NoMatch(t *testing.T) {
	assert.Equal(t, 0.0, ExtractCrossSection("185 sq.mm"))
	assert.Equal(t, 0.0, ExtractCrossSection(""))
}

func TestExtractStandardCode_FirstNumber(t *testing.T) {
	assert.Equal(t, "7098", ExtractStandardCode("IS 7098 Part 2"))
	assert.Equal(t, "60502", ExtractStandardCode("IEC 60502-2"))
	assert.Equal(t, "", ExtractStandardCode("BIS"))
}

func TestStandardFamily_PrefixMatch(t *testing.T) {
	assert.True(t, StandardFamily("IS 7098 Part 2", "IS"))
	assert.True(t, StandardFamily("IEC 60502-2", "IEC"))
	assert.False(t, StandardFamily("BS 6724", "IEC"))
}
