package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFunction(t *testing.T) {
	assert.False(t, Data.IsFunction())
	for _, tag := range []ModuleTag{Finder, Separator, Alignment, Timing, Format, VersionInfo, DarkModule, QuietZone, Logo} {
		assert.True(t, tag.IsFunction())
	}
}

func TestStringNamesEveryTag(t *testing.T) {
	assert.Equal(t, "DATA", Data.String())
	assert.Equal(t, "LOGO", Logo.String())
	assert.Equal(t, "UNKNOWN", ModuleTag(999).String())
}
