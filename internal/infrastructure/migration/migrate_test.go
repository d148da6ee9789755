package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "version 0", Status{}.String())
	assert.Equal(t, "version 7", Status{Version: 7}.String())
	assert.Equal(t, "version 7 (dirty)", Status{Version: 7, Dirty: true}.String())
}
