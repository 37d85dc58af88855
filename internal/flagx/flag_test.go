package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "http://localhost:5000/api", "-x", "junk"}, []string{"-a"})
	assert.Equal(t, []string{"-a", "http://localhost:5000/api"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "-other=1"}, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "-d", "inkpress.db"}, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", "-d", "inkpress.db"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "v"}, nil)
	assert.Empty(t, got)
}
