package flagx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	clientFlags := []string{"-a", "-u", "-d", "-l"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps client flags, drops config flag",
			args:    []string{"-c", "admin.json", "-a", "http://shop:5000", "-l", "debug"},
			allowed: clientFlags,
			want:    []string{"-a", "http://shop:5000", "-l", "debug"},
		},
		{
			name:    "equals form",
			args:    []string{"-d=/tmp/session.db", "-x=1"},
			allowed: clientFlags,
			want:    []string{"-d=/tmp/session.db"},
		},
		{
			name:    "equals value may start with a dash",
			args:    []string{"-u=-odd"},
			allowed: clientFlags,
			want:    []string{"-u=-odd"},
		},
		{
			name:    "dangling flag at end",
			args:    []string{"-a"},
			allowed: clientFlags,
			want:    []string{"-a"},
		},
		{
			name:    "next flag is not taken as a value",
			args:    []string{"-a", "-l", "warn"},
			allowed: clientFlags,
			want:    []string{"-a", "-l", "warn"},
		},
		{
			name:    "positional words are dropped",
			args:    []string{"products", "-q", "desk"},
			allowed: clientFlags,
			want:    []string{},
		},
		{
			name:    "repeats kept in order",
			args:    []string{"-l", "info", "-l", "error"},
			allowed: clientFlags,
			want:    []string{"-l", "info", "-l", "error"},
		},
		{
			name:    "nil args",
			args:    nil,
			allowed: clientFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("short -c with value", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config with equals", func(t *testing.T) {
		assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config=/path/long.json"}))
	})

	t.Run("other flags are ignored", func(t *testing.T) {
		assert.Empty(t, ConfigPath([]string{"-a", "http://api:5000", "-d", "s.db"}))
	})

	t.Run("mixed with client flags", func(t *testing.T) {
		got := ConfigPath([]string{"-a", "http://api:5000", "-c", "cfg.json", "-l", "debug"})
		assert.Equal(t, "cfg.json", got)
	})

	t.Run("last one wins", func(t *testing.T) {
		got := ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"})
		assert.Equal(t, "/path/2.json", got)
	})
}
