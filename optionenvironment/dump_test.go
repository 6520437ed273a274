// File: davipeterlini/mongo/optionenvironment/dump_test.go
package optionenvironment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dumpTestEnvironment(t *testing.T) *Environment {
	t.Helper()
	env := NewEnvironment()
	require.NoError(t, env.Set("net.port", IntValue(27017)))
	require.NoError(t, env.Set("net.bindIp", StringValue("127.0.0.1")))
	require.NoError(t, env.Set("net.ipv6", BoolValue(false)))
	require.NoError(t, env.Set("storage.syncPeriodSecs", DoubleValue(60)))
	require.NoError(t, env.Set("systemLog.verbosity", StringVectorValue([]string{"vv", "v"})))
	require.NoError(t, env.Set("processManagement.pidFilePath", StringValue("/run/mongod.pid")))
	return env
}

// TestToYAML tests nested serialization and typed round-trips
func TestToYAML(t *testing.T) {
	t.Run("NestedShape", func(t *testing.T) {
		out, err := dumpTestEnvironment(t).ToYAML()
		require.NoError(t, err)

		s := string(out)
		assert.Contains(t, s, "net:")
		assert.Contains(t, s, "port: 27017")
		assert.Contains(t, s, "bindIp: 127.0.0.1")
		assert.Contains(t, s, "ipv6: false")
		assert.Contains(t, s, "storage:")
		assert.Contains(t, s, "syncPeriodSecs: 60.0")
	})

	t.Run("RoundTripUnderSameSchema", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "")
		sec.AddOption("net.bindIp", "bind_ip", TypeString, "")
		sec.AddOption("net.ipv6", "ipv6", TypeBool, "")
		sec.AddOption("storage.syncPeriodSecs", "syncdelay", TypeDouble, "")
		sec.AddOption("systemLog.verbosity", "verbosity", TypeStringVector, "")
		sec.AddOption("processManagement.pidFilePath", "pidfilepath", TypeString, "")

		src := dumpTestEnvironment(t)
		out, err := src.ToYAML()
		require.NoError(t, err)

		back, err := ParseYAMLConfig(sec, out)
		require.NoError(t, err)

		require.ElementsMatch(t, src.Keys(), back.Keys())
		for _, key := range src.Keys() {
			want, err := src.Get(key)
			require.NoError(t, err)
			got, err := back.Get(key)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "key %s: want %s, got %s", key, want, got)
		}
	})

	t.Run("BoolLookingStringStaysString", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("tag", "tag", TypeString, "")

		env := NewEnvironment()
		require.NoError(t, env.Set("tag", StringValue("true")))

		out, err := env.ToYAML()
		require.NoError(t, err)

		back, err := ParseYAMLConfig(sec, out)
		require.NoError(t, err)

		v, err := back.GetString("tag")
		require.NoError(t, err)
		assert.Equal(t, "true", v)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := dumpTestEnvironment(t).ToYAML()
		require.NoError(t, err)
		second, err := dumpTestEnvironment(t).ToYAML()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("EmptyEnvironment", func(t *testing.T) {
		out, err := NewEnvironment().ToYAML()
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(out))
	})

	t.Run("LeafAndSubtreeConflict", func(t *testing.T) {
		env := NewEnvironment()
		require.NoError(t, env.Set("net", StringValue("flat")))
		require.NoError(t, env.Set("net.port", IntValue(1)))

		_, err := env.ToYAML()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "holds both a value and sub-keys")
	})
}

// TestToTOML tests the TOML rendering
func TestToTOML(t *testing.T) {
	t.Run("ParsesBack", func(t *testing.T) {
		out, err := dumpTestEnvironment(t).ToTOML()
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, toml.Unmarshal(out, &decoded))

		netSection, ok := decoded["net"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, int64(27017), netSection["port"])
		assert.Equal(t, "127.0.0.1", netSection["bindIp"])
		assert.Equal(t, false, netSection["ipv6"])
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := dumpTestEnvironment(t).ToTOML()
		require.NoError(t, err)
		second, err := dumpTestEnvironment(t).ToTOML()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("ConflictSurfaces", func(t *testing.T) {
		env := NewEnvironment()
		require.NoError(t, env.Set("net", StringValue("flat")))
		require.NoError(t, env.Set("net.port", IntValue(1)))

		_, err := env.ToTOML()
		assert.ErrorIs(t, err, ErrBadValue)
	})
}

// TestWriteFiles tests atomic file output
func TestWriteFiles(t *testing.T) {
	t.Run("YAMLFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resolved.yaml")
		env := dumpTestEnvironment(t)
		require.NoError(t, env.WriteYAMLFile(path))

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		direct, err := env.ToYAML()
		require.NoError(t, err)
		assert.Equal(t, direct, onDisk)

		// No temp files left behind.
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("TOMLFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resolved.toml")
		require.NoError(t, dumpTestEnvironment(t).WriteTOMLFile(path))

		var decoded map[string]any
		_, err := toml.DecodeFile(path, &decoded)
		require.NoError(t, err)
		assert.Contains(t, decoded, "net")
	})

	t.Run("CreatesMissingDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deep", "nested", "resolved.yaml")
		require.NoError(t, dumpTestEnvironment(t).WriteYAMLFile(path))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("OverwritesExisting", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resolved.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
		require.NoError(t, dumpTestEnvironment(t).WriteYAMLFile(path))

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEqual(t, "stale", string(onDisk))
	})
}
