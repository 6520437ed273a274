// File: davipeterlini/mongo/optionenvironment/option_section_test.go
package optionenvironment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddOption tests registration and the chaining setters
func TestAddOption(t *testing.T) {
	t.Run("BasicRegistration", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "listen port")

		env, err := ParseCommandLine(sec, []string{"--port", "27017"})
		require.NoError(t, err)

		v, err := env.Get("net.port")
		require.NoError(t, err)
		assert.True(t, v.Equal(IntValue(27017)))
	})

	t.Run("ShortAlias", func(t *testing.T) {
		sec := NewOptionSection("general options")
		d := sec.AddOption("verbose", "verbose,v", TypeSwitch, "more output")

		assert.Equal(t, "verbose", d.longName())
		assert.Equal(t, "v", d.shortName())

		env, err := ParseCommandLine(sec, []string{"-v"})
		require.NoError(t, err)
		assert.True(t, env.Has("verbose"))
	})

	t.Run("MalformedAlias", func(t *testing.T) {
		for _, single := range []string{"verbose,vv", "verbose,", ",v", "a,b,c"} {
			sec := NewOptionSection("general options")
			sec.AddOption("verbose", single, TypeSwitch, "more output")

			_, err := ParseCommandLine(sec, nil)
			assert.ErrorIs(t, err, ErrBadValue, "single name %q", single)
		}
	})

	t.Run("InvalidNames", func(t *testing.T) {
		cases := []struct{ dotted, single string }{
			{"", "port"},
			{"net..port", "port"},
			{"net port", "port"},
			{"net.port", ""},
			{"net.port", "po rt"},
		}
		for _, tc := range cases {
			sec := NewOptionSection("general options")
			sec.AddOption(tc.dotted, tc.single, TypeInt, "")

			_, err := ParseCommandLine(sec, nil)
			assert.ErrorIs(t, err, ErrBadValue, "dotted %q single %q", tc.dotted, tc.single)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", OptionType(99), "")

		_, err := ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})
}

// TestChainingSetters tests Default, Composing, SetSources, Positional
func TestChainingSetters(t *testing.T) {
	t.Run("DefaultMustMatchType", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "").Default(StringValue("27017"))

		_, err := ParseCommandLine(sec, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match declared type")
	})

	t.Run("SwitchTakesBoolDefault", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("quiet", "quiet", TypeSwitch, "").Default(BoolValue(false))

		_, err := ParseCommandLine(sec, nil)
		assert.NoError(t, err)
	})

	t.Run("EmptyDefaultRejected", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "").Default(Value{})

		_, err := ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})

	t.Run("ComposingRequiresVector", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "").Composing()

		_, err := ParseCommandLine(sec, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only vector types can compose")
	})

	t.Run("EmptySourceMaskRejected", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "").SetSources(0)

		_, err := ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})

	t.Run("PositionalValidation", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("files", "files", TypeString, "").Positional(1, 3)

		_, err := ParseCommandLine(sec, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "needs a vector type")

		sec = NewOptionSection("general options")
		sec.AddOption("files", "files", TypeStringVector, "").Positional(0, 2)
		_, err = ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)

		sec = NewOptionSection("general options")
		sec.AddOption("files", "files", TypeStringVector, "").Positional(3, 2)
		_, err = ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})

	t.Run("FirstErrorWins", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "").Composing().Default(StringValue("x"))

		_, err := ParseCommandLine(sec, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only vector types can compose")
	})
}

// TestDuplicateRegistration tests tree-wide name collision detection
func TestDuplicateRegistration(t *testing.T) {
	t.Run("DuplicateDottedName", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "")
		sec.AddOption("net.port", "listenPort", TypeInt, "")

		_, err := ParseCommandLine(sec, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registered twice")
	})

	t.Run("DuplicateLongName", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "")
		sec.AddOption("legacy.port", "port", TypeInt, "")

		_, err := ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})

	t.Run("DuplicateShortAlias", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("verbose", "verbose,v", TypeSwitch, "")
		sec.AddOption("version", "version,v", TypeSwitch, "")

		_, err := ParseCommandLine(sec, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})

	t.Run("CollisionAcrossSubsections", func(t *testing.T) {
		parent := NewOptionSection("general options")
		parent.AddOption("net.port", "port", TypeInt, "")

		child := NewOptionSection("sharding options")
		child.AddOption("net.port", "shardPort", TypeInt, "")
		require.NoError(t, parent.AddSection(child))

		_, err := ParseCommandLine(parent, nil)
		assert.ErrorIs(t, err, ErrBadValue)
	})
}

// TestSectionNesting tests flattening order and filtered listings
func TestSectionNesting(t *testing.T) {
	parent := NewOptionSection("general options")
	parent.AddOption("config", "config", TypeString, "configuration file")
	parent.AddOption("verbose", "verbose,v", TypeSwitch, "more output")

	child := NewOptionSection("replication options")
	child.AddOption("replication.replSet", "replSet", TypeString, "replica set name").
		Default(StringValue(""))

	t.Run("AddSectionChecks", func(t *testing.T) {
		assert.ErrorIs(t, parent.AddSection(nil), ErrBadValue)
		assert.ErrorIs(t, parent.AddSection(parent), ErrBadValue)
		require.NoError(t, parent.AddSection(child))
	})

	t.Run("FlattenedOrder", func(t *testing.T) {
		var dotted []string
		for _, d := range parent.AllOptions() {
			dotted = append(dotted, d.dottedName)
		}
		assert.Equal(t, []string{"config", "verbose", "replication.replSet"}, dotted)
	})

	t.Run("SourceFiltering", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("cliOnly", "cliOnly", TypeSwitch, "").SetSources(SourceCommandLine)
		sec.AddOption("fileOnly", "fileOnly", TypeInt, "").SetSources(SourceAllConfig)
		sec.AddOption("anywhere", "anywhere", TypeInt, "")

		cli := sec.SourceOptions(SourceCommandLine)
		require.Len(t, cli, 2)
		assert.Equal(t, "cliOnly", cli[0].dottedName)
		assert.Equal(t, "anywhere", cli[1].dottedName)

		yaml := sec.SourceOptions(SourceYAMLConfig)
		require.Len(t, yaml, 2)
		assert.Equal(t, "fileOnly", yaml[0].dottedName)
	})

	t.Run("DefaultsListing", func(t *testing.T) {
		sec := NewOptionSection("general options")
		sec.AddOption("net.port", "port", TypeInt, "").Default(IntValue(27017))
		sec.AddOption("verbose", "verbose", TypeSwitch, "")

		defaults := sec.Defaults()
		require.Len(t, defaults, 1)
		assert.True(t, defaults["net.port"].Equal(IntValue(27017)))
	})

	t.Run("ConstraintsGathered", func(t *testing.T) {
		top := NewOptionSection("general options")
		sub := NewOptionSection("security options")
		top.AddConstraint(NewNumericRangeConstraint("net.port", 1, 65535))
		sub.AddConstraint(NewRequiresConstraint("a", "b"))
		top.AddConstraint(nil)
		require.NoError(t, top.AddSection(sub))

		assert.Len(t, top.Constraints(), 2)
	})
}

// TestHelp tests the user-facing listing
func TestHelp(t *testing.T) {
	parent := NewOptionSection("general options")
	parent.AddOption("config", "config,f", TypeString, "configuration file")
	parent.AddOption("diagnosticTrace", "diagnosticTrace", TypeSwitch, "internal tracing").Hidden()

	net := NewOptionSection("net options")
	net.AddOption("net.port", "port", TypeInt, "listen port").Default(IntValue(27017))
	net.AddOption("verbose", "verbose,v", TypeSwitch, "more output")
	require.NoError(t, parent.AddSection(net))

	help := parent.Help()

	t.Run("SectionsAndSpellings", func(t *testing.T) {
		assert.Contains(t, help, "general options:")
		assert.Contains(t, help, "net options:")
		assert.Contains(t, help, "--config, -f arg")
		assert.Contains(t, help, "--port arg (=27017)")
		assert.Contains(t, help, "--verbose, -v")
		assert.Contains(t, help, "listen port")
	})

	t.Run("HiddenOptionsLeftOut", func(t *testing.T) {
		assert.NotContains(t, help, "diagnosticTrace")
		assert.Contains(t, help, "configuration file")
	})

	t.Run("HiddenOptionsStillParse", func(t *testing.T) {
		env, err := ParseCommandLine(parent, []string{"--diagnosticTrace"})
		require.NoError(t, err)
		assert.True(t, env.Has("diagnosticTrace"))
	})

	t.Run("AllHiddenSectionOmitsHeader", func(t *testing.T) {
		sec := NewOptionSection("internal options")
		sec.AddOption("traceLevel", "traceLevel", TypeInt, "").Hidden()
		assert.Equal(t, "", sec.Help())
	})
}
