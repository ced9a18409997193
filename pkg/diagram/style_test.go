package diagram

import (
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestStyle_Set(t *testing.T) {
	assert := assert.New(t)

	s := NewStyle("fillColor", "#FF9900", "rounded", "true")
	s = s.Set("fillColor", "#000")
	s = s.Set("dashed", "1")

	assert.Equal(Style{{"fillColor", "#000"}, {"rounded", "true"}, {"dashed", "1"}}, s)
	assert.Equal("fillColor=#000;rounded=true;dashed=1;", s.String())

	v, ok := s.Get("rounded")
	assert.True(ok)
	assert.Equal("true", v)
	_, ok = s.Get("missing")
	assert.False(ok)
}

func TestStyle_Merge(t *testing.T) {
	tests := []struct {
		name  string
		base  Style
		other Style
		want  Style
	}{
		{
			name:  "override keeps position",
			base:  NewStyle("a", "1", "b", "2"),
			other: NewStyle("a", "3"),
			want:  NewStyle("a", "3", "b", "2"),
		},
		{
			name:  "new keys appended",
			base:  NewStyle("a", "1"),
			other: NewStyle("c", "3", "b", "2"),
			want:  NewStyle("a", "1", "c", "3", "b", "2"),
		},
		{
			name:  "nil base",
			other: NewStyle("a", "1"),
			want:  NewStyle("a", "1"),
		},
		{
			name: "nil other",
			base: NewStyle("a", "1"),
			want: NewStyle("a", "1"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			base := tt.base.Clone()
			assert.Equal(tt.want, tt.base.Merge(tt.other))
			assert.Equal(base, tt.base, "base must not be modified")
		})
	}
}

func TestNewStyle_oddArguments(t *testing.T) {
	assert.Panics(t, func() { NewStyle("a") })
}

func TestStyle_YAML(t *testing.T) {
	t.Run("document order kept", func(t *testing.T) {
		assert := assert.New(t)
		var v struct {
			Style Style `yaml:"style"`
		}
		err := yaml.Unmarshal([]byte(dedent.Dedent(`
			style:
			  zIndex: 2
			  fillColor: "#FF9900"
			  align: left
			`)), &v)
		assert.NoError(err)
		assert.Equal(NewStyle("zIndex", "2", "fillColor", "#FF9900", "align", "left"), v.Style)

		out, err := yaml.Marshal(v)
		assert.NoError(err)
		var roundTrip struct {
			Style Style `yaml:"style"`
		}
		assert.NoError(yaml.Unmarshal(out, &roundTrip))
		assert.Equal(v.Style, roundTrip.Style)
	})
	t.Run("not a mapping", func(t *testing.T) {
		var v struct {
			Style Style `yaml:"style"`
		}
		err := yaml.Unmarshal([]byte("style: [a, b]"), &v)
		assert.ErrorContains(t, err, "style must be a mapping, got sequence")
	})
	t.Run("nested value", func(t *testing.T) {
		var v struct {
			Style Style `yaml:"style"`
		}
		err := yaml.Unmarshal([]byte("style:\n  font: {size: 2}"), &v)
		assert.ErrorContains(t, err, `style property "font" must be a scalar`)
	})
}

func TestStyle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		wantErr string
	}{
		{name: "valid keys", style: NewStyle("fillColor", "#fff", "_x", "1", "mx.font-size2", "3")},
		{name: "empty", style: nil},
		{name: "space in key", style: NewStyle("font size", "12"), wantErr: `invalid style key "font size": not a valid XML name`},
		{name: "leading digit", style: NewStyle("1x", "12"), wantErr: `invalid style key "1x"`},
		{name: "namespace prefix", style: NewStyle("xlink:href", "a"), wantErr: `invalid style key "xlink:href"`},
		{name: "reserved discriminator", style: NewStyle("as", "x", "fillColor", "#fff"), wantErr: `invalid style key "as": reserved`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.style.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidStyleKey)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestStyle_YAML_invalidKeys(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "space in key", yaml: "style:\n  \"font size\": 12", wantErr: `style property at line 2: invalid style key "font size"`},
		{name: "reserved key", yaml: "style:\n  as: x", wantErr: `invalid style key "as": reserved`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Style Style `yaml:"style"`
			}
			err := yaml.Unmarshal([]byte(tt.yaml), &v)
			assert.ErrorIs(t, err, ErrInvalidStyleKey)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
