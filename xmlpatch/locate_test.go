package xmlpatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commentedConfig = `<configuration>
  <appSettings>
    <!-- <add key="Mode" value="old"/> -->
    <add key="Mode" value="debug"/>
  </appSettings>
</configuration>`

func TestFirstUncommented(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		needle  string
		from    int
		to      int
		want    int
	}{
		{
			name:    "no_comments",
			content: `ab key="x" cd`,
			needle:  `key="x"`,
			from:    0,
			to:      20,
			want:    3,
		},
		{
			name:    "skips_open_comment",
			content: `<!-- key="x" --> key="x"`,
			needle:  `key="x"`,
			from:    0,
			to:      30,
			want:    17,
		},
		{
			name:    "closed_comment_before",
			content: `<!-- c --> key="x"`,
			needle:  `key="x"`,
			from:    0,
			to:      30,
			want:    11,
		},
		{
			name:    "only_commented",
			content: `<!-- key="x" -->`,
			needle:  `key="x"`,
			from:    0,
			to:      30,
			want:    -1,
		},
		{
			name:    "unclosed_comment",
			content: `<!-- key="x" key="x"`,
			needle:  `key="x"`,
			from:    0,
			to:      30,
			want:    -1,
		},
		{
			name:    "beyond_upper_bound",
			content: `<!-- key="x" --> key="x"`,
			needle:  `key="x"`,
			from:    0,
			to:      16,
			want:    -1,
		},
		{
			name:    "starts_at_upper_bound",
			content: `xx key="x"`,
			needle:  `key="x"`,
			from:    0,
			to:      3,
			want:    3,
		},
		{
			name:    "before_lower_bound",
			content: `key="x" <a>`,
			needle:  `key="x"`,
			from:    1,
			to:      11,
			want:    -1,
		},
		{
			name:    "empty_needle",
			content: `anything`,
			needle:  "",
			from:    0,
			to:      8,
			want:    -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FirstUncommented(tt.content, tt.needle, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	prop, ok := Locate(commentedConfig, AppSettings, Attr{Name: "key", Value: "Mode"})
	require.True(t, ok)
	assert.Equal(t, `<add key="Mode" value="debug"/>`, prop.Text(commentedConfig))
}

func TestLocateMisses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		container string
		identify  Attr
	}{
		{
			name:      "no_container",
			content:   `<configuration><add key="A" value="1"/></configuration>`,
			container: AppSettings,
			identify:  Attr{Name: "key", Value: "A"},
		},
		{
			name:      "no_closing_container",
			content:   `<appSettings><add key="A" value="1"/>`,
			container: AppSettings,
			identify:  Attr{Name: "key", Value: "A"},
		},
		{
			name:      "other_container",
			content:   `<appSettings></appSettings><connectionStrings><add name="A" connectionString="x"/></connectionStrings>`,
			container: AppSettings,
			identify:  Attr{Name: "name", Value: "A"},
		},
		{
			name:      "missing_key",
			content:   `<appSettings><add key="A" value="1"/></appSettings>`,
			container: AppSettings,
			identify:  Attr{Name: "key", Value: "B"},
		},
		{
			name:      "commented_only",
			content:   commentedConfig,
			container: AppSettings,
			identify:  Attr{Name: "key", Value: "Other"},
		},
		{
			name:      "unterminated_element",
			content:   `<appSettings><add key="A" value="1"></appSettings>`,
			container: AppSettings,
			identify:  Attr{Name: "key", Value: "A"},
		},
		{
			name:      "no_add_element",
			content:   `<appSettings key="A" value="1"/></appSettings>`,
			container: AppSettings,
			identify:  Attr{Name: "key", Value: "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := Locate(tt.content, tt.container, tt.identify)
			assert.False(t, ok)
		})
	}
}
