package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "home", want: "onebot/home/access_token"},
		{name: "trims", in: "  /home/ ", want: "onebot/home/access_token"},
		{name: "nested", in: "lab/bot-2", want: "onebot/lab/bot-2/access_token"},
		{name: "empty", in: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Key(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmptyName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameInvertsKey(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"home", "lab/bot-2"} {
		key, err := Key(name)
		require.NoError(t, err)

		got, err := Name(key)
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}
}

func TestNameRejectsForeignKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "onebot/home", "other/home/access_token", "onebot//access_token"} {
		_, err := Name(key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate("s3cret-Token_1"))
	for _, value := range []string{"", "two words", "line\nbreak", "tab\there", "bell\a"} {
		assert.ErrorIs(t, Validate(value), ErrInvalidToken, value)
	}
}
