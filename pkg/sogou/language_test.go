package sogou

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code    string
		want    Language
		wantErr bool
	}{
		{code: "en", want: English},
		{code: "zh-CHS", want: ChineseSimplified},
		{code: "zh-CHT", want: ChineseTraditional},
		{code: "tlh-Qaak", want: KlingonPIqaD},
		{code: "sr-Cyrl", want: SerbianCyrillic},
		{code: "zh-chs", wantErr: true},
		{code: "zh", wantErr: true},
		{code: "", wantErr: true},
		{code: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseLanguage(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.String())
		})
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()

	assert.Len(t, langs, 61)
	assert.True(t, sort.SliceIsSorted(langs, func(i, j int) bool { return langs[i] < langs[j] }))
	for _, l := range langs {
		assert.True(t, l.Valid(), "%s", l)
		assert.NotEmpty(t, l.Name(), "%s", l)
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", English.Name())
	assert.Equal(t, "Chinese Simplified", ChineseSimplified.Name())
	assert.Empty(t, Language("xx").Name())
	assert.False(t, Language("xx").Valid())
}
