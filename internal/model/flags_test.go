package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumor_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		humor   Humor
		wantErr bool
	}{
		{name: "正常系: 良い気分と悪い気分の併用", humor: Humor{Calm: true, Tiredness: true}},
		{name: "正常系: undefined のみ", humor: Humor{Undefined: true}},
		{name: "正常系: other のみ", humor: Humor{Other: true}},
		{name: "正常系: すべて未設定", humor: Humor{}},
		{name: "異常系: undefined と other", humor: Humor{Undefined: true, Other: true}, wantErr: true},
		{name: "異常系: undefined と気分", humor: Humor{Undefined: true, Happiness: true}, wantErr: true},
		{name: "異常系: other と気分", humor: Humor{Other: true, Fear: true}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.humor.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHumor_IsGoodIsBad(t *testing.T) {
	assert.True(t, Humor{Happiness: true}.IsGood())
	assert.False(t, Humor{Happiness: true}.IsBad())
	assert.True(t, Humor{Drowsiness: true}.IsBad())
	assert.False(t, Humor{Drowsiness: true}.IsGood())
	// undefined / other は良し悪しに数えない
	assert.False(t, Humor{Other: true}.IsGood())
	assert.False(t, Humor{Undefined: true}.IsBad())
}

func TestFlags_NameAlignment(t *testing.T) {
	assert.Len(t, Climate{}.Flags(), len(ClimateNames))
	assert.Len(t, Humor{}.Flags(), len(HumorNames))
	assert.Len(t, BiologicalOccurences{}.Flags(), len(BiologicalOccurenceNames))

	flags := BiologicalOccurences{Cramps: true}.Flags()
	assert.True(t, flags[len(flags)-1])
	assert.Equal(t, "cramps", BiologicalOccurenceNames[len(BiologicalOccurenceNames)-1])
}
