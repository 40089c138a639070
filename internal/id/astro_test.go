package id

import "testing"

func TestIdentityConstellation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		sign   string
	}{
		{name: "august 17 is leo", number: "230127197908177456", sign: "狮子座"},
		{name: "april 9 is aries", number: "310112198504095227", sign: "白羊座"},
		{name: "september 27 is libra", number: "632123198209270518", sign: "天秤座"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sign, ok := NewIdentity(tc.number).Constellation()
			if !ok || sign != tc.sign {
				t.Errorf("Constellation() = %q, %v; expected %q", sign, ok, tc.sign)
			}
		})
	}

	t.Run("absent for invalid identity", func(t *testing.T) {
		t.Parallel()
		if _, ok := NewIdentity("bogus").Constellation(); ok {
			t.Error("expected absence")
		}
	})
}

func TestIdentityChineseEra(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		era    string
		zodiac string
	}{
		{name: "1979", number: "230127197908177456", era: "己未", zodiac: "羊"},
		{name: "1985", number: "310112198504095227", era: "乙丑", zodiac: "牛"},
		{name: "1982", number: "632123198209270518", era: "任戌", zodiac: "狗"},
		// Years before 3 make (year - 3) negative; the cycle index must stay
		// in range instead of panicking.
		{name: "year 0", number: "110101000001010014", era: "庚申", zodiac: "猴"},
		{name: "year 2", number: "110101000205150027", era: "任戌", zodiac: "狗"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			identity := NewIdentity(tc.number)
			if era, ok := identity.ChineseEra(); !ok || era != tc.era {
				t.Errorf("ChineseEra() = %q, %v; expected %q", era, ok, tc.era)
			}
			if zodiac, ok := identity.ChineseZodiac(); !ok || zodiac != tc.zodiac {
				t.Errorf("ChineseZodiac() = %q, %v; expected %q", zodiac, ok, tc.zodiac)
			}
		})
	}
}
