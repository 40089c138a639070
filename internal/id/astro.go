package id

// Chinese calendar and western zodiac tables, carried over verbatim from the
// upstream data. The stem and branch tables are rotated so that
// (year - 3) % n indexes directly.
var (
	chineseZodiac = [12]string{
		"猪", "鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗",
	}

	celestialStems = [10]string{
		"癸", "甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "任",
	}

	terrestrialBranches = [12]string{
		"亥", "子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌",
	}
)

// Constellation returns the western zodiac sign for the birth month and day.
func (i Identity) Constellation() (string, bool) {
	month, ok := i.Month()
	if !ok {
		return "", false
	}
	day, ok := i.Day()
	if !ok {
		return "", false
	}

	var sign string
	switch {
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		sign = "水瓶座"
	case (month == 2 && day >= 19) || (month == 3 && day <= 20):
		sign = "双鱼座"
	case (month == 3 && day > 20) || (month == 4 && day <= 19):
		sign = "白羊座"
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		sign = "金牛座"
	case (month == 5 && day >= 21) || (month == 6 && day <= 21):
		sign = "双子座"
	case (month == 6 && day > 21) || (month == 7 && day <= 22):
		sign = "巨蟹座"
	case (month == 7 && day > 22) || (month == 8 && day <= 22):
		sign = "狮子座"
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		sign = "处女座"
	case (month == 9 && day >= 23) || (month == 10 && day <= 23):
		sign = "天秤座"
	case (month == 10 && day > 23) || (month == 11 && day <= 22):
		sign = "天蝎座"
	case (month == 11 && day > 22) || (month == 12 && day <= 21):
		sign = "射手座"
	case (month == 12 && day > 21) || (month == 1 && day <= 19):
		sign = "魔羯座"
	default:
		return "", false
	}
	return sign, true
}

// ChineseEra returns the sexagenary-cycle name of the birth year, the
// celestial stem followed by the terrestrial branch.
func (i Identity) ChineseEra() (string, bool) {
	year, ok := i.Year()
	if !ok {
		return "", false
	}
	stem := celestialStems[cycleIndex(year, 10)]
	branch := terrestrialBranches[cycleIndex(year, 12)]
	return stem + branch, true
}

// ChineseZodiac returns the zodiac animal of the birth year.
func (i Identity) ChineseZodiac() (string, bool) {
	year, ok := i.Year()
	if !ok {
		return "", false
	}
	return chineseZodiac[cycleIndex(year, 12)], true
}

// cycleIndex returns the nonnegative index of year in an n-year cycle
// anchored at year 3. Go's % is negative for years 0-2, which pass
// validation; the extra +n keeps the index in [0, n).
func cycleIndex(year, n int) int {
	return ((year-3)%n + n) % n
}
