package region

// provinceNames maps the two-digit province prefix of a CN number to the
// province name. The table is carried over verbatim from the upstream data,
// including the two codes (71 and 83) that both name 台湾.
var provinceNames = map[string]string{
	"11": "北京",
	"12": "天津",
	"13": "河北",
	"14": "山西",
	"15": "内蒙古",
	"21": "辽宁",
	"22": "吉林",
	"23": "黑龙江",
	"31": "上海",
	"32": "江苏",
	"33": "浙江",
	"34": "安徽",
	"35": "福建",
	"36": "江西",
	"37": "山东",
	"41": "河南",
	"42": "湖北",
	"43": "湖南",
	"44": "广东",
	"45": "广西",
	"46": "海南",
	"50": "重庆",
	"51": "四川",
	"52": "贵州",
	"53": "云南",
	"54": "西藏",
	"61": "陕西",
	"62": "甘肃",
	"63": "青海",
	"64": "宁夏",
	"65": "新疆",
	"71": "台湾",
	"81": "香港",
	"82": "澳门",
	"83": "台湾",
	"91": "国外",
}

// ProvinceName returns the province name for a two-digit prefix.
// The second return value reports whether the prefix is defined.
func ProvinceName(code string) (string, bool) {
	name, ok := provinceNames[code]
	return name, ok
}

// ProvinceExists reports whether the two-digit prefix is a defined province.
func ProvinceExists(code string) bool {
	_, ok := provinceNames[code]
	return ok
}
