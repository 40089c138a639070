package region

// regionNames is the embedded six-digit division table.
//
// The complete county-level data set runs to several thousand entries and
// changes with every civil-affairs bulletin; shipping all of it inline would
// dwarf the rest of the module. We embed a representative subset covering
// every province. The full table can be imported into the SQLite-backed
// registry with `idcard region import`.
var regionNames = map[string]string{
	"110101": "北京市东城区",
	"110102": "北京市西城区",
	"110105": "北京市朝阳区",
	"110108": "北京市海淀区",
	"120101": "天津市和平区",
	"120102": "天津市河东区",
	"130102": "河北省石家庄市长安区",
	"130104": "河北省石家庄市桥西区",
	"140105": "山西省太原市小店区",
	"150102": "内蒙古自治区呼和浩特市新城区",
	"210102": "辽宁省沈阳市和平区",
	"210211": "辽宁省大连市甘井子区",
	"220104": "吉林省长春市朝阳区",
	"230103": "黑龙江省哈尔滨市南岗区",
	"230127": "黑龙江省哈尔滨市木兰县",
	"310101": "上海市黄浦区",
	"310104": "上海市徐汇区",
	"310112": "上海市闵行区",
	"320102": "江苏省南京市玄武区",
	"320505": "江苏省苏州市虎丘区",
	"330102": "浙江省杭州市上城区",
	"330106": "浙江省杭州市西湖区",
	"340104": "安徽省合肥市蜀山区",
	"350102": "福建省福州市鼓楼区",
	"360102": "江西省南昌市东湖区",
	"370202": "山东省青岛市市南区",
	"410102": "河南省郑州市中原区",
	"420102": "湖北省武汉市江岸区",
	"430102": "湖南省长沙市芙蓉区",
	"440106": "广东省广州市天河区",
	"440305": "广东省深圳市南山区",
	"450103": "广西壮族自治区南宁市青秀区",
	"460105": "海南省海口市秀英区",
	"500103": "重庆市渝中区",
	"510104": "四川省成都市锦江区",
	"511702": "四川省达州市通川区",
	"520102": "贵州省贵阳市南明区",
	"530102": "云南省昆明市五华区",
	"540102": "西藏自治区拉萨市城关区",
	"610102": "陕西省西安市新城区",
	"620102": "甘肃省兰州市城关区",
	"630102": "青海省西宁市城中区",
	"632123": "青海省海北藏族自治州祁连县",
	"640104": "宁夏回族自治区银川市兴庆区",
	"650102": "新疆维吾尔自治区乌鲁木齐市天山区",
	"654325": "新疆维吾尔自治区阿勒泰地区青河县",
}
