package report

import (
	"testing"

	"github.com/nao1215/idcard/internal/region"
)

func TestFromNumberCN(t *testing.T) {
	t.Parallel()

	r := FromNumber("230127197908177456", nil)
	if !r.Valid {
		t.Fatalf("expected valid report, got error %q", r.Error)
	}
	if r.Jurisdiction != "CN-18" {
		t.Errorf("jurisdiction = %q, expected CN-18", r.Jurisdiction)
	}
	if r.Number != "230127197908177456" {
		t.Errorf("number = %q", r.Number)
	}
	if r.BirthDate != "1979-08-17" {
		t.Errorf("birth date = %q", r.BirthDate)
	}
	if r.Gender != "male" {
		t.Errorf("gender = %q", r.Gender)
	}
	if r.Province != "黑龙江" {
		t.Errorf("province = %q", r.Province)
	}
	if r.RegionCode != "230127" {
		t.Errorf("region code = %q", r.RegionCode)
	}
	if r.Region != "黑龙江省哈尔滨市木兰县" {
		t.Errorf("region = %q", r.Region)
	}
	if r.ChineseZodiac != "羊" {
		t.Errorf("zodiac = %q", r.ChineseZodiac)
	}
	if r.ChineseEra != "己未" {
		t.Errorf("era = %q", r.ChineseEra)
	}
	if r.Constellation != "狮子座" {
		t.Errorf("constellation = %q", r.Constellation)
	}
	if r.Age == "" {
		t.Error("expected a populated age")
	}
}

func TestFromNumberUpgradesLegacy(t *testing.T) {
	t.Parallel()

	r := FromNumber("632123820927051", nil)
	if !r.Valid {
		t.Fatalf("expected valid report, got error %q", r.Error)
	}
	if r.Jurisdiction != "CN-15" {
		t.Errorf("jurisdiction = %q, expected CN-15", r.Jurisdiction)
	}
	if r.Number != "632123198209270518" {
		t.Errorf("number = %q, expected the upgraded form", r.Number)
	}
	if r.BirthDate != "1982-09-27" {
		t.Errorf("birth date = %q", r.BirthDate)
	}
}

func TestFromNumberTW(t *testing.T) {
	t.Parallel()

	r := FromNumber("B142610160", nil)
	if !r.Valid {
		t.Fatalf("expected valid report, got error %q", r.Error)
	}
	if r.Jurisdiction != "TW" {
		t.Errorf("jurisdiction = %q, expected TW", r.Jurisdiction)
	}
	if r.Gender != "male" {
		t.Errorf("gender = %q", r.Gender)
	}
	if r.Region != "台中市" {
		t.Errorf("region = %q", r.Region)
	}
	if r.BirthDate != "" {
		t.Errorf("birth date = %q, expected empty for TW", r.BirthDate)
	}
}

func TestFromNumberInvalid(t *testing.T) {
	t.Parallel()

	r := FromNumber("230127197908177457", nil)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if r.Jurisdiction != "CN-18" {
		t.Errorf("jurisdiction = %q", r.Jurisdiction)
	}
	if r.Error == "" {
		t.Error("expected a populated error")
	}
	if r.BirthDate != "" || r.Gender != "" {
		t.Error("decoded fields must stay empty for invalid numbers")
	}
}

func TestFromNumberAncientBirthYear(t *testing.T) {
	t.Parallel()

	// Year 0 passes date and checksum validation; decoding it must not
	// panic in the cyclic-calendar accessors.
	r := FromNumber("110101000001010014", nil)
	if !r.Valid {
		t.Fatalf("expected valid report, got error %q", r.Error)
	}
	if r.ChineseZodiac != "猴" || r.ChineseEra != "庚申" {
		t.Errorf("zodiac/era = %q/%q", r.ChineseZodiac, r.ChineseEra)
	}
}

func TestFromNumberUnrecognized(t *testing.T) {
	t.Parallel()

	r := FromNumber("hello", nil)
	if r.Valid {
		t.Fatal("expected invalid report")
	}
	if r.Jurisdiction != "unknown" {
		t.Errorf("jurisdiction = %q, expected unknown", r.Jurisdiction)
	}
}

func TestFromNumberUsesInjectedRegistry(t *testing.T) {
	t.Parallel()

	reg := region.NewTableRegistry(map[string]string{"230127": "custom name"})
	r := FromNumber("230127197908177456", reg)
	if r.Region != "custom name" {
		t.Errorf("region = %q, expected the injected registry to win", r.Region)
	}
}
