package i18n

import "testing"

func TestT_KnownKeys(t *testing.T) {
	cases := []struct {
		lang, key, want string
	}{
		{LangEN, "nav.installment", "Installment"},
		{LangEN, "sales.customer", "Customer"},
		{LangTH, "nav.installment", "การผ่อนชำระ"},
		{LangTH, "common.save", "บันทึก"},
	}

	for _, tc := range cases {
		if got := T(tc.lang, tc.key); got != tc.want {
			t.Errorf("T(%q, %q) = %q, want %q", tc.lang, tc.key, got, tc.want)
		}
	}
}

func TestT_UnknownKeyFallsBackToKey(t *testing.T) {
	if got := T(LangEN, "installment.nonexistent"); got != "installment.nonexistent" {
		t.Errorf("T = %q, want the key itself", got)
	}
	if got := T(LangTH, "installment.nonexistent"); got != "installment.nonexistent" {
		t.Errorf("T = %q, want the key itself", got)
	}
}

func TestT_UnsupportedLanguageUsesDefault(t *testing.T) {
	if got := T("fr", "common.save"); got != "Save" {
		t.Errorf("T(fr) = %q, want English fallback", got)
	}
}

func TestSupported(t *testing.T) {
	if !Supported("en") || !Supported("th") {
		t.Error("en/th should be supported")
	}
	if Supported("fr") || Supported("") {
		t.Error("unexpected language reported as supported")
	}
}

func TestTables_SameKeySet(t *testing.T) {
	en, th := Table(LangEN), Table(LangTH)
	if len(en) != len(th) {
		t.Fatalf("key count differs: en=%d th=%d", len(en), len(th))
	}
	for k := range en {
		if _, ok := th[k]; !ok {
			t.Errorf("key %q missing from th table", k)
		}
	}
}
