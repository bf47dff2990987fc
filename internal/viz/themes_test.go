package viz

import "testing"

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		th, ok := GetTheme(name)
		if !ok || th.Name != name {
			t.Errorf("theme %q not found", name)
		}
	}
	th, ok := GetTheme("nonexistent")
	if ok || th.Name != "default" {
		t.Errorf("expected default fallback, got %q", th.Name)
	}
}

func TestTheme_Plain(t *testing.T) {
	if !ThemeDefault.Plain() {
		t.Error("default theme should be plain")
	}
	if ThemeSunset.Plain() {
		t.Error("sunset should be coloured")
	}
}

func TestSmokeShades(t *testing.T) {
	shades := ThemeRetroGreen.SmokeShades(4)
	if len(shades) != 4 {
		t.Fatalf("expected 4 shades, got %d", len(shades))
	}
	if shades[0] != ThemeRetroGreen.Smoke {
		t.Errorf("first shade = %s, want %s", shades[0], ThemeRetroGreen.Smoke)
	}
	if shades[3] != ThemeRetroGreen.SmokeFade {
		t.Errorf("last shade = %s, want %s", shades[3], ThemeRetroGreen.SmokeFade)
	}
	if shades[1] == shades[0] || shades[2] == shades[3] {
		t.Error("expected intermediate shades")
	}
}

func TestSmokeShades_Edges(t *testing.T) {
	if ThemeDefault.SmokeShades(3) != nil {
		t.Error("plain theme has no shades")
	}
	if ThemeOcean.SmokeShades(0) != nil {
		t.Error("zero rows has no shades")
	}
	one := ThemeOcean.SmokeShades(1)
	if len(one) != 1 || one[0] != ThemeOcean.Smoke {
		t.Errorf("single shade = %v", one)
	}
	bad := Theme{Smoke: "not-a-colour"}
	if bad.SmokeShades(2) != nil {
		t.Error("invalid colour should yield no shades")
	}
}

func TestPalette_SmokeStyleClamps(t *testing.T) {
	p := newPalette(ThemeCyberpunk, 3)
	if len(p.smoke) != 3 {
		t.Fatalf("expected 3 smoke styles, got %d", len(p.smoke))
	}
	if p.smokeStyle(0).GetForeground() != p.smoke[0].GetForeground() {
		t.Error("rows at or below the body use the first shade")
	}
	if p.smokeStyle(10).GetForeground() != p.smoke[2].GetForeground() {
		t.Error("rows far above use the last shade")
	}
}
