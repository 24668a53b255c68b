package render

import (
	"strings"
	"testing"

	"github.com/muurk/clickme/internal/settings"
)

func TestClampIndicator(t *testing.T) {
	tests := []struct {
		v, def, want int
	}{
		{0, 1, 1},
		{0, 4, 4},
		{3, 1, 3},
		{7, 1, 4},
		{-2, 4, 1},
	}

	for _, tt := range tests {
		if got := ClampIndicator(tt.v, tt.def); got != tt.want {
			t.Errorf("ClampIndicator(%d, %d) = %d, want %d", tt.v, tt.def, got, tt.want)
		}
	}
}

func TestPuzzleDots(t *testing.T) {
	tests := []struct {
		name        string
		step, total int
		wantVisible []bool
		wantActive  int
	}{
		{"defaults", 0, 0, []bool{true, true, true, true}, 1},
		{"step 2 of 3", 2, 3, []bool{true, true, true, false}, 2},
		{"over range", 9, 9, []bool{true, true, true, true}, 4},
		{"negative", -1, 2, []bool{true, true, false, false}, 1},
		{"active beyond total", 4, 2, []bool{true, true, false, false}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dots := PuzzleDots(tt.step, tt.total)
			if len(dots) != 4 {
				t.Fatalf("got %d dots, want 4", len(dots))
			}
			for i, d := range dots {
				if d.Index != i+1 {
					t.Errorf("dot %d index = %d", i, d.Index)
				}
				if d.Visible != tt.wantVisible[i] {
					t.Errorf("dot %d visible = %v, want %v", d.Index, d.Visible, tt.wantVisible[i])
				}
				active := d.Index == tt.wantActive
				if d.Active != active {
					t.Errorf("dot %d active = %v, want %v", d.Index, d.Active, active)
				}
				wantColor := InactiveDotColor
				if active {
					wantColor = ActiveDotColor
				}
				if d.Color != wantColor {
					t.Errorf("dot %d color = %s, want %s", d.Index, d.Color, wantColor)
				}
			}
		})
	}
}

func TestBackgroundImage(t *testing.T) {
	tests := map[int]string{
		0: "img/bg1.png",
		2: "img/bg2.png",
		4: "img/bg4.png",
		8: "img/bg4.png",
	}
	for step, want := range tests {
		if got := BackgroundImage(step); got != want {
			t.Errorf("BackgroundImage(%d) = %s, want %s", step, got, want)
		}
	}
}

func TestControlFor(t *testing.T) {
	if ControlFor(nil) != nil {
		t.Error("ControlFor(nil) should be nil")
	}
	if ControlFor(&settings.ButtonSettings{Type: "slider"}) != nil {
		t.Error("unknown control type should render nothing")
	}

	t.Run("normal", func(t *testing.T) {
		c := ControlFor(&settings.ButtonSettings{
			Type: settings.ControlNormal, Left: settings.Pct(20), Top: settings.Pct(45), Width: 120, Height: 30,
			Text: "Win", Color: "red; background: url(x)",
		})
		if c.ElementID != "normal-button" {
			t.Errorf("ElementID = %s", c.ElementID)
		}
		if c.Color != settings.DefaultButtonColor {
			t.Errorf("invalid colour should fall back to default, got %s", c.Color)
		}
		style := string(c.Style)
		for _, want := range []string{"left: 20%", "top: 45%", "translate(-50%, -50%)", "width: 120px", "height: 30px"} {
			if !strings.Contains(style, want) {
				t.Errorf("style %q missing %q", style, want)
			}
		}
	})

	t.Run("unset position centres", func(t *testing.T) {
		c := ControlFor(&settings.ButtonSettings{Type: settings.ControlCaptchaCheckbox})
		if c.Left != 50 || c.Top != 50 {
			t.Errorf("position = %d,%d, want 50,50", c.Left, c.Top)
		}
	})

	t.Run("puzzle", func(t *testing.T) {
		bs := settings.DefaultControl(settings.ControlCaptchaPuzzle)
		bs.Step = 3
		c := ControlFor(&bs)
		if c.Background != "img/bg3.png" {
			t.Errorf("Background = %s", c.Background)
		}
		if len(c.Sprites) != 4 || c.Sprites[0].Class != "fly-1" || c.Sprites[3].Class != "cow-3" {
			t.Errorf("unexpected sprites %+v", c.Sprites)
		}
		if *c.Fly != (settings.Point{Left: 120, Top: 117}) {
			t.Errorf("Fly = %+v", *c.Fly)
		}
		if c.Cows[2] != (settings.Point{Left: 180, Top: 180}) {
			t.Errorf("Cows[2] = %+v", c.Cows[2])
		}
		if !c.Dots[2].Active {
			t.Error("dot 3 should be active")
		}
	})
}

func TestControlFor_ZeroPosition(t *testing.T) {
	for _, typ := range settings.ControlTypes {
		t.Run(string(typ), func(t *testing.T) {
			bs := settings.DefaultControl(typ)
			bs.Left, bs.Top = settings.Pct(0), settings.Pct(0)

			c := ControlFor(&bs)
			if c.Left != 0 || c.Top != 0 {
				t.Errorf("position = %d,%d, want 0,0", c.Left, c.Top)
			}
			if !strings.Contains(string(c.Style), "left: 0%; top: 0%;") {
				t.Errorf("style %q does not place the control at 0%%, 0%%", c.Style)
			}
		})
	}
}
