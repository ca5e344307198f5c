package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/sablegate/grotto/config"
)

// SettingsData holds runtime toggles. It lives in the world so systems and
// scenes share one instance without a global.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// UpdateSettings handles the debug overlay toggle.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

func GetOrCreateSettings(e *ecs.ECS) *SettingsData {
	if entry, ok := Settings.First(e.World); ok {
		return Settings.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(Settings))
	return Settings.Get(entry)
}
