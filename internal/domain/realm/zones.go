package realm

type ZonePreference string

const (
	PreferenceCautious   ZonePreference = "cautious"
	PreferenceBalanced   ZonePreference = "balanced"
	PreferenceAggressive ZonePreference = "aggressive"
)

// TerminalZone is where actors above every configured level range are sent.
const TerminalZone = "ember_depths"

type levelBand struct {
	min, max int
	zones    map[ZonePreference]string
}

var levelingZones = []levelBand{
	{1, 7, map[ZonePreference]string{
		PreferenceCautious:   "meadow_outskirts",
		PreferenceBalanced:   "meadow_outskirts",
		PreferenceAggressive: "rat_warrens",
	}},
	{8, 19, map[ZonePreference]string{
		PreferenceCautious:   "rat_warrens",
		PreferenceBalanced:   "spider_hollow",
		PreferenceAggressive: "bandit_camp",
	}},
	{20, 34, map[ZonePreference]string{
		PreferenceCautious:   "spider_hollow",
		PreferenceBalanced:   "sunken_crypts",
		PreferenceAggressive: "ogre_highlands",
	}},
	{35, 49, map[ZonePreference]string{
		PreferenceCautious:   "sunken_crypts",
		PreferenceBalanced:   "ogre_highlands",
		PreferenceAggressive: "dragon_scar",
	}},
	{50, 79, map[ZonePreference]string{
		PreferenceBalanced:   "dragon_scar",
		PreferenceAggressive: "lich_barrows",
	}},
	{80, 119, map[ZonePreference]string{
		PreferenceBalanced: "lich_barrows",
	}},
}

// ZoneForLevel resolves the leveling zone for (level, preference). An absent
// preference tier falls back to the balanced tier of the same band; a level
// above every band resolves to TerminalZone.
func ZoneForLevel(level int, pref ZonePreference) string {
	if level < 1 {
		level = 1
	}
	for _, band := range levelingZones {
		if level < band.min || level > band.max {
			continue
		}
		if zone, ok := band.zones[pref]; ok {
			return zone
		}
		return band.zones[PreferenceBalanced]
	}
	return TerminalZone
}
