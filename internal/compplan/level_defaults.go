package compplan

// LevelDefault adalah fallback OTE per nivel, dipakai kalau rep tidak punya
// acordo aktif maupun cargo dengan OTE. Data imutabel, keyed by nivel.
type LevelDefault struct {
	FixoCents     int64
	VariavelCents int64
}

var levelDefaults = map[int]LevelDefault{
	1: {FixoCents: 180_000, VariavelCents: 120_000},
	2: {FixoCents: 220_000, VariavelCents: 150_000},
	3: {FixoCents: 280_000, VariavelCents: 190_000},
}

const defaultLevel = 1

// VR bulanan default per nivel; nivel 2 punya nilai sendiri.
const (
	vrMensalNivel2Cents  int64 = 63_800
	vrMensalDefaultCents int64 = 52_800
	vrUltrametaCents     int64 = 30_000
)

func levelDefault(nivel int) LevelDefault {
	if d, ok := levelDefaults[nivel]; ok {
		return d
	}
	return levelDefaults[defaultLevel]
}

func vrMensalByLevel(nivel int) int64 {
	if nivel == 2 {
		return vrMensalNivel2Cents
	}
	return vrMensalDefaultCents
}
