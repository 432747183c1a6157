package period

import (
	"time"

	"github.com/emilydias-boop/mcf-insight-hub-sub002/internal/shared/apperror"
)

// Month adalah rentang satu bulan kalender, turunan dari ano_mes ("YYYY-MM").
type Month struct {
	AnoMes string
	Start  time.Time // hari pertama, 00:00 UTC
	End    time.Time // hari terakhir, 23:59:59 UTC
}

func Parse(anoMes string) (Month, error) {
	start, err := time.Parse("2006-01", anoMes)
	if err != nil {
		return Month{}, apperror.Wrap(err, apperror.CodeInvalidInput, "invalid ano_mes format, expected YYYY-MM", 400)
	}

	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return Month{AnoMes: anoMes, Start: start, End: end}, nil
}

func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start) && !t.After(m.End)
}
