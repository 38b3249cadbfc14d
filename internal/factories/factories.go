package factories

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"
)

var fake = faker.New()

// coordinate samples uniformly within [min, max] and rounds to 6 decimal
// places, the precision the schema's numeric columns carry.
func coordinate(rng *rand.Rand, min, max float64) float64 {
	v := min + rng.Float64()*(max-min)
	return math.Round(v*1e6) / 1e6
}

// dateBetween samples a uniform instant in [start, end).
func dateBetween(rng *rand.Rand, start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := end.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}

// uniqueEmail derives a deterministic-per-ID address so emails never collide
// within a run, which the schema's uniqueness constraint requires.
func uniqueEmail(name string, id int) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	local = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, local)
	return fmt.Sprintf("%s.%d@%s", local, id, fake.Internet().FreeEmailDomain())
}
