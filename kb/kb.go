package kb

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/signalsfoundry/scan-coverage-solver/model"
)

// Catalog is an in-memory, thread-safe store of celestial bodies keyed by
// lower-case name. Bodies are immutable once added, so concurrent readers
// never need a copy.
type Catalog struct {
	mu     sync.RWMutex
	bodies map[string]model.CelestialBody
}

// NewCatalog constructs an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{bodies: make(map[string]model.CelestialBody)}
}

// Add stores a body. It returns an error if a body with the same name
// already exists.
func (c *Catalog) Add(b model.CelestialBody) error {
	key := strings.ToLower(b.Name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.bodies[key]; exists {
		return fmt.Errorf("body %q already exists in catalog", b.Name)
	}
	c.bodies[key] = b
	return nil
}

// Get looks a body up by name, case-insensitively.
func (c *Catalog) Get(name string) (model.CelestialBody, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.bodies[strings.ToLower(name)]
	return b, ok
}

// Names returns the catalog's body names as added, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.bodies))
	for _, b := range c.bodies {
		names = append(names, b.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bodies in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bodies)
}

// stock body parameters: radius, sidereal rotation period, standard
// gravitational parameter, safe altitude, sphere-of-influence radius.
var stockBodies = []struct {
	name               string
	radius, period, mu float64
	safeAltitude, soi  float64
}{
	{"kerbol", 261_600_000, 432_000, 1.1723328e18, 600_000, math.Inf(1)},

	{"moho", 250_000, 1_210_000, 1.6860938e11, 10_000, 9_646_663},

	{"eve", 700_000, 80_500, 8.1717302e12, 90_000, 85_109_365},
	{"gilly", 13_000, 28_255, 8.2894498e6, 5_000, 126_123.27},

	{"kerbin", 600_000, 21_549.425, 3.5316e12, 70_000, 84_159_286},
	{"mun", 200_000, 138_984.38, 6.5138398e10, 10_000, 2_429_559.1},
	{"minmus", 60_000, 40_400, 1.7658e9, 10_000, 2_247_428.4},

	{"duna", 320_000, 65_517.859, 3.0136321e11, 50_000, 47_921_949},
	{"ike", 130_000, 65_517.862, 1.8568369e10, 10_000, 1_049_598.9},

	{"dres", 138_000, 34_800, 2.1484489e10, 10_000, 32_832_840},

	{"jool", 6_000_000, 36_000, 2.82528e14, 200_000, 2.4559852e9},
	{"laythe", 500_000, 52_980.879, 1.962e12, 50_000, 3_723_645.8},
	{"vall", 300_000, 105_962.09, 2.074815e11, 25_000, 2_406_401.4},
	{"tylo", 600_000, 211_926.36, 2.82528e12, 30_000, 10_856_518},
	{"bop", 65_000, 544_507.43, 2.4868349e9, 25_000, 1_221_060.9},
	{"pol", 44_000, 901_902.62, 7.2170208e8, 5_000, 1_042_138.9},

	{"eeloo", 210_000, 19_460, 7.4410815e10, 5_000, 1.1908294e8},
}

// NewStockCatalog constructs a catalog preloaded with the stock body table.
func NewStockCatalog() *Catalog {
	c := NewCatalog()
	for _, s := range stockBodies {
		b, err := model.NewCelestialBody(s.name, s.radius, s.period, s.mu, s.safeAltitude, s.soi)
		if err != nil {
			// The stock table is compile-time data; a validation failure here
			// is a programming error.
			panic(err)
		}
		if err := c.Add(b); err != nil {
			panic(err)
		}
	}
	return c
}
