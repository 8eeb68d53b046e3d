// Package selftest registers the binary's own suites. They double as the
// living example of the registration interface: embed harness.Suite,
// implement Define, self-register from init.
package selftest

import (
	"math"

	"stf/pkg/harness"
)

func init() {
	harness.Register("Arithmetic", func() harness.Instance { return &arithmeticSuite{} })
	harness.Register("FloatTolerance", func() harness.Instance { return &floatSuite{} })
	harness.Register("SharedState", func() harness.Instance { return &sharedStateSuite{} })
}

type arithmeticSuite struct{ harness.Suite }

func (s *arithmeticSuite) Define() {
	s.RegisterCase("Addition", func() {
		s.EqualInt(2+2, 4)
		s.EqualUint(7+3, 10)
	})
	s.RegisterCase("Overflow wraps", func() {
		var x uint8 = 255
		x++
		s.EqualUint(uint(x), 0)
	})
	s.RegisterCase("Division truncates", func() {
		if !s.EqualInt(7/2, 3) {
			return
		}
		s.EqualInt(-7/2, -3)
	})
}

type floatSuite struct{ harness.Suite }

func (s *floatSuite) Define() {
	s.RegisterCase("Exact values compare equal", func() {
		s.EqualFloat32(0.5, 0.5)
		s.EqualFloat64(0.25, 0.25)
	})
	s.RegisterCase("Sums within epsilon", func() {
		// 0.1 has no exact binary representation; the sum still lands
		// within machine epsilon of 0.3 in float32.
		s.EqualFloat32(0.1+0.2, 0.3)
	})
	s.RegisterCase("Absolute tolerance far from one", func() {
		// Adjacent float64 values near 100 sit further apart than
		// machine epsilon, so the absolute tolerance tells them apart
		// even though no value can exist between them.
		s.False(s.almostEqual64(math.Nextafter(100, 200), 100))
	})
}

// almostEqual64 mirrors the EqualFloat64 comparison without failing the
// case; the suite asserts on the comparison outcome itself.
func (s *floatSuite) almostEqual64(value, expected float64) bool {
	return math.Abs(value-expected) < math.Nextafter(1, 2)-1
}

type sharedStateSuite struct {
	harness.Suite
	items []string
}

func (s *sharedStateSuite) Define() {
	s.RegisterCase("Setup fills state", func() {
		s.items = append(s.items, "a", "b", "c")
		s.EqualInt(len(s.items), 3)
	})
	s.RegisterCase("State persists across cases", func() {
		// Cases of one instance share the suite's fields; execution
		// order is registration order, so setup already ran.
		if !s.True(len(s.items) == 3) {
			return
		}
		s.True(s.items[0] == "a")
		s.Logf("shared state carried %d items", len(s.items))
	})
}
