package pressure

// Sign computes the design pressures and forces over a sign panel.
type Sign struct {
	Velocity     *VelocityPressure
	Gust         float64
	Cf           float64
	PartialAreas []float64 // tributary area between consecutive heights (m²)
}

// Values returns the pressure qz·G·Cf per evaluation height.
func (s *Sign) Values() []float64 {
	out := make([]float64, len(s.Velocity.Values))
	for i, q := range s.Velocity.Values {
		out[i] = q * s.Gust * s.Cf
	}
	return out
}

// PartialForces returns the force per height band: the pressure at the top
// of each band times its tributary area.
func (s *Sign) PartialForces() []float64 {
	values := s.Values()[1:]
	out := make([]float64, len(s.PartialAreas))
	for i, area := range s.PartialAreas {
		out[i] = values[i] * area
	}
	return out
}

// TotalForce is the sum of the partial forces.
func (s *Sign) TotalForce() float64 {
	var total float64
	for _, f := range s.PartialForces() {
		total += f
	}
	return total
}
