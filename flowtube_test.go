/*
Copyright © 2026 the FlowTube authors.
This file is part of FlowTube.

FlowTube is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

FlowTube is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with FlowTube.  If not, see <http://www.gnu.org/licenses/>.
*/

package flowtube

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/atmoskinetics/flowtube/science/kps"
)

func testCoatedWallConfig() CoatedWallConfig {
	return CoatedWallConfig{
		TubeID:              2.6,
		TubeLength:          100,
		InjectorID:          0.60,
		InjectorOD:          1.20,
		ReactantGas:         "HCl",
		CarrierGas:          "N2",
		ReactantMixingRatio: 1.e-6,
	}
}

func testBoatConfig() BoatConfig {
	return BoatConfig{
		TubeID:              2.6,
		TubeLength:          100,
		InjectorID:          0.60,
		InjectorOD:          1.20,
		ReactantGas:         "HCl",
		CarrierGas:          "N2",
		ReactantMixingRatio: 1.e-6,
		BoatWidth:           2.0,
		BoatHeight:          0.963,
		BoatLength:          53.8,
		BoatWallThickness:   0.11,
	}
}

func testConditions() Conditions {
	return Conditions{
		ReactantFlow:        1.0,
		ReactantCarrierFlow: 50.0,
		CarrierFlow:         5000.0,
		Pressure:            2000.0,
		PressureUnits:       "Pa",
		Temperature:         25.0,
		RadialDeltaT:        1.0,
		AxialDeltaT:         1.0,
	}
}

func TestNewCoatedWallReactorValidation(t *testing.T) {
	tests := []struct {
		name    string
		mod     func(*CoatedWallConfig)
		wantErr string
	}{
		{"negative tube ID", func(c *CoatedWallConfig) { c.TubeID = -2.6 }, "tube dimensions must be positive"},
		{"zero tube length", func(c *CoatedWallConfig) { c.TubeLength = 0 }, "tube dimensions must be positive"},
		{"injector OD not larger than ID", func(c *CoatedWallConfig) { c.InjectorOD = 0.5 }, "must be larger than injector ID"},
		{"injector does not fit in tube", func(c *CoatedWallConfig) { c.InjectorOD = 3.0 }, "must be smaller than the tube ID"},
		{"unsupported reactant gas", func(c *CoatedWallConfig) { c.ReactantGas = "Xe" }, "unsupported gas"},
		{"unsupported carrier gas", func(c *CoatedWallConfig) { c.CarrierGas = "HCl" }, "unsupported carrier gas"},
		{"zero mixing ratio", func(c *CoatedWallConfig) { c.ReactantMixingRatio = 0 }, "mixing ratio"},
		{"insert without length", func(c *CoatedWallConfig) { c.InsertID = 1.5 }, "must be specified together"},
		{"insert too wide", func(c *CoatedWallConfig) { c.InsertID = 2.6; c.InsertLength = 20 }, "must be smaller than the tube ID"},
		{"insert too long", func(c *CoatedWallConfig) { c.InsertID = 1.5; c.InsertLength = 200 }, "must not exceed the tube length"},
	}
	for _, test := range tests {
		cfg := testCoatedWallConfig()
		test.mod(&cfg)
		_, err := NewCoatedWallReactor(cfg)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: error %q does not contain %q", test.name, err, test.wantErr)
		}
	}

	if _, err := NewCoatedWallReactor(testCoatedWallConfig()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestNewBoatReactorValidation(t *testing.T) {
	// The boat must fit inside the tube bore.
	cfg := testBoatConfig()
	cfg.TubeID = 2.54
	cfg.BoatWidth = 3.0
	if _, err := NewBoatReactor(cfg); err == nil ||
		!strings.Contains(err.Error(), "larger than the flow tube bore") {
		t.Errorf("oversized boat: got %v", err)
	}

	cfg = testBoatConfig()
	cfg.BoatWallThickness = -0.1
	cfg.BoatWidth = -0.1
	cfg.BoatHeight = -0.1
	if _, err := NewBoatReactor(cfg); err == nil ||
		!strings.Contains(err.Error(), "boat dimensions must be positive") {
		t.Errorf("negative boat dimensions: got %v", err)
	}

	cfg = testBoatConfig()
	cfg.BoatWallThickness = 1.1
	if _, err := NewBoatReactor(cfg); err == nil ||
		!strings.Contains(err.Error(), "leaves no interior") {
		t.Errorf("wall thicker than half the boat: got %v", err)
	}

	if _, err := NewBoatReactor(testBoatConfig()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestMethodOrdering(t *testing.T) {
	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Flows(); err == nil || !strings.Contains(err.Error(), "Initialize") {
		t.Errorf("Flows before Initialize: got %v", err)
	}
	if _, _, err := r.ReactantUptake(0.01); err == nil || !strings.Contains(err.Error(), "Initialize") {
		t.Errorf("ReactantUptake before Initialize: got %v", err)
	}
	if err := r.Initialize(testConditions()); err != nil {
		t.Fatal(err)
	}
	_, err = r.CalculateGamma(
		[]float64{0.01, 0.02, 0.03},
		[]float64{0.1, 0.2, 0.3},
		"s")
	if err == nil || !strings.Contains(err.Error(), "must call ReactantUptake") {
		t.Errorf("CalculateGamma before ReactantUptake: got %v", err)
	}
}

func TestInitializeConditionValidation(t *testing.T) {
	tests := []struct {
		name    string
		mod     func(*Conditions)
		wantErr string
	}{
		{"negative flow", func(c *Conditions) { c.ReactantFlow = -1 }, "flow rates must be non-negative"},
		{"zero total flow", func(c *Conditions) { c.ReactantFlow = 0; c.ReactantCarrierFlow = 0; c.CarrierFlow = 0 }, "total flow rate must be positive"},
		{"zero pressure", func(c *Conditions) { c.Pressure = 0 }, "pressure must be positive"},
		{"bad pressure units", func(c *Conditions) { c.PressureUnits = "psi" }, "unsupported pressure units"},
		{"below absolute zero", func(c *Conditions) { c.Temperature = -300 }, "above absolute zero"},
		{"negative diffusivity", func(c *Conditions) { c.ReactantDiffusivity = -0.1 }, "diffusivity must be non-negative"},
	}
	for _, test := range tests {
		r, err := NewCoatedWallReactor(testCoatedWallConfig())
		if err != nil {
			t.Fatal(err)
		}
		cond := testConditions()
		test.mod(&cond)
		err = r.Initialize(cond)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: error %q does not contain %q", test.name, err, test.wantErr)
		}
	}
}

// TestCoatedWallExample mirrors the example experiment: HCl uptake in a
// 2.6 cm tube with a 1.5 cm coated insert at 50 Torr.
func TestCoatedWallExample(t *testing.T) {
	cfg := testCoatedWallConfig()
	cfg.TubeLength = 50
	cfg.InjectorID = 1.0
	cfg.InjectorOD = 1.2
	cfg.InsertID = 1.5
	cfg.InsertLength = 20
	r, err := NewCoatedWallReactor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	err = r.Initialize(Conditions{
		ReactantFlow:        10,
		ReactantCarrierFlow: 100,
		CarrierFlow:         1000,
		Pressure:            50,
		PressureUnits:       "Torr",
		Temperature:         25,
	})
	if err != nil {
		t.Fatal(err)
	}
	s := r.state

	if math.Abs(s.pressure-6666.1) > 0.1 {
		t.Errorf("pressure = %g Pa, want 6666.1", s.pressure)
	}
	if s.reynolds > 2000 {
		t.Errorf("Re = %g, expected laminar flow", s.reynolds)
	}
	if s.knudsen >= 0.01 {
		t.Errorf("Kn = %g, expected continuum regime", s.knudsen)
	}
	if s.sherwood < 3.66 {
		t.Errorf("Sherwood number = %g, should not be below the fully developed limit", s.sherwood)
	}
	if s.residenceTime <= 0 || s.flowVelocity <= 0 {
		t.Errorf("residence time = %g s, flow velocity = %g cm/s", s.residenceTime, s.flowVelocity)
	}

	correction, loss, err := r.ReactantUptake(0.01)
	if err != nil {
		t.Fatal(err)
	}
	// At 50 Torr an uptake coefficient of 0.01 is strongly diffusion
	// limited.
	if !(correction > 0 && correction < 0.5) {
		t.Errorf("correction factor = %g, expected strong diffusion limitation", correction)
	}
	if !(loss > 0 && loss < 1) {
		t.Errorf("loss fraction = %g, want within (0, 1)", loss)
	}
}

// TestBoatExample mirrors the boat reactor example: a small uptake
// coefficient is essentially unaffected by diffusion limitation.
func TestBoatExample(t *testing.T) {
	b, err := NewBoatReactor(testBoatConfig())
	if err != nil {
		t.Fatal(err)
	}
	err = b.Initialize(Conditions{
		ReactantFlow:        10,
		ReactantCarrierFlow: 100,
		CarrierFlow:         1000,
		Pressure:            50,
		PressureUnits:       "Torr",
		Temperature:         25,
	})
	if err != nil {
		t.Fatal(err)
	}
	correction, loss, err := b.ReactantUptake(1.e-7)
	if err != nil {
		t.Fatal(err)
	}
	if correction < 0.99 {
		t.Errorf("correction factor = %g for gamma=1e-7, want near 1", correction)
	}
	if !(loss > 0 && loss < 0.05) {
		t.Errorf("loss fraction = %g for gamma=1e-7, want small", loss)
	}
}

// TestBoatHydraulicDiameter pins the duct geometry convention: the
// wetted perimeter is the tube circumference plus the exposed boat
// edges, two side walls and the top width.
func TestBoatHydraulicDiameter(t *testing.T) {
	b, err := NewBoatReactor(testBoatConfig())
	if err != nil {
		t.Fatal(err)
	}
	area := math.Pi*2.6*2.6/4. - 2.0*0.963
	perimeter := math.Pi*2.6 + 2.*0.963 + 2.0
	want := 4. * area / perimeter // 1.1190 cm
	if got := b.sectionDiameter(); math.Abs(got-want)/want > 1.e-12 {
		t.Errorf("hydraulic diameter = %g cm, want %g cm", got, want)
	}
	if got := b.sectionArea(); math.Abs(got-area)/area > 1.e-12 {
		t.Errorf("open area = %g cm2, want %g cm2", got, area)
	}
}

// quietConditions returns conditions that satisfy the laminar,
// well-mixed continuum flow assumptions with margin to spare.
func quietConditions() Conditions {
	return Conditions{
		ReactantFlow:        1.0,
		ReactantCarrierFlow: 50.0,
		CarrierFlow:         549.0,
		Pressure:            50.0,
		PressureUnits:       "Torr",
		Temperature:         25.0,
	}
}

func TestRegimeWarnings(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	oldOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(oldOut)

	warnings := func() []string {
		var msgs []string
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel {
				msgs = append(msgs, e.Message)
			}
		}
		return msgs
	}
	warned := func(substr string) bool {
		for _, m := range warnings() {
			if strings.Contains(m, substr) {
				return true
			}
		}
		return false
	}

	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := r.Initialize(quietConditions()); err != nil {
		t.Fatal(err)
	}
	if msgs := warnings(); len(msgs) != 0 {
		t.Errorf("well-behaved conditions warned: %v", msgs)
	}

	// A large carrier flow pushes Re past the turbulent transition.
	hook.Reset()
	cond := quietConditions()
	cond.CarrierFlow = 50000
	if err := r.Initialize(cond); err != nil {
		t.Fatal(err)
	}
	if !warned("turbulent") {
		t.Errorf("Re = %g: expected turbulence warning, got %v", r.state.reynolds, warnings())
	}

	// A few pascals puts the mean free path within reach of the tube
	// bore.
	hook.Reset()
	cond = quietConditions()
	cond.Pressure = 5
	cond.PressureUnits = "Pa"
	if err := r.Initialize(cond); err != nil {
		t.Fatal(err)
	}
	if !warned("continuum") {
		t.Errorf("Kn = %g: expected continuum warning, got %v", r.state.knudsen, warnings())
	}

	// A strong radial temperature gradient at low Re drives buoyant
	// secondary flow (Gr/Re2 > 0.3) without reaching the axial
	// criterion (Gr/Re > 100).
	hook.Reset()
	cond = quietConditions()
	cond.RadialDeltaT = 60
	if err := r.Initialize(cond); err != nil {
		t.Fatal(err)
	}
	if !warned("radial temperature gradient") {
		t.Errorf("expected radial buoyancy warning, got %v", warnings())
	}
	if warned("axial temperature gradient") {
		t.Errorf("axial buoyancy warning should not fire: %v", warnings())
	}
}

func TestInsertChangesSection(t *testing.T) {
	whole, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg := testCoatedWallConfig()
	cfg.InsertID = 1.5
	cfg.InsertLength = 20
	insert, err := NewCoatedWallReactor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cond := testConditions()
	if err := whole.Initialize(cond); err != nil {
		t.Fatal(err)
	}
	if err := insert.Initialize(cond); err != nil {
		t.Fatal(err)
	}
	// The same flow through a narrower bore moves faster.
	if insert.state.flowVelocity <= whole.state.flowVelocity {
		t.Errorf("flow velocity in the insert (%g cm/s) should exceed the open tube (%g cm/s)",
			insert.state.flowVelocity, whole.state.flowVelocity)
	}
}

func TestReactantUptakeValidation(t *testing.T) {
	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Initialize(testConditions()); err != nil {
		t.Fatal(err)
	}
	for _, gamma := range []float64{0, -0.01, 1.5} {
		if _, _, err := r.ReactantUptake(gamma); err == nil {
			t.Errorf("expected error for gamma = %g", gamma)
		}
	}
}

func TestCalculateGammaRoundTrip(t *testing.T) {
	const gammaTrue = 1.e-3

	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Initialize(testConditions()); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.ReactantUptake(gammaTrue); err != nil {
		t.Fatal(err)
	}
	s := r.state

	// Synthesize an ideal first-order decay for the true uptake
	// coefficient.
	k := kps.LossRateSurface(
		kps.EffectiveUptake(gammaTrue, s.sherwood, s.knudsen),
		s.molecularSpeed, r.surfaceToVolume())
	times := floats.Span(make([]float64, 8), 0, 0.7)
	conc := make([]float64, len(times))
	logConc := make([]float64, len(times))
	for i, ti := range times {
		conc[i] = math.Exp(-k * ti)
		logConc[i] = -k * ti
	}

	fit, err := r.CalculateGamma(conc, times, "seconds")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fit.Slope+k)/k > 1.e-9 {
		t.Errorf("fitted slope = %g, want %g", fit.Slope, -k)
	}
	if fit.R2 < 0.999999 {
		t.Errorf("R2 = %g for an ideal decay, want 1", fit.R2)
	}
	if math.Abs(fit.Gamma-gammaTrue)/gammaTrue > 1.e-6 {
		t.Errorf("recovered gamma = %g, want %g", fit.Gamma, gammaTrue)
	}
	if fit.GammaEff >= fit.Gamma {
		t.Errorf("effective gamma (%g) should be below true gamma (%g)", fit.GammaEff, fit.Gamma)
	}
	if !math.IsNaN(fit.PValue) && fit.PValue > 0.05 {
		t.Errorf("p-value = %g for an ideal decay", fit.PValue)
	}

	// Cross-check the regression against gonum.
	alpha, beta := stat.LinearRegression(times, logConc, nil, false)
	if math.Abs(beta-fit.Slope)/k > 1.e-9 {
		t.Errorf("slope disagrees with gonum: %g vs %g", fit.Slope, beta)
	}
	if math.Abs(alpha-fit.Intercept) > 1.e-9 {
		t.Errorf("intercept disagrees with gonum: %g vs %g", fit.Intercept, alpha)
	}

	// Exposure in injector travel distance gives the same answer.
	dist := make([]float64, len(times))
	for i, ti := range times {
		dist[i] = ti * s.flowVelocity
	}
	fitCm, err := r.CalculateGamma(conc, dist, "cm")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fitCm.Gamma-gammaTrue)/gammaTrue > 1.e-6 {
		t.Errorf("recovered gamma from cm exposure = %g, want %g", fitCm.Gamma, gammaTrue)
	}
}

func TestCalculateGammaValidation(t *testing.T) {
	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Initialize(testConditions()); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.ReactantUptake(0.01); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		conc    []float64
		expo    []float64
		units   string
		wantErr string
	}{
		{"length mismatch", []float64{1, 0.5}, []float64{0, 1, 2}, "s", "same length"},
		{"too few points", []float64{1, 0.5}, []float64{0, 1}, "s", "at least 3"},
		{"non-positive concentration", []float64{1, 0, 0.5}, []float64{0, 1, 2}, "s", "must be positive"},
		{"negative exposure", []float64{1, 0.5, 0.25}, []float64{0, -1, 2}, "s", "non-negative"},
		{"bad units", []float64{1, 0.5, 0.25}, []float64{0, 1, 2}, "furlongs", "unsupported exposure units"},
		{"no decay", []float64{1, 2, 4}, []float64{0, 1, 2}, "s", "do not decay"},
	}
	for _, test := range tests {
		_, err := r.CalculateGamma(test.conc, test.expo, test.units)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%s: error %q does not contain %q", test.name, err, test.wantErr)
		}
	}
}

func TestReport(t *testing.T) {
	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}

	// Report before Initialize writes nothing.
	var empty bytes.Buffer
	r.Report(&empty)
	if empty.Len() != 0 {
		t.Errorf("Report before Initialize wrote %d bytes", empty.Len())
	}

	if err := r.Initialize(testConditions()); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	r.Report(&buf)
	for _, want := range []string{"Reynolds number", "Sherwood number", "Knudsen number", "Residence time"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report does not mention %q", want)
		}
	}
}

func TestQuantities(t *testing.T) {
	r, err := NewCoatedWallReactor(testCoatedWallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if r.Quantities() != nil {
		t.Error("Quantities before Initialize should be nil")
	}
	if err := r.Initialize(testConditions()); err != nil {
		t.Fatal(err)
	}
	q := r.Quantities()
	if q == nil {
		t.Fatal("Quantities returned nil after Initialize")
	}
	p := q["pressure"]
	if err := p.Check(unit.Pascal); err != nil {
		t.Errorf("pressure dimensions: %v", err)
	}
	if math.Abs(p.Value()-2000.) > 1.e-9 {
		t.Errorf("pressure = %g Pa, want 2000", p.Value())
	}
	v := q["flow_velocity"]
	if err := v.Check(unit.MeterPerSecond); err != nil {
		t.Errorf("flow velocity dimensions: %v", err)
	}
	if math.Abs(v.Value()-r.state.flowVelocity/100.) > 1.e-12 {
		t.Errorf("flow velocity = %g m/s, want %g", v.Value(), r.state.flowVelocity/100.)
	}
}
