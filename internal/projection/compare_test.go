package projection

import "testing"

func TestRateGaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate       float64
		wantWide   float64
		wantNarrow float64
	}{
		{rate: 20, wantWide: 8, wantNarrow: 4},
		{rate: 15, wantWide: 8, wantNarrow: 4},
		{rate: 10, wantWide: 6, wantNarrow: 3},
		{rate: 8, wantWide: 6, wantNarrow: 3},
		{rate: 6, wantWide: 3, wantNarrow: 1.5},
		{rate: 4, wantWide: 3, wantNarrow: 1.5},
		{rate: 3, wantWide: 1.2, wantNarrow: 0.6},
		{rate: 2, wantWide: 1, wantNarrow: 0.5},
		{rate: 0, wantWide: 1, wantNarrow: 0.5},
	}

	for _, tc := range tests {
		wide, narrow := rateGaps(tc.rate)
		if !almostEqual(wide, tc.wantWide) || !almostEqual(narrow, tc.wantNarrow) {
			t.Fatalf("rateGaps(%v) = (%v, %v), want (%v, %v)", tc.rate, wide, narrow, tc.wantWide, tc.wantNarrow)
		}
	}
}

func TestCompareProducesOrderedScenarios(t *testing.T) {
	t.Parallel()

	input := Input{Principal: 10000, AnnualContribution: 24000, AnnualRatePercent: 10, Years: 15}
	scenarios := Compare(input)
	if len(scenarios) != 5 {
		t.Fatalf("len(scenarios) = %d, want 5", len(scenarios))
	}

	wantRates := []float64{4, 7, 10, 13, 16}
	for i, scenario := range scenarios {
		if scenario.AnnualRatePercent != wantRates[i] {
			t.Fatalf("scenarios[%d].AnnualRatePercent = %v, want %v", i, scenario.AnnualRatePercent, wantRates[i])
		}
	}
	if !scenarios[2].Base {
		t.Fatalf("middle scenario should carry the base flag: %+v", scenarios[2])
	}
	for i, scenario := range scenarios {
		if i == 2 {
			continue
		}
		if scenario.Base {
			t.Fatalf("scenarios[%d] unexpectedly flagged as base", i)
		}
	}
}

func TestCompareFinalBalancesMatchProjection(t *testing.T) {
	t.Parallel()

	input := Input{Principal: 5000, AnnualContribution: 12000, AnnualRatePercent: 6, Years: 10}
	for _, scenario := range Compare(input) {
		shifted := input
		shifted.AnnualRatePercent = scenario.AnnualRatePercent
		snapshots := Project(shifted)
		want := snapshots[len(snapshots)-1].EndBalance
		if scenario.FinalBalance != want {
			t.Fatalf("scenario %v%%: FinalBalance = %v, want %v", scenario.AnnualRatePercent, scenario.FinalBalance, want)
		}
	}
}

func TestCompareFloorsNegativeRates(t *testing.T) {
	t.Parallel()

	scenarios := Compare(Input{Principal: 1000, AnnualRatePercent: 0.5, Years: 5})
	for _, scenario := range scenarios {
		if scenario.AnnualRatePercent < 0 {
			t.Fatalf("comparison rate went negative: %v", scenario.AnnualRatePercent)
		}
	}
	if scenarios[0].AnnualRatePercent != 0 {
		t.Fatalf("widest low scenario = %v, want clamp to 0", scenarios[0].AnnualRatePercent)
	}
}

func TestCompareCollapsesClampedDuplicates(t *testing.T) {
	t.Parallel()

	scenarios := Compare(Input{Principal: 1000, AnnualRatePercent: 0, Years: 5})

	wantRates := []float64{0, 0.5, 1}
	if len(scenarios) != len(wantRates) {
		t.Fatalf("len(scenarios) = %d, want %d: %+v", len(scenarios), len(wantRates), scenarios)
	}
	baseCount := 0
	for i, scenario := range scenarios {
		if scenario.AnnualRatePercent != wantRates[i] {
			t.Fatalf("scenarios[%d].AnnualRatePercent = %v, want %v", i, scenario.AnnualRatePercent, wantRates[i])
		}
		if scenario.Base {
			baseCount++
			if scenario.AnnualRatePercent != 0 {
				t.Fatalf("base scenario carries rate %v, want 0", scenario.AnnualRatePercent)
			}
		}
	}
	if baseCount != 1 {
		t.Fatalf("base scenarios = %d, want exactly 1", baseCount)
	}
}

func TestCompareScenarioBalancesIncreaseWithRate(t *testing.T) {
	t.Parallel()

	scenarios := Compare(Input{Principal: 10000, AnnualContribution: 6000, AnnualRatePercent: 12, Years: 20})
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].FinalBalance <= scenarios[i-1].FinalBalance {
			t.Fatalf("final balances not strictly increasing at index %d: %v then %v",
				i, scenarios[i-1].FinalBalance, scenarios[i].FinalBalance)
		}
	}
}
