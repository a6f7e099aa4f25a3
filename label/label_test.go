package label

import "testing"

func TestFixedThreshold(t *testing.T) {
	cases := []struct {
		name      string
		si        []float64
		threshold float64
		want      []int
	}{
		{
			name:      "strictly above",
			si:        []float64{10, 20, 20.5, 35},
			threshold: 20,
			want:      []int{Baseline, Baseline, Stress, Stress},
		},
		{
			name:      "all below",
			si:        []float64{1, 2, 3},
			threshold: 20,
			want:      []int{Baseline, Baseline, Baseline},
		},
		{
			name:      "zero threshold",
			si:        []float64{0, 0.1},
			threshold: 0,
			want:      []int{Baseline, Stress},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FixedThreshold(tc.si, tc.threshold)
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}

			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("label[%d] = %d, want %d", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFixedThreshold_Empty(t *testing.T) {
	if got := FixedThreshold(nil, DefaultFixedThreshold); got != nil {
		t.Errorf("labels = %v, want nil", got)
	}
}

func TestMedianSplit_EvenBalance(t *testing.T) {
	// 100 distinct values: the interpolated median sits between the two
	// middle ranks, so exactly half the rows land on each side.
	si := make([]float64, 100)
	for i := range si {
		si[i] = 10 + float64(i)
	}

	baseline, stress := Counts(MedianSplit(si))
	if baseline != 50 || stress != 50 {
		t.Errorf("balance = %d/%d, want 50/50", baseline, stress)
	}
}

func TestMedianSplit_OddBalance(t *testing.T) {
	si := make([]float64, 101)
	for i := range si {
		si[i] = float64(i)
	}

	// The middle element equals the median and ties go to baseline.
	baseline, stress := Counts(MedianSplit(si))
	if baseline != 51 || stress != 50 {
		t.Errorf("balance = %d/%d, want 51/50", baseline, stress)
	}
}

func TestMedianSplit_TiesToBaseline(t *testing.T) {
	got := MedianSplit([]float64{1, 2, 2, 2, 3})

	want := []int{Baseline, Baseline, Baseline, Baseline, Stress}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMedianSplit_Empty(t *testing.T) {
	if got := MedianSplit(nil); got != nil {
		t.Errorf("labels = %v, want nil", got)
	}
}

func TestMedianSplit_SubjectInvariance(t *testing.T) {
	// Two subjects whose absolute stress levels differ by an order of
	// magnitude still balance out when split per subject.
	low := []float64{1, 2, 3, 4, 5, 6}

	high := make([]float64, len(low))
	for i, v := range low {
		high[i] = v * 50
	}

	lb, ls := Counts(MedianSplit(low))
	hb, hs := Counts(MedianSplit(high))

	if lb != hb || ls != hs {
		t.Errorf("balances differ: %d/%d vs %d/%d", lb, ls, hb, hs)
	}
}

func TestCounts_IgnoresUnknown(t *testing.T) {
	baseline, stress := Counts([]int{Baseline, Stress, 7, -1, Stress})
	if baseline != 1 || stress != 2 {
		t.Errorf("counts = %d/%d, want 1/2", baseline, stress)
	}
}
